package service

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/Arpan-gl/mirfa-test-app/internal/crypto/domain"
)

// cipherSuite pairs a suite name with its constructor so every behavioral
// test runs against both supported suites.
type cipherSuite struct {
	name string
	make func(key []byte) (AEAD, error)
}

func cipherSuites() []cipherSuite {
	return []cipherSuite{
		{name: "AESGCM", make: func(key []byte) (AEAD, error) { return NewAESGCM(key) }},
		{name: "ChaCha20Poly1305", make: func(key []byte) (AEAD, error) { return NewChaCha20Poly1305(key) }},
	}
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestCipherConstructors_KeySize(t *testing.T) {
	for _, suite := range cipherSuites() {
		t.Run(suite.name, func(t *testing.T) {
			t.Run("accepts 32-byte key", func(t *testing.T) {
				aead, err := suite.make(randomBytes(t, 32))
				require.NoError(t, err)
				assert.NotNil(t, aead)
			})

			for _, size := range []int{0, 16, 31, 33, 64} {
				aead, err := suite.make(randomBytes(t, size))
				assert.Error(t, err, "key size %d must be rejected", size)
				assert.Nil(t, aead)
			}
		})
	}
}

func TestCipherSuites_EncryptDecrypt(t *testing.T) {
	for _, suite := range cipherSuites() {
		t.Run(suite.name, func(t *testing.T) {
			key := randomBytes(t, 32)
			aead, err := suite.make(key)
			require.NoError(t, err)

			t.Run("round trip with aad", func(t *testing.T) {
				plaintext := []byte("the payload under test")
				aad := []byte("record context")

				ciphertext, nonce, err := aead.Encrypt(plaintext, aad)
				require.NoError(t, err)
				require.Len(t, nonce, cryptoDomain.NonceSize)
				assert.NotEqual(t, plaintext, ciphertext)

				decrypted, err := aead.Decrypt(ciphertext, nonce, aad)
				require.NoError(t, err)
				assert.True(t, bytes.Equal(plaintext, decrypted))
			})

			t.Run("round trip without aad", func(t *testing.T) {
				plaintext := []byte("no associated data")

				ciphertext, nonce, err := aead.Encrypt(plaintext, nil)
				require.NoError(t, err)

				decrypted, err := aead.Decrypt(ciphertext, nonce, nil)
				require.NoError(t, err)
				assert.True(t, bytes.Equal(plaintext, decrypted))
			})

			t.Run("round trip empty plaintext", func(t *testing.T) {
				ciphertext, nonce, err := aead.Encrypt([]byte{}, nil)
				require.NoError(t, err)
				// An empty plaintext still produces a tag to authenticate
				assert.Len(t, ciphertext, cryptoDomain.TagSize)

				decrypted, err := aead.Decrypt(ciphertext, nonce, nil)
				require.NoError(t, err)
				assert.Empty(t, decrypted)
			})

			t.Run("sealed output is plaintext plus tag", func(t *testing.T) {
				plaintext := []byte("exactly twenty bytes")

				ciphertext, _, err := aead.Encrypt(plaintext, nil)
				require.NoError(t, err)
				assert.Equal(t, len(plaintext)+cryptoDomain.TagSize, len(ciphertext))
			})

			t.Run("fresh nonce per call", func(t *testing.T) {
				_, nonce1, err := aead.Encrypt([]byte("same input"), nil)
				require.NoError(t, err)
				_, nonce2, err := aead.Encrypt([]byte("same input"), nil)
				require.NoError(t, err)

				assert.NotEqual(t, nonce1, nonce2)
			})
		})
	}
}

func TestCipherSuites_AuthenticationFailures(t *testing.T) {
	for _, suite := range cipherSuites() {
		t.Run(suite.name, func(t *testing.T) {
			key := randomBytes(t, 32)
			aead, err := suite.make(key)
			require.NoError(t, err)

			plaintext := []byte("authenticated payload")
			aad := []byte("bound context")
			ciphertext, nonce, err := aead.Encrypt(plaintext, aad)
			require.NoError(t, err)

			t.Run("wrong aad", func(t *testing.T) {
				decrypted, err := aead.Decrypt(ciphertext, nonce, []byte("other context"))
				assert.Error(t, err)
				assert.Nil(t, decrypted)
			})

			t.Run("wrong nonce", func(t *testing.T) {
				decrypted, err := aead.Decrypt(ciphertext, randomBytes(t, cryptoDomain.NonceSize), aad)
				assert.Error(t, err)
				assert.Nil(t, decrypted)
			})

			t.Run("wrong key", func(t *testing.T) {
				other, err := suite.make(randomBytes(t, 32))
				require.NoError(t, err)

				decrypted, err := other.Decrypt(ciphertext, nonce, aad)
				assert.Error(t, err)
				assert.Nil(t, decrypted)
			})

			t.Run("tampered ciphertext byte", func(t *testing.T) {
				tampered := bytes.Clone(ciphertext)
				tampered[0] ^= 0x01

				decrypted, err := aead.Decrypt(tampered, nonce, aad)
				assert.Error(t, err)
				assert.Nil(t, decrypted)
			})

			t.Run("tampered tag byte", func(t *testing.T) {
				// The tag occupies the final 16 bytes of the sealed output
				tampered := bytes.Clone(ciphertext)
				tampered[len(tampered)-1] ^= 0x01

				decrypted, err := aead.Decrypt(tampered, nonce, aad)
				assert.Error(t, err)
				assert.Nil(t, decrypted)
			})

			t.Run("truncated ciphertext", func(t *testing.T) {
				decrypted, err := aead.Decrypt(ciphertext[:cryptoDomain.TagSize-1], nonce, aad)
				assert.Error(t, err)
				assert.Nil(t, decrypted)
			})
		})
	}
}

// TestCipherSuites_NotInterchangeable verifies that a sealed output from one
// suite does not open under the other even with the identical key, which is
// what makes the record's algorithm tag load-bearing.
func TestCipherSuites_NotInterchangeable(t *testing.T) {
	key := randomBytes(t, 32)

	gcm, err := NewAESGCM(key)
	require.NoError(t, err)
	chacha, err := NewChaCha20Poly1305(key)
	require.NoError(t, err)

	plaintext := []byte("suite bound data")

	sealedByGCM, nonce, err := gcm.Encrypt(plaintext, nil)
	require.NoError(t, err)

	decrypted, err := chacha.Decrypt(sealedByGCM, nonce, nil)
	assert.Error(t, err)
	assert.Nil(t, decrypted)

	sealedByChaCha, nonce, err := chacha.Encrypt(plaintext, nil)
	require.NoError(t, err)

	decrypted, err = gcm.Decrypt(sealedByChaCha, nonce, nil)
	assert.Error(t, err)
	assert.Nil(t, decrypted)
}

func TestCipherSuites_PayloadShapes(t *testing.T) {
	testCases := []struct {
		name      string
		plaintext []byte
		aad       []byte
	}{
		{name: "short message", plaintext: []byte("test"), aad: []byte("metadata")},
		{name: "ten kilobytes", plaintext: bytes.Repeat([]byte("a"), 10000), aad: nil},
		{name: "unicode text", plaintext: []byte("héllo wörld 世界"), aad: []byte("unicode")},
		{name: "binary data", plaintext: []byte{0x00, 0x01, 0xFF, 0xFE, 0x7F}, aad: []byte{0xAA, 0xBB}},
	}

	for _, suite := range cipherSuites() {
		t.Run(suite.name, func(t *testing.T) {
			aead, err := suite.make(randomBytes(t, 32))
			require.NoError(t, err)

			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					ciphertext, nonce, err := aead.Encrypt(tc.plaintext, tc.aad)
					require.NoError(t, err)

					decrypted, err := aead.Decrypt(ciphertext, nonce, tc.aad)
					require.NoError(t, err)
					assert.True(t, bytes.Equal(tc.plaintext, decrypted))
				})
			}
		})
	}
}
