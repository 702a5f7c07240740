package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/Arpan-gl/mirfa-test-app/internal/crypto/domain"
)

func newTestMasterKey(t *testing.T) *cryptoDomain.MasterKey {
	t.Helper()
	return &cryptoDomain.MasterKey{
		Version: cryptoDomain.MasterKeyVersion,
		Key:     randomBytes(t, cryptoDomain.KeySize),
	}
}

func shortMasterKey(t *testing.T) *cryptoDomain.MasterKey {
	t.Helper()
	return &cryptoDomain.MasterKey{
		Version: cryptoDomain.MasterKeyVersion,
		Key:     randomBytes(t, 16),
	}
}

func mustDek(t *testing.T, km *KeyManagerService) []byte {
	t.Helper()
	dek, err := km.GenerateDek()
	require.NoError(t, err)
	return dek
}

func mustWrap(
	t *testing.T,
	km *KeyManagerService,
	mk *cryptoDomain.MasterKey,
	dek []byte,
	alg cryptoDomain.Algorithm,
) cryptoDomain.WrappedDek {
	t.Helper()
	wrapped, err := km.WrapDek(mk, dek, alg)
	require.NoError(t, err)
	return wrapped
}

func TestKeyManagerService_GenerateDek(t *testing.T) {
	km := NewKeyManager(NewAEADManager())

	dek := mustDek(t, km)
	assert.Len(t, dek, cryptoDomain.KeySize)
	assert.NotEqual(t, make([]byte, cryptoDomain.KeySize), dek)

	// Two draws never coincide.
	assert.NotEqual(t, dek, mustDek(t, km))
}

func TestKeyManagerService_WrapDek(t *testing.T) {
	km := NewKeyManager(NewAEADManager())
	masterKey := newTestMasterKey(t)

	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			dek := mustDek(t, km)
			wrapped := mustWrap(t, km, masterKey, dek, alg)

			assert.Len(t, wrapped.Nonce, cryptoDomain.NonceSize)
			// The sealed DEK carries the appended authentication tag.
			assert.Len(t, wrapped.EncryptedKey, cryptoDomain.KeySize+cryptoDomain.TagSize)
			assert.NotEqual(t, dek, wrapped.EncryptedKey)
		})
	}

	t.Run("wrapping the same DEK twice uses fresh nonces", func(t *testing.T) {
		dek := mustDek(t, km)

		first := mustWrap(t, km, masterKey, dek, cryptoDomain.AESGCM)
		second := mustWrap(t, km, masterKey, dek, cryptoDomain.AESGCM)

		assert.NotEqual(t, first.Nonce, second.Nonce)
		assert.NotEqual(t, first.EncryptedKey, second.EncryptedKey)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := km.WrapDek(masterKey, mustDek(t, km), cryptoDomain.Algorithm("invalid"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})

	t.Run("undersized master key", func(t *testing.T) {
		_, err := km.WrapDek(shortMasterKey(t), mustDek(t, km), cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})
}

func TestKeyManagerService_UnwrapDek(t *testing.T) {
	km := NewKeyManager(NewAEADManager())
	masterKey := newTestMasterKey(t)

	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
		t.Run("round trip "+string(alg), func(t *testing.T) {
			dek := mustDek(t, km)
			wrapped := mustWrap(t, km, masterKey, dek, alg)

			unwrapped, err := km.UnwrapDek(masterKey, wrapped, alg)
			require.NoError(t, err)
			assert.Equal(t, dek, unwrapped)
		})
	}

	t.Run("wrong master key", func(t *testing.T) {
		wrapped := mustWrap(t, km, masterKey, mustDek(t, km), cryptoDomain.AESGCM)

		_, err := km.UnwrapDek(newTestMasterKey(t), wrapped, cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		wrapped := mustWrap(t, km, masterKey, mustDek(t, km), cryptoDomain.AESGCM)
		wrapped.EncryptedKey[0] ^= 0xFF

		_, err := km.UnwrapDek(masterKey, wrapped, cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("zeroed nonce", func(t *testing.T) {
		wrapped := mustWrap(t, km, masterKey, mustDek(t, km), cryptoDomain.AESGCM)
		wrapped.Nonce = make([]byte, cryptoDomain.NonceSize)

		_, err := km.UnwrapDek(masterKey, wrapped, cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("algorithm mismatch", func(t *testing.T) {
		wrapped := mustWrap(t, km, masterKey, mustDek(t, km), cryptoDomain.AESGCM)

		_, err := km.UnwrapDek(masterKey, wrapped, cryptoDomain.ChaCha20)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("undersized master key", func(t *testing.T) {
		wrapped := mustWrap(t, km, masterKey, mustDek(t, km), cryptoDomain.AESGCM)

		_, err := km.UnwrapDek(shortMasterKey(t), wrapped, cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})
}

func TestKeyManagerService_EnvelopeEncryption(t *testing.T) {
	aeadManager := NewAEADManager()
	km := NewKeyManager(aeadManager)
	masterKey := newTestMasterKey(t)

	t.Run("full flow", func(t *testing.T) {
		dek := mustDek(t, km)

		cipher, err := aeadManager.CreateCipher(dek, cryptoDomain.AESGCM)
		require.NoError(t, err)

		plaintext := []byte("sensitive data to encrypt")
		ciphertext, nonce, err := cipher.Encrypt(plaintext, nil)
		require.NoError(t, err)

		wrapped := mustWrap(t, km, masterKey, dek, cryptoDomain.AESGCM)

		// Later: recover the DEK, then the payload.
		unwrapped, err := km.UnwrapDek(masterKey, wrapped, cryptoDomain.AESGCM)
		require.NoError(t, err)

		cipher2, err := aeadManager.CreateCipher(unwrapped, cryptoDomain.AESGCM)
		require.NoError(t, err)

		decrypted, err := cipher2.Decrypt(ciphertext, nonce, nil)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("records never share DEKs", func(t *testing.T) {
		dek1 := mustDek(t, km)
		dek2 := mustDek(t, km)
		assert.NotEqual(t, dek1, dek2)

		wrapped1 := mustWrap(t, km, masterKey, dek1, cryptoDomain.AESGCM)
		wrapped2 := mustWrap(t, km, masterKey, dek2, cryptoDomain.AESGCM)
		assert.NotEqual(t, wrapped1.EncryptedKey, wrapped2.EncryptedKey)
		assert.NotEqual(t, wrapped1.Nonce, wrapped2.Nonce)

		unwrapped1, err := km.UnwrapDek(masterKey, wrapped1, cryptoDomain.AESGCM)
		require.NoError(t, err)
		unwrapped2, err := km.UnwrapDek(masterKey, wrapped2, cryptoDomain.AESGCM)
		require.NoError(t, err)

		assert.Equal(t, dek1, unwrapped1)
		assert.Equal(t, dek2, unwrapped2)
	})
}
