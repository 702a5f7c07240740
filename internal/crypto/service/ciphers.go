package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/Arpan-gl/mirfa-test-app/internal/crypto/domain"
)

// aeadCipher adapts a crypto/cipher AEAD to this package's AEAD interface.
//
// Both supported suites share the same operational contract: every Encrypt
// call draws a fresh random 12-byte nonce, and Seal appends the 16-byte
// authentication tag to the ciphertext, so the sealed output is always
// len(plaintext) + 16 bytes. Decrypt verifies the tag before returning any
// plaintext. Instances hold no mutable state and are safe for concurrent use.
type aeadCipher struct {
	aead cipher.AEAD
}

// Encrypt seals plaintext under a fresh random nonce.
//
// The optional aad is authenticated but not encrypted; the same bytes must be
// presented again on Decrypt or authentication fails. The returned nonce must
// be stored alongside the ciphertext, and a nonce is never reused because a
// new one is drawn from crypto/rand on every call.
func (c *aeadCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = c.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Decrypt opens ciphertext produced by Encrypt.
//
// A wrong key, wrong nonce, mismatched aad, or any modification of the
// ciphertext or its tag fails authentication; no plaintext is returned in
// that case.
func (c *aeadCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}

// AESGCMCipher is the AES-256-GCM suite, the suite behind the record format's
// algorithm tag. It benefits from AES-NI hardware acceleration on most server
// CPUs.
type AESGCMCipher struct {
	aeadCipher
}

// NewAESGCM builds an AES-256-GCM cipher. The key must be exactly 32 bytes;
// shorter AES variants are not accepted.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, errors.New("key must be exactly 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aeadCipher{aead: aead}}, nil
}

// ChaCha20Poly1305Cipher is the ChaCha20-Poly1305 suite. It uses the same
// key, nonce, and tag sizes as AES-256-GCM, so sealed outputs from either
// suite have identical shapes; it performs better on hardware without AES
// acceleration.
type ChaCha20Poly1305Cipher struct {
	aeadCipher
}

// NewChaCha20Poly1305 builds a ChaCha20-Poly1305 cipher from a 32-byte key.
func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305Cipher, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	return &ChaCha20Poly1305Cipher{aeadCipher{aead: aead}}, nil
}
