// Package service implements the cryptographic core of envelope encryption:
// AEAD cipher construction and DEK generation, wrapping and unwrapping.
package service

import (
	cryptoDomain "github.com/Arpan-gl/mirfa-test-app/internal/crypto/domain"
)

// AEAD seals and opens byte payloads with authenticated encryption.
type AEAD interface {
	// Encrypt seals plaintext, binding aad into the authentication tag, and
	// returns the ciphertext with the fresh nonce used.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt opens ciphertext produced with the same key, nonce and aad.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager maps an algorithm tag to a ready cipher.
type AEADManager interface {
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyManager handles the DEK side of envelope encryption.
type KeyManager interface {
	// GenerateDek returns a fresh random 32-byte DEK.
	GenerateDek() ([]byte, error)

	// WrapDek encrypts a DEK under the master key.
	WrapDek(
		masterKey *cryptoDomain.MasterKey,
		dek []byte,
		alg cryptoDomain.Algorithm,
	) (cryptoDomain.WrappedDek, error)

	// UnwrapDek recovers the DEK from its wrapped form.
	UnwrapDek(
		masterKey *cryptoDomain.MasterKey,
		wrapped cryptoDomain.WrappedDek,
		alg cryptoDomain.Algorithm,
	) ([]byte, error)
}
