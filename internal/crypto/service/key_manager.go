package service

import (
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/Arpan-gl/mirfa-test-app/internal/crypto/domain"
)

// KeyManagerService implements KeyManager for the two-tier envelope scheme:
// DEKs are wrapped under the master key, payload data is encrypted under
// DEKs. Every record receives a freshly generated DEK; nothing is cached or
// reused between calls, which is what guarantees key and nonce freshness
// across records.
type KeyManagerService struct {
	aeadManager AEADManager
}

// NewKeyManager creates a KeyManagerService that builds its wrap/unwrap
// ciphers through aeadManager.
func NewKeyManager(aeadManager AEADManager) *KeyManagerService {
	return &KeyManagerService{
		aeadManager: aeadManager,
	}
}

// GenerateDek draws a fresh 32-byte Data Encryption Key from crypto/rand.
// The caller owns the returned bytes and must zero them once the DEK is no
// longer needed.
func (km *KeyManagerService) GenerateDek() ([]byte, error) {
	dek := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(dek); err != nil {
		return nil, fmt.Errorf("failed to generate DEK: %w", err)
	}

	return dek, nil
}

// WrapDek seals dek under masterKey with a fresh nonce using alg.
//
// The resulting WrappedDek is safe to store or transport alongside the data
// the DEK encrypts; only a holder of the master key can recover the
// plaintext DEK.
func (km *KeyManagerService) WrapDek(
	masterKey *cryptoDomain.MasterKey,
	dek []byte,
	alg cryptoDomain.Algorithm,
) (cryptoDomain.WrappedDek, error) {
	aead, err := km.aeadManager.CreateCipher(masterKey.Key, alg)
	if err != nil {
		return cryptoDomain.WrappedDek{}, err
	}

	encryptedKey, nonce, err := aead.Encrypt(dek, nil)
	if err != nil {
		return cryptoDomain.WrappedDek{}, fmt.Errorf("failed to wrap DEK: %w", err)
	}

	return cryptoDomain.WrappedDek{
		EncryptedKey: encryptedKey,
		Nonce:        nonce,
	}, nil
}

// UnwrapDek recovers the plaintext DEK from wrapped using masterKey.
//
// The recovered DEK must stay in memory only, never persisted, and must be
// zeroed by the caller after use. Any authentication failure (wrong master
// key, tampered ciphertext, corrupted nonce) is reported as
// ErrDecryptionFailed with no further detail, so callers cannot distinguish
// the causes.
func (km *KeyManagerService) UnwrapDek(
	masterKey *cryptoDomain.MasterKey,
	wrapped cryptoDomain.WrappedDek,
	alg cryptoDomain.Algorithm,
) ([]byte, error) {
	aead, err := km.aeadManager.CreateCipher(masterKey.Key, alg)
	if err != nil {
		return nil, err
	}

	dek, err := aead.Decrypt(wrapped.EncryptedKey, wrapped.Nonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	return dek, nil
}
