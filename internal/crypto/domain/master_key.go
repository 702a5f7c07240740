package domain

import (
	"encoding/hex"
	"fmt"
	"os"
)

// MasterKeyVersion identifies the master key generation that wraps new DEKs.
//
// Exactly one generation is in service: records carry this value in their
// mkVersion field and any other value is rejected before decryption is
// attempted. Introducing a second generation (key rotation) would add a new
// constant here and teach the resolver to hold both keys.
const MasterKeyVersion = 1

// MasterKey represents the long-lived key that wraps per-record Data
// Encryption Keys (DEKs).
//
// The master key is the root of the envelope encryption hierarchy. It never
// encrypts payload data directly, only DEKs, which limits its exposure and
// keeps future key rotation from forcing payload re-encryption.
//
// Security considerations:
//   - The key must be exactly 32 bytes (256 bits) for AES-256 compatibility
//   - It should be generated by a cryptographically secure random source
//     (the create-master-key command does this)
//   - It is provisioned once per process and treated as read-only afterwards,
//     so concurrent encrypt/decrypt calls need no synchronization
//
// Fields:
//   - Version: the key generation recorded in produced records' mkVersion
//   - Key: the raw 32-byte key material
type MasterKey struct {
	Version int
	Key     []byte
}

// Close securely clears the key material from memory.
//
// Call it when the key is no longer needed (application shutdown). The
// MasterKey must not be used afterwards.
func (m *MasterKey) Close() {
	Zero(m.Key)
	m.Key = nil
}

// NewMasterKey builds a MasterKey from its hex-encoded form.
//
// The encoded form is a 64-character hex string (32 bytes decoded). Both
// lowercase and uppercase digits are accepted.
//
// Returns:
//   - ErrMasterKeyNotSet if encoded is empty
//   - ErrInvalidMasterKeyFormat if encoded is not valid hex
//   - ErrInvalidMasterKeyLength if the decoded key is not exactly 32 bytes
func NewMasterKey(encoded string) (*MasterKey, error) {
	if encoded == "" {
		return nil, ErrMasterKeyNotSet
	}

	key, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMasterKeyFormat, err)
	}
	if len(key) != KeySize {
		Zero(key)
		return nil, fmt.Errorf(
			"%w: master key must be %d bytes, got %d",
			ErrInvalidMasterKeyLength,
			KeySize,
			len(key),
		)
	}

	return &MasterKey{Version: MasterKeyVersion, Key: key}, nil
}

// LoadMasterKeyFromEnv resolves the master key from the environment.
//
// The key is read from the MASTER_KEY environment variable as a 64-character
// hex string:
//
//	MASTER_KEY="000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
//
// A missing or malformed value is a configuration fault: the surrounding
// service treats it as startup-fatal rather than a per-request error. The
// decoded bytes are resolved once and injected where needed; callers must
// not mutate them.
func LoadMasterKeyFromEnv() (*MasterKey, error) {
	return NewMasterKey(os.Getenv("MASTER_KEY"))
}
