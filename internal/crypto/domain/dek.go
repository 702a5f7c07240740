// Package domain defines the core cryptographic domain models for envelope encryption.
//
// It implements a two-tier key hierarchy: Master Key → DEK → Data.
// Every record gets a freshly generated Data Encryption Key; the master key
// only ever encrypts DEKs, which limits its exposure and lets a future key
// rotation rewrap DEKs without re-encrypting payloads. Supports AESGCM and
// ChaCha20 algorithms with 256-bit keys.
package domain

// WrappedDek represents a Data Encryption Key encrypted under the master key.
// It travels inside the same record as the payload the DEK encrypted. The
// plaintext DEK is never persisted and should be zeroed from memory
// immediately after use.
type WrappedDek struct {
	EncryptedKey []byte // The 32-byte DEK sealed with the master key (tag appended)
	Nonce        []byte // Unique nonce for wrapping the DEK
}
