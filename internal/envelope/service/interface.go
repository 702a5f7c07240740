// Package service implements the envelope encryption core: encrypting
// payloads into self-contained records and recovering payloads from them.
//
// Every Encrypt call generates a fresh 32-byte data encryption key (DEK)
// and two independent 12-byte nonces, encrypts the JSON-serialized payload
// under the DEK, wraps the DEK under the process master key, and assembles
// an immutable record with all binary material hex-encoded. Decrypt reverses
// the process after structural validation, unwrapping the DEK first and the
// payload second. Authentication failures in either stage are reported
// identically so callers cannot distinguish which layer was tampered with.
package service

import (
	envelopeDomain "github.com/Arpan-gl/mirfa-test-app/internal/envelope/domain"
)

// EnvelopeService defines the envelope encryption operations.
type EnvelopeService interface {
	// Encrypt serializes payload to JSON and seals it into a new encrypted
	// record owned by partyID. A fresh DEK and fresh nonces are generated on
	// every call; encrypting the same payload twice produces entirely
	// different records. The record is returned to the caller and not
	// persisted here.
	//
	// Fails with ErrPayloadSerialization if the payload cannot be serialized,
	// or with a configuration error if the master key is unavailable.
	Encrypt(partyID string, payload any) (*envelopeDomain.EncryptedRecord, error)

	// Decrypt validates the record's structure, unwraps its DEK under the
	// master key and decrypts the payload under the recovered DEK. The
	// deserialized payload is returned together with the record's identity.
	//
	// Fails with a validation error before any cryptographic operation if the
	// record is structurally invalid, or with ErrDecryptionFailed if either
	// authentication stage rejects the ciphertext.
	Decrypt(record *envelopeDomain.EncryptedRecord) (*envelopeDomain.DecryptedPayload, error)
}
