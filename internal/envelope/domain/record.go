// Package domain defines the envelope encryption domain model and errors.
// Each encrypted record carries its own wrapped data encryption key (DEK):
// the payload is encrypted under a fresh per-record DEK, and the DEK is
// wrapped under the process master key. Binary material travels hex-encoded
// so a record is a self-contained, transport-safe JSON object.
package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Record format constants. The record pins the cipher suite and key sizes
// explicitly so that stored records remain interpretable across deployments.
const (
	// SupportedAlgorithm is the only cipher suite tag accepted in records.
	SupportedAlgorithm = "aes-256-gcm"

	// SupportedMasterKeyVersion is the only master key generation accepted in records.
	SupportedMasterKeyVersion = 1

	// RecordNonceSize is the decoded byte length of the two nonce fields.
	RecordNonceSize = 12

	// RecordTagSize is the decoded byte length of the two authentication tag fields.
	RecordTagSize = 16
)

// Record field names as they appear in the JSON wire format. Validation
// errors reference these so callers can tell which field was rejected.
const (
	FieldPayloadNonce      = "payloadNonce"
	FieldPayloadCiphertext = "payloadCiphertext"
	FieldPayloadTag        = "payloadTag"
	FieldDekWrapNonce      = "dekWrapNonce"
	FieldDekWrapped        = "dekWrapped"
	FieldDekWrapTag        = "dekWrapTag"
)

// hexPattern matches strings composed entirely of hexadecimal characters,
// including the empty string. Length checks are performed separately.
var hexPattern = regexp.MustCompile(`^[0-9a-fA-F]*$`)

// fixedFieldSizes maps fixed-length binary fields to their expected decoded
// byte counts. payloadCiphertext and dekWrapped are variable length and
// deliberately absent.
var fixedFieldSizes = map[string]int{
	FieldPayloadNonce: RecordNonceSize,
	FieldPayloadTag:   RecordTagSize,
	FieldDekWrapNonce: RecordNonceSize,
	FieldDekWrapTag:   RecordTagSize,
}

// EncryptedRecord is the unit of exchange and storage for envelope encryption.
// A record is immutable once created: re-encrypting a payload produces an
// entirely new record with a new ID, a new DEK and fresh nonces. All binary
// fields are lowercase hex strings when produced by this module, though
// mixed-case hex is accepted on input.
type EncryptedRecord struct {
	// ID is the unique identifier assigned at creation, used as the storage lookup key.
	ID uuid.UUID `json:"id"`
	// PartyID is the caller-supplied opaque identifier of the owning party.
	PartyID string `json:"partyId"`
	// CreatedAt is the UTC creation timestamp; informational, not cryptographically bound.
	CreatedAt time.Time `json:"createdAt"`
	// PayloadNonce is the hex-encoded 12-byte IV used once for payload encryption.
	PayloadNonce string `json:"payloadNonce"`
	// PayloadCiphertext is the hex-encoded payload ciphertext; decoded length equals the plaintext length.
	PayloadCiphertext string `json:"payloadCiphertext"`
	// PayloadTag is the hex-encoded 16-byte authentication tag binding the payload ciphertext.
	PayloadTag string `json:"payloadTag"`
	// DekWrapNonce is the hex-encoded 12-byte IV used once for DEK wrapping.
	DekWrapNonce string `json:"dekWrapNonce"`
	// DekWrapped is the hex-encoded ciphertext of the 32-byte DEK.
	DekWrapped string `json:"dekWrapped"`
	// DekWrapTag is the hex-encoded 16-byte authentication tag binding the wrapped DEK.
	DekWrapTag string `json:"dekWrapTag"`
	// Alg identifies the cipher suite used for both payload and DEK encryption.
	Alg string `json:"alg"`
	// MkVersion identifies which master key generation wrapped the DEK.
	MkVersion int `json:"mkVersion"`
}

// hexField pairs a binary field's wire name with its hex-encoded value.
type hexField struct {
	name  string
	value string
}

// hexFields returns the six binary fields in wire-format order.
func (r *EncryptedRecord) hexFields() []hexField {
	return []hexField{
		{FieldPayloadNonce, r.PayloadNonce},
		{FieldPayloadCiphertext, r.PayloadCiphertext},
		{FieldPayloadTag, r.PayloadTag},
		{FieldDekWrapNonce, r.DekWrapNonce},
		{FieldDekWrapped, r.DekWrapped},
		{FieldDekWrapTag, r.DekWrapTag},
	}
}

// Validate enforces the structural invariants of a record before any
// cryptographic operation is attempted. Checks run in a fixed order and
// short-circuit on the first failure:
//
//  1. Alg must equal SupportedAlgorithm.
//  2. MkVersion must equal SupportedMasterKeyVersion.
//  3. Every binary field must contain only hexadecimal characters.
//  4. Every binary field must have an even character length.
//  5. Nonce and tag fields must decode to exactly 12 and 16 bytes.
//
// A record that passes Validate may still fail authenticated decryption;
// Validate only guarantees the fields are structurally sound.
func (r *EncryptedRecord) Validate() error {
	if r.Alg != SupportedAlgorithm {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, r.Alg)
	}

	if r.MkVersion != SupportedMasterKeyVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedKeyVersion, r.MkVersion)
	}

	fields := r.hexFields()

	for _, field := range fields {
		if !hexPattern.MatchString(field.value) {
			return fmt.Errorf("%w: %s", ErrInvalidHex, field.name)
		}
	}

	for _, field := range fields {
		if len(field.value)%2 != 0 {
			return fmt.Errorf("%w: %s", ErrInvalidHexLength, field.name)
		}
	}

	for _, field := range fields {
		expected, ok := fixedFieldSizes[field.name]
		if !ok {
			continue
		}
		if actual := len(field.value) / 2; actual != expected {
			return fmt.Errorf("%w: %s must be %d bytes, got %d", ErrInvalidFieldLength, field.name, expected, actual)
		}
	}

	return nil
}
