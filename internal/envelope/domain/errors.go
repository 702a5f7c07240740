package domain

import (
	"github.com/Arpan-gl/mirfa-test-app/internal/errors"
)

// Record error classes, each wrapping an internal/errors sentinel.
// Validation errors are always raised before any cryptographic primitive
// runs, so a caller seeing one knows no decryption was attempted.
var (
	// ErrUnsupportedAlgorithm indicates the record's alg tag does not match
	// the supported cipher suite.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrUnsupportedKeyVersion indicates the record's mkVersion does not match
	// the supported master key generation.
	ErrUnsupportedKeyVersion = errors.Wrap(errors.ErrInvalidInput, "unsupported master key version")

	// ErrInvalidHex indicates a binary field contains non-hexadecimal characters.
	ErrInvalidHex = errors.Wrap(errors.ErrInvalidInput, "invalid hex encoding")

	// ErrInvalidHexLength indicates a binary field has an odd number of hex characters.
	ErrInvalidHexLength = errors.Wrap(errors.ErrInvalidInput, "invalid hex length")

	// ErrInvalidFieldLength indicates a fixed-length binary field decodes to the
	// wrong number of bytes.
	ErrInvalidFieldLength = errors.Wrap(errors.ErrInvalidInput, "invalid field length")

	// ErrPayloadSerialization indicates the payload could not be serialized to JSON.
	ErrPayloadSerialization = errors.Wrap(errors.ErrInvalidInput, "payload serialization failed")

	// ErrPayloadDeserialization indicates the decrypted payload bytes are not valid JSON.
	// Distinct from tampering: the ciphertext authenticated correctly but the recovered
	// plaintext could not be parsed.
	ErrPayloadDeserialization = errors.Wrap(errors.ErrInvalidInput, "payload deserialization failed")

	// ErrRecordNotFound indicates the encrypted record was not found.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "encrypted record not found")

	// ErrRecordAlreadyExists indicates a record with the same id already exists.
	ErrRecordAlreadyExists = errors.Wrap(errors.ErrConflict, "encrypted record already exists")
)
