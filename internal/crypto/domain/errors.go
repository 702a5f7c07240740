package domain

import (
	"github.com/Arpan-gl/mirfa-test-app/internal/errors"
)

// Cipher operation errors. Each wraps ErrInvalidInput, so the HTTP layer
// reports them as unprocessable input rather than as server faults.
var (
	// ErrUnsupportedAlgorithm rejects algorithm identifiers outside AESGCM
	// and ChaCha20.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize rejects keys that are not exactly KeySize bytes.
	// Both supported ciphers take 256-bit keys.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrDecryptionFailed covers every decryption failure: wrong key,
	// tampered ciphertext, bad nonce, corrupted data. The error never names
	// the cause; it is identical whether the DEK unwrap or the payload open
	// failed, and the failing stage appears only in debug logs.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")
)

// Master key resolution errors. The master key is provisioned through the
// MASTER_KEY environment variable as a 64-character hex string. These are
// configuration faults: they abort startup and, if they ever surface on a
// request path, map to a server-side status rather than a client error.
var (
	// ErrMasterKeyNotSet reports an absent or empty MASTER_KEY.
	ErrMasterKeyNotSet = errors.Wrap(errors.ErrConfiguration, "master key not set")

	// ErrInvalidMasterKeyFormat reports a MASTER_KEY value that is not valid hex.
	ErrInvalidMasterKeyFormat = errors.Wrap(errors.ErrConfiguration, "master key is not valid hex")

	// ErrInvalidMasterKeyLength reports a decoded key that is not KeySize bytes.
	ErrInvalidMasterKeyLength = errors.Wrap(errors.ErrConfiguration, "invalid master key length")
)
