package domain

// Algorithm identifies the AEAD suite used to seal a payload and wrap its
// DEK. The tag travels with every record, so a record is always decrypted
// with the suite that produced it.
type Algorithm string

const (
	// AESGCM is AES-256 in Galois/Counter Mode. The fast choice on CPUs
	// with AES instructions.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 is ChaCha20-Poly1305, constant time in software on any CPU.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// Sizes shared by both supported AEAD suites. Every key in the envelope
// hierarchy (the master key and per-record DEKs) is 256 bits, and both
// suites use a 96-bit nonce with a 128-bit authentication tag.
const (
	KeySize   = 32
	NonceSize = 12
	TagSize   = 16
)
