package service

import (
	cryptoDomain "github.com/Arpan-gl/mirfa-test-app/internal/crypto/domain"
)

// AEADManagerService implements AEADManager. It is the single place that maps
// an algorithm tag to a concrete cipher suite, so callers never construct
// ciphers directly.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher builds an AEAD cipher for alg keyed with key.
//
// The key size is checked before the algorithm so a caller holding a bad key
// gets ErrInvalidKeySize regardless of the algorithm it asked for. Unknown
// algorithm tags fail with ErrUnsupportedAlgorithm.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	switch alg {
	case cryptoDomain.AESGCM:
		return NewAESGCM(key)
	case cryptoDomain.ChaCha20:
		return NewChaCha20Poly1305(key)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}
