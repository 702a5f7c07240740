package app

import (
	"fmt"

	cryptoDomain "github.com/Arpan-gl/mirfa-test-app/internal/crypto/domain"
	cryptoService "github.com/Arpan-gl/mirfa-test-app/internal/crypto/service"
)

// MasterKey returns the master key loaded from the environment. A load
// failure is memoized, so a misconfigured process fails the same way on
// every call.
func (c *Container) MasterKey() (*cryptoDomain.MasterKey, error) {
	return c.masterKey.get(func() (*cryptoDomain.MasterKey, error) {
		masterKey, err := cryptoDomain.LoadMasterKeyFromEnv()
		if err != nil {
			return nil, fmt.Errorf("failed to load master key: %w", err)
		}
		return masterKey, nil
	})
}

// AEADManager returns the AEAD cipher factory.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerOnce.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// KeyManager returns the DEK generation and wrapping service.
func (c *Container) KeyManager() cryptoService.KeyManager {
	c.keyManagerOnce.Do(func() {
		c.keyManager = cryptoService.NewKeyManager(c.AEADManager())
	})
	return c.keyManager
}
