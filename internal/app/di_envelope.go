package app

import (
	"fmt"

	envelopeHTTP "github.com/Arpan-gl/mirfa-test-app/internal/envelope/http"
	envelopeRepository "github.com/Arpan-gl/mirfa-test-app/internal/envelope/repository"
	envelopeService "github.com/Arpan-gl/mirfa-test-app/internal/envelope/service"
	envelopeUseCase "github.com/Arpan-gl/mirfa-test-app/internal/envelope/usecase"
)

// EnvelopeService returns the envelope encryption service bound to the
// loaded master key.
func (c *Container) EnvelopeService() (envelopeService.EnvelopeService, error) {
	return c.envelopeService.get(func() (envelopeService.EnvelopeService, error) {
		masterKey, err := c.MasterKey()
		if err != nil {
			return nil, fmt.Errorf("failed to get master key for envelope service: %w", err)
		}
		return envelopeService.NewEnvelopeService(masterKey, c.KeyManager(), c.AEADManager(), c.Logger()), nil
	})
}

// RecordRepository returns the record store selected by the storage driver.
func (c *Container) RecordRepository() (envelopeUseCase.RecordRepository, error) {
	return c.recordRepository.get(func() (envelopeUseCase.RecordRepository, error) {
		switch c.config.StorageDriver {
		case "memory":
			return envelopeRepository.NewMemoryRecordRepository(), nil
		case "redis":
			client, err := c.RedisClient()
			if err != nil {
				return nil, fmt.Errorf("failed to get redis client for record repository: %w", err)
			}
			return envelopeRepository.NewRedisRecordRepository(client), nil
		default:
			return nil, fmt.Errorf("unsupported storage driver: %s", c.config.StorageDriver)
		}
	})
}

// RecordUseCase returns the record use case, wrapped with metric recording
// when metrics are enabled.
func (c *Container) RecordUseCase() (envelopeUseCase.RecordUseCase, error) {
	return c.recordUseCase.get(func() (envelopeUseCase.RecordUseCase, error) {
		svc, err := c.EnvelopeService()
		if err != nil {
			return nil, fmt.Errorf("failed to get envelope service for record use case: %w", err)
		}

		repo, err := c.RecordRepository()
		if err != nil {
			return nil, fmt.Errorf("failed to get record repository for record use case: %w", err)
		}

		useCase := envelopeUseCase.NewRecordUseCase(svc, repo)

		if !c.config.MetricsEnabled {
			return useCase, nil
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for record use case: %w", err)
		}
		return envelopeUseCase.NewRecordUseCaseWithMetrics(useCase, businessMetrics), nil
	})
}

// RecordHandler returns the HTTP handler for the record endpoints.
func (c *Container) RecordHandler() (*envelopeHTTP.RecordHandler, error) {
	return c.recordHandler.get(func() (*envelopeHTTP.RecordHandler, error) {
		useCase, err := c.RecordUseCase()
		if err != nil {
			return nil, fmt.Errorf("failed to get record use case for record handler: %w", err)
		}
		return envelopeHTTP.NewRecordHandler(useCase, c.Logger()), nil
	})
}
