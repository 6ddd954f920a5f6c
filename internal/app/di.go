// Package app provides the dependency injection container assembling the
// secret-protection components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/facturante/secrets/internal/config"
	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
	cryptoService "github.com/facturante/secrets/internal/crypto/service"
	"github.com/facturante/secrets/internal/metrics"
	publicidUsecase "github.com/facturante/secrets/internal/publicid/usecase"
	vaultUsecase "github.com/facturante/secrets/internal/vault/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
//
// The keyring is an explicitly constructed, immutable service injected into
// the components that need it, so every component's key dependency is visible
// in its contract and trivially testable with distinct keys per test.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	keyring       *cryptoService.Keyring
	tokenCodec    *cryptoService.TokenCodec
	hashService   cryptoService.HashService
	publicIDCodec publicidUsecase.Codec
	secretVault   vaultUsecase.SecretVault

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	keyringInit         sync.Once
	tokenCodecInit      sync.Once
	hashServiceInit     sync.Once
	publicIDCodecInit   sync.Once
	secretVaultInit     sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// Returns a no-op implementation when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Keyring returns the per-domain key material service.
func (c *Container) Keyring() *cryptoService.Keyring {
	c.keyringInit.Do(func() {
		c.keyring = cryptoService.NewKeyring(c.config)
	})
	return c.keyring
}

// TokenCodec returns the versioned authenticated-token codec.
func (c *Container) TokenCodec() (*cryptoService.TokenCodec, error) {
	var err error
	c.tokenCodecInit.Do(func() {
		c.tokenCodec, err = cryptoService.NewTokenCodec(
			c.Keyring(),
			cryptoService.NewAEADManager(),
			cryptoDomain.Algorithm(c.config.TokenAlgorithm),
		)
		if err != nil {
			c.initErrors["tokenCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// HashService returns the deterministic secret hash service.
func (c *Container) HashService() cryptoService.HashService {
	c.hashServiceInit.Do(func() {
		c.hashService = cryptoService.NewSHA256HashService()
	})
	return c.hashService
}

// PublicIDCodec returns the opaque public identifier codec.
func (c *Container) PublicIDCodec() (publicidUsecase.Codec, error) {
	var err error
	c.publicIDCodecInit.Do(func() {
		c.publicIDCodec, err = c.initPublicIDCodec()
		if err != nil {
			c.initErrors["publicIDCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["publicIDCodec"]; exists {
		return nil, storedErr
	}
	return c.publicIDCodec, nil
}

// SecretVault returns the credential vault, decorated with metrics when enabled.
func (c *Container) SecretVault() (vaultUsecase.SecretVault, error) {
	var err error
	c.secretVaultInit.Do(func() {
		c.secretVault, err = c.initSecretVault()
		if err != nil {
			c.initErrors["secretVault"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["secretVault"]; exists {
		return nil, storedErr
	}
	return c.secretVault, nil
}

// Shutdown releases container resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("metrics provider shutdown: %w", err)
		}
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}

// initBusinessMetrics wires business metrics against the provider, or the
// no-op recorder when metrics are disabled.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

// initPublicIDCodec wires the public identifier codec.
func (c *Container) initPublicIDCodec() (publicidUsecase.Codec, error) {
	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, err
	}
	return publicidUsecase.NewCodec(tokenCodec), nil
}

// initSecretVault wires the vault, decorating it with metrics when enabled.
func (c *Container) initSecretVault() (vaultUsecase.SecretVault, error) {
	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, err
	}

	vault := vaultUsecase.NewSecretVault(tokenCodec)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, err
		}
		vault = vaultUsecase.NewSecretVaultWithMetrics(vault, businessMetrics)
	}

	return vault, nil
}
