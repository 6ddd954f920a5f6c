// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Key domain names recognized by the configuration surface. Each domain maps
// to its own environment-supplied secret string.
const (
	DomainPublicID     = "public-id"
	DomainBilling      = "billing-secret"
	DomainTaxAuthority = "tax-authority-secret"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// TokenAlgorithm selects the AEAD used for newly issued tokens
	// ("aes-gcm" or "chacha20-poly1305").
	TokenAlgorithm string

	// PublicIDSecret is the key secret for the "public-id" domain.
	PublicIDSecret string
	// BillingSecret is the key secret for the "billing-secret" domain.
	BillingSecret string
	// TaxAuthoritySecret is the key secret for the "tax-authority-secret" domain.
	TaxAuthoritySecret string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
//
// Each key domain reads its own variable first and falls back to
// SECRET_KEY_BASE, so small deployments can configure a single secret while
// production deployments keep the three domains isolated. An empty resolved
// secret is not defaulted here; it surfaces as a configuration error on
// first key use.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Token encryption
		TokenAlgorithm: env.GetString("TOKEN_ALGORITHM", "aes-gcm"),

		// Key domain secrets, with SECRET_KEY_BASE as the documented fallback
		PublicIDSecret:     secretWithFallback("PUBLIC_ID_SECRET"),
		BillingSecret:      secretWithFallback("BILLING_SECRET"),
		TaxAuthoritySecret: secretWithFallback("TAX_AUTHORITY_SECRET"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "secrets"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// KeySecret returns the configured secret string for a key domain.
// An unknown domain or an unconfigured secret yields an empty string;
// callers treat that as a fatal configuration error.
func (c *Config) KeySecret(domain string) string {
	switch domain {
	case DomainPublicID:
		return c.PublicIDSecret
	case DomainBilling:
		return c.BillingSecret
	case DomainTaxAuthority:
		return c.TaxAuthoritySecret
	default:
		return ""
	}
}

// secretWithFallback reads the named variable, falling back to SECRET_KEY_BASE.
func secretWithFallback(name string) string {
	if value := env.GetString(name, ""); value != "" {
		return value
	}
	return env.GetString("SECRET_KEY_BASE", "")
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
