package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "aes-gcm", cfg.TokenAlgorithm)
		assert.True(t, cfg.MetricsEnabled)
		assert.Equal(t, "secrets", cfg.MetricsNamespace)
		assert.Equal(t, 8081, cfg.MetricsPort)
	})

	t.Run("domain secrets from environment", func(t *testing.T) {
		t.Setenv("PUBLIC_ID_SECRET", "public-id-key-material")
		t.Setenv("BILLING_SECRET", "billing-key-material")
		t.Setenv("TAX_AUTHORITY_SECRET", "tax-key-material")

		cfg := Load()

		assert.Equal(t, "public-id-key-material", cfg.PublicIDSecret)
		assert.Equal(t, "billing-key-material", cfg.BillingSecret)
		assert.Equal(t, "tax-key-material", cfg.TaxAuthoritySecret)
	})

	t.Run("falls back to SECRET_KEY_BASE", func(t *testing.T) {
		t.Setenv("SECRET_KEY_BASE", "shared-key-material")

		cfg := Load()

		assert.Equal(t, "shared-key-material", cfg.PublicIDSecret)
		assert.Equal(t, "shared-key-material", cfg.BillingSecret)
		assert.Equal(t, "shared-key-material", cfg.TaxAuthoritySecret)
	})

	t.Run("dedicated variable wins over fallback", func(t *testing.T) {
		t.Setenv("SECRET_KEY_BASE", "shared-key-material")
		t.Setenv("BILLING_SECRET", "billing-key-material")

		cfg := Load()

		assert.Equal(t, "billing-key-material", cfg.BillingSecret)
		assert.Equal(t, "shared-key-material", cfg.TaxAuthoritySecret)
	})
}

func TestConfig_KeySecret(t *testing.T) {
	cfg := &Config{
		PublicIDSecret:     "a",
		BillingSecret:      "b",
		TaxAuthoritySecret: "c",
	}

	tests := []struct {
		domain string
		want   string
	}{
		{DomainPublicID, "a"},
		{DomainBilling, "b"},
		{DomainTaxAuthority, "c"},
		{"unknown-domain", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.KeySecret(tt.domain))
		})
	}
}
