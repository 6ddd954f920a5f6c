package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/facturante/secrets/internal/config"
	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
	publicidDomain "github.com/facturante/secrets/internal/publicid/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:           "info",
		TokenAlgorithm:     "aes-gcm",
		PublicIDSecret:     "public-id-secret-material",
		BillingSecret:      "billing-secret-material",
		TaxAuthoritySecret: "tax-authority-secret-material",
		MetricsEnabled:     false,
		MetricsNamespace:   "secrets_test",
		MetricsPort:        0,
	}
}

func TestContainer_Wiring(t *testing.T) {
	container := NewContainer(testConfig())
	defer func() {
		require.NoError(t, container.Shutdown(context.Background()))
	}()

	t.Run("config and logger", func(t *testing.T) {
		assert.NotNil(t, container.Config())
		assert.NotNil(t, container.Logger())
		assert.Same(t, container.Logger(), container.Logger())
	})

	t.Run("keyring is a singleton", func(t *testing.T) {
		assert.Same(t, container.Keyring(), container.Keyring())
	})

	t.Run("token codec", func(t *testing.T) {
		codec, err := container.TokenCodec()
		require.NoError(t, err)
		assert.NotNil(t, codec)
	})

	t.Run("hash service", func(t *testing.T) {
		assert.NotNil(t, container.HashService())
	})

	t.Run("vault round trip through the container", func(t *testing.T) {
		vault, err := container.SecretVault()
		require.NoError(t, err)

		ctx := context.Background()
		token, err := vault.Encrypt(ctx, cryptoDomain.DomainBilling, "2850590940090418135201")
		require.NoError(t, err)

		plaintext, err := vault.Decrypt(ctx, cryptoDomain.DomainBilling, token)
		require.NoError(t, err)
		assert.Equal(t, "2850590940090418135201", plaintext)
	})

	t.Run("public id round trip through the container", func(t *testing.T) {
		codec, err := container.PublicIDCodec()
		require.NoError(t, err)

		token, err := codec.Encode(publicidDomain.PublicID{
			Type:     publicidDomain.TypeInvoice,
			AgencyID: 7,
			LocalID:  12345,
		})
		require.NoError(t, err)

		decoded := codec.Decode(token)
		require.NotNil(t, decoded)
		assert.Equal(t, publicidDomain.TypeInvoice, decoded.Type)
		assert.Equal(t, int64(7), decoded.AgencyID)
		assert.Equal(t, int64(12345), decoded.LocalID)
	})
}

func TestContainer_MetricsEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = true
	container := NewContainer(cfg)
	defer func() {
		require.NoError(t, container.Shutdown(context.Background()))
	}()

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.NotNil(t, provider)

	businessMetrics, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)

	vault, err := container.SecretVault()
	require.NoError(t, err)

	// Decorated vault still round trips.
	ctx := context.Background()
	token, err := vault.Encrypt(ctx, cryptoDomain.DomainTaxAuthority, "clave-fiscal")
	require.NoError(t, err)
	plaintext, err := vault.Decrypt(ctx, cryptoDomain.DomainTaxAuthority, token)
	require.NoError(t, err)
	assert.Equal(t, "clave-fiscal", plaintext)
}

func TestContainer_InvalidTokenAlgorithm(t *testing.T) {
	cfg := testConfig()
	cfg.TokenAlgorithm = "rot13"
	container := NewContainer(cfg)

	_, err := container.TokenCodec()
	require.Error(t, err)
	assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)

	// Initialization errors are sticky.
	_, err = container.TokenCodec()
	require.Error(t, err)

	_, err = container.SecretVault()
	require.Error(t, err)
}
