package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
	"github.com/facturante/secrets/internal/errors"
)

// staticSecretSource is a SecretSource backed by a plain map, used across
// the package tests to exercise components with distinct keys per test.
type staticSecretSource map[string]string

func (s staticSecretSource) KeySecret(domain string) string { return s[domain] }

func TestKeyring_Resolve(t *testing.T) {
	source := staticSecretSource{
		"public-id":            "public-id-secret-material",
		"billing-secret":       "billing-secret-material",
		"tax-authority-secret": "tax-authority-secret-material",
	}

	t.Run("derives a 32-byte key", func(t *testing.T) {
		keyring := NewKeyring(source)

		key, err := keyring.Resolve(cryptoDomain.DomainBilling)
		require.NoError(t, err)
		assert.Len(t, key, cryptoDomain.KeySize)
	})

	t.Run("repeated calls return the cached key", func(t *testing.T) {
		keyring := NewKeyring(source)

		first, err := keyring.Resolve(cryptoDomain.DomainBilling)
		require.NoError(t, err)
		second, err := keyring.Resolve(cryptoDomain.DomainBilling)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("derivation is a pure function of the secret", func(t *testing.T) {
		a, err := NewKeyring(source).Resolve(cryptoDomain.DomainBilling)
		require.NoError(t, err)
		b, err := NewKeyring(source).Resolve(cryptoDomain.DomainBilling)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("distinct domains derive distinct keys", func(t *testing.T) {
		keyring := NewKeyring(source)

		billing, err := keyring.Resolve(cryptoDomain.DomainBilling)
		require.NoError(t, err)
		tax, err := keyring.Resolve(cryptoDomain.DomainTaxAuthority)
		require.NoError(t, err)

		assert.NotEqual(t, billing, tax)
	})

	t.Run("missing secret is a configuration error", func(t *testing.T) {
		keyring := NewKeyring(staticSecretSource{})

		_, err := keyring.Resolve(cryptoDomain.DomainBilling)
		require.Error(t, err)
		assert.ErrorIs(t, err, cryptoDomain.ErrMissingKeySecret)
		assert.ErrorIs(t, err, errors.ErrConfiguration)
	})

	t.Run("concurrent first resolution yields one key", func(t *testing.T) {
		keyring := NewKeyring(source)

		const goroutines = 16
		keys := make([][]byte, goroutines)
		var wg sync.WaitGroup
		wg.Add(goroutines)
		for i := 0; i < goroutines; i++ {
			go func(i int) {
				defer wg.Done()
				key, err := keyring.Resolve(cryptoDomain.DomainPublicID)
				assert.NoError(t, err)
				keys[i] = key
			}(i)
		}
		wg.Wait()

		for i := 1; i < goroutines; i++ {
			assert.Equal(t, keys[0], keys[i])
		}
	})
}
