package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
	"github.com/facturante/secrets/internal/vault/usecase"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics to avoid dependency issues.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// mockSecretVault is a local mock for the decorated SecretVault.
type mockSecretVault struct {
	mock.Mock
}

func (m *mockSecretVault) Encrypt(
	ctx context.Context,
	domain cryptoDomain.KeyDomain,
	plaintext string,
) (string, error) {
	args := m.Called(ctx, domain, plaintext)
	return args.String(0), args.Error(1)
}

func (m *mockSecretVault) Decrypt(
	ctx context.Context,
	domain cryptoDomain.KeyDomain,
	token string,
) (string, error) {
	args := m.Called(ctx, domain, token)
	return args.String(0), args.Error(1)
}

func TestSecretVaultWithMetrics_Encrypt(t *testing.T) {
	ctx := context.Background()

	t.Run("Encrypt_Success", func(t *testing.T) {
		mockNext := &mockSecretVault{}
		mockMetrics := &mockBusinessMetrics{}
		vault := usecase.NewSecretVaultWithMetrics(mockNext, mockMetrics)

		mockNext.On("Encrypt", ctx, cryptoDomain.DomainBilling, "credential").
			Return("v1.a.b.c", nil).
			Once()
		mockMetrics.On("RecordOperation", ctx, "vault", "secret_encrypt", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "vault", "secret_encrypt", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		token, err := vault.Encrypt(ctx, cryptoDomain.DomainBilling, "credential")

		assert.NoError(t, err)
		assert.Equal(t, "v1.a.b.c", token)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Encrypt_Error", func(t *testing.T) {
		mockNext := &mockSecretVault{}
		mockMetrics := &mockBusinessMetrics{}
		vault := usecase.NewSecretVaultWithMetrics(mockNext, mockMetrics)

		expectedErr := errors.New("encrypt failed")
		mockNext.On("Encrypt", ctx, cryptoDomain.DomainBilling, "credential").
			Return("", expectedErr).
			Once()
		mockMetrics.On("RecordOperation", ctx, "vault", "secret_encrypt", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "vault", "secret_encrypt", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		_, err := vault.Encrypt(ctx, cryptoDomain.DomainBilling, "credential")

		assert.Equal(t, expectedErr, err)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestSecretVaultWithMetrics_Decrypt(t *testing.T) {
	ctx := context.Background()

	t.Run("Decrypt_Success", func(t *testing.T) {
		mockNext := &mockSecretVault{}
		mockMetrics := &mockBusinessMetrics{}
		vault := usecase.NewSecretVaultWithMetrics(mockNext, mockMetrics)

		mockNext.On("Decrypt", ctx, cryptoDomain.DomainTaxAuthority, "v1.a.b.c").
			Return("credential", nil).
			Once()
		mockMetrics.On("RecordOperation", ctx, "vault", "secret_decrypt", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "vault", "secret_decrypt", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		plaintext, err := vault.Decrypt(ctx, cryptoDomain.DomainTaxAuthority, "v1.a.b.c")

		assert.NoError(t, err)
		assert.Equal(t, "credential", plaintext)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Decrypt_Error", func(t *testing.T) {
		mockNext := &mockSecretVault{}
		mockMetrics := &mockBusinessMetrics{}
		vault := usecase.NewSecretVaultWithMetrics(mockNext, mockMetrics)

		expectedErr := errors.New("decrypt failed")
		mockNext.On("Decrypt", ctx, cryptoDomain.DomainTaxAuthority, "v1.a.b.c").
			Return("", expectedErr).
			Once()
		mockMetrics.On("RecordOperation", ctx, "vault", "secret_decrypt", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "vault", "secret_decrypt", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		_, err := vault.Decrypt(ctx, cryptoDomain.DomainTaxAuthority, "v1.a.b.c")

		assert.Equal(t, expectedErr, err)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
