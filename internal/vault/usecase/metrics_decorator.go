package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
	"github.com/facturante/secrets/internal/metrics"
)

// secretVaultWithMetrics decorates SecretVault with metrics instrumentation.
type secretVaultWithMetrics struct {
	next    SecretVault
	metrics metrics.BusinessMetrics
}

// NewSecretVaultWithMetrics wraps a SecretVault with metrics recording.
func NewSecretVaultWithMetrics(vault SecretVault, m metrics.BusinessMetrics) SecretVault {
	return &secretVaultWithMetrics{
		next:    vault,
		metrics: m,
	}
}

// Encrypt records metrics for vault encryption operations.
func (v *secretVaultWithMetrics) Encrypt(
	ctx context.Context,
	domain cryptoDomain.KeyDomain,
	plaintext string,
) (string, error) {
	start := time.Now()
	token, err := v.next.Encrypt(ctx, domain, plaintext)

	status := "success"
	if err != nil {
		status = "error"
	}

	v.metrics.RecordOperation(ctx, "vault", "secret_encrypt", status)
	v.metrics.RecordDuration(ctx, "vault", "secret_encrypt", time.Since(start), status)

	return token, err
}

// Decrypt records metrics for vault decryption operations.
func (v *secretVaultWithMetrics) Decrypt(
	ctx context.Context,
	domain cryptoDomain.KeyDomain,
	token string,
) (string, error) {
	start := time.Now()
	plaintext, err := v.next.Decrypt(ctx, domain, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	v.metrics.RecordOperation(ctx, "vault", "secret_decrypt", status)
	v.metrics.RecordDuration(ctx, "vault", "secret_decrypt", time.Since(start), status)

	return plaintext, err
}
