package commands

import (
	"context"
	"fmt"
	"log/slog"

	vaultUsecase "github.com/facturante/secrets/internal/vault/usecase"
)

// RunEncrypt encrypts a plaintext credential under a vault key domain and
// writes the storage token to the output. The plaintext itself is never
// logged.
func RunEncrypt(
	ctx context.Context,
	vault vaultUsecase.SecretVault,
	logger *slog.Logger,
	domain string,
	plaintext string,
	io IOTuple,
) error {
	parsedDomain, err := parseVaultDomain(domain)
	if err != nil {
		return err
	}

	token, err := vault.Encrypt(ctx, parsedDomain, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	logger.Info("encrypted secret", slog.String("domain", domain))
	fmt.Fprintln(io.Writer, token)
	return nil
}

// RunDecrypt decrypts a storage token under a vault key domain and writes
// the plaintext to the output.
func RunDecrypt(
	ctx context.Context,
	vault vaultUsecase.SecretVault,
	logger *slog.Logger,
	domain string,
	token string,
	io IOTuple,
) error {
	parsedDomain, err := parseVaultDomain(domain)
	if err != nil {
		return err
	}

	plaintext, err := vault.Decrypt(ctx, parsedDomain, token)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	fmt.Fprintln(io.Writer, plaintext)
	return nil
}
