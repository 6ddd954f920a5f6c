package usecase

import (
	"context"

	jellyValidation "github.com/jellydator/validation"

	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
	cryptoService "github.com/facturante/secrets/internal/crypto/service"
	"github.com/facturante/secrets/internal/errors"
	"github.com/facturante/secrets/internal/validation"
	vaultDomain "github.com/facturante/secrets/internal/vault/domain"
)

type secretVault struct {
	tokens *cryptoService.TokenCodec
}

// NewSecretVault creates a SecretVault delegating to the token codec.
//
// Only the credential key domains are accepted ("billing-secret" and
// "tax-authority-secret"); they are kept separate so a key compromise in one
// domain cannot be used to decrypt the other.
func NewSecretVault(tokens *cryptoService.TokenCodec) SecretVault {
	return &secretVault{tokens: tokens}
}

// Encrypt encrypts plaintext into an opaque token for at-rest storage.
func (v *secretVault) Encrypt(
	_ context.Context,
	domain cryptoDomain.KeyDomain,
	plaintext string,
) (string, error) {
	if err := checkDomain(domain); err != nil {
		return "", err
	}
	payload := []byte(plaintext)
	defer cryptoDomain.Zero(payload)
	return v.tokens.Encode(domain, payload)
}

// Decrypt reverses Encrypt exactly, or fails closed.
func (v *secretVault) Decrypt(
	_ context.Context,
	domain cryptoDomain.KeyDomain,
	token string,
) (string, error) {
	if err := checkDomain(domain); err != nil {
		return "", err
	}
	if err := jellyValidation.Validate(token, jellyValidation.Required, validation.OpaqueToken); err != nil {
		return "", errors.Wrap(cryptoDomain.ErrInvalidToken, err.Error())
	}
	payload, err := v.tokens.Decode(domain, token)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(payload)
	return string(payload), nil
}

// checkDomain restricts the vault to its credential namespaces.
func checkDomain(domain cryptoDomain.KeyDomain) error {
	switch domain {
	case cryptoDomain.DomainBilling, cryptoDomain.DomainTaxAuthority:
		return nil
	default:
		return errors.Wrapf(vaultDomain.ErrUnsupportedDomain, "domain %q", domain)
	}
}
