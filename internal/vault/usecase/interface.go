// Package usecase implements the secret vault: encryption of sensitive
// credentials at rest behind domain-isolated keys.
package usecase

import (
	"context"

	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
)

// SecretVault defines the interface for protecting credentials at rest.
//
// The vault supports exactly one active key per domain: rotating a key
// requires re-encrypting all stored values under the new key. No dual-key
// transitional decode is provided; this is a known operational limitation.
type SecretVault interface {
	// Encrypt returns the opaque token to store in place of plaintext.
	// The plaintext credential never reaches storage.
	Encrypt(ctx context.Context, domain cryptoDomain.KeyDomain, plaintext string) (string, error)

	// Decrypt reverses Encrypt, returning the original string byte-for-byte.
	// Fails closed with ErrInvalidToken on any malformed or tampered token.
	Decrypt(ctx context.Context, domain cryptoDomain.KeyDomain, token string) (string, error)
}
