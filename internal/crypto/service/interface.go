// Package service provides the cryptographic services behind opaque tokens:
// AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305), per-domain key derivation,
// the versioned token codec, and deterministic secret hashing.
package service

import (
	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// SecretSource supplies the operator-configured secret string for a key
// domain. Implemented by *config.Config; tests supply their own sources to
// exercise components with distinct keys.
type SecretSource interface {
	// KeySecret returns the configured secret for the domain, or "" when absent.
	KeySecret(domain string) string
}

// HashService provides cryptographic hashing for deterministic secret lookups.
type HashService interface {
	Hash(value []byte) string
}
