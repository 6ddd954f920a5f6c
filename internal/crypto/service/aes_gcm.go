package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
)

// AESGCMCipher implements the AEAD interface using AES-256-GCM.
//
// AES-GCM combines AES encryption with GMAC authentication: any modification
// of the ciphertext, nonce, or tag is detected before plaintext is released.
// The cipher instance is stateless and safe for concurrent use from multiple
// goroutines; each encryption generates its own nonce independently.
//
// Parameters: 256-bit key, 12-byte random nonce per encryption, 16-byte
// authentication tag appended to the ciphertext by Seal.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-256-GCM cipher instance.
//
// The key must be exactly 32 bytes (256 bits); anything else is rejected
// with ErrInvalidKeySize.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt encrypts plaintext using AES-256-GCM with optional additional
// authenticated data.
//
// A fresh 12-byte nonce is generated from crypto/rand on every call; the
// nonce is never derived from content, so nonce reuse under a fixed key
// cannot occur. The returned ciphertext carries the 16-byte authentication
// tag appended to the end.
func (a *AESGCMCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = a.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Decrypt decrypts ciphertext using AES-256-GCM with the provided nonce and AAD.
//
// The authentication tag is verified before any plaintext is returned. On
// verification failure no plaintext is released.
func (a *AESGCMCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
