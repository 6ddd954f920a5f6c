package service

import (
	"encoding/base64"
	"strings"

	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
)

// Version literals pinning the token wire format to an AEAD algorithm.
// A future algorithm change is introduced as a new literal without breaking
// previously issued tokens; a decoder must reject any literal it does not
// recognize rather than guess.
const (
	versionAESGCM   = "v1"
	versionChaCha20 = "v2"
)

// Nonce and authentication tag lengths in bytes, shared by both algorithms.
const (
	nonceSize = 12
	tagSize   = 16
)

// TokenCodec is a versioned authenticated-encryption codec for arbitrary
// payloads, producing URL- and cookie-safe text tokens.
//
// Wire format: four dot-separated segments, the first a literal version tag
// and the rest base64url-encoded without padding:
//
//	<version>.<nonce>.<ciphertext>.<tag>
//
// The format is stable across key domains; only the key differs. Tokens are
// transient values constructed and consumed per call, never cached.
type TokenCodec struct {
	keyring *Keyring
	manager AEADManager
	alg     cryptoDomain.Algorithm
}

// NewTokenCodec creates a TokenCodec that encodes with the given algorithm.
// Returns ErrUnsupportedAlgorithm for an algorithm with no version literal.
func NewTokenCodec(keyring *Keyring, manager AEADManager, alg cryptoDomain.Algorithm) (*TokenCodec, error) {
	if _, err := versionFor(alg); err != nil {
		return nil, err
	}
	return &TokenCodec{
		keyring: keyring,
		manager: manager,
		alg:     alg,
	}, nil
}

// Encode encrypts payload under the domain's key and serializes the result
// as a four-segment token. A fresh random nonce is generated per call.
func (c *TokenCodec) Encode(domain cryptoDomain.KeyDomain, payload []byte) (string, error) {
	key, err := c.keyring.Resolve(domain)
	if err != nil {
		return "", err
	}

	cipher, err := c.manager.CreateCipher(key, c.alg)
	if err != nil {
		return "", err
	}

	sealed, nonce, err := cipher.Encrypt(payload, nil)
	if err != nil {
		return "", err
	}

	version, err := versionFor(c.alg)
	if err != nil {
		return "", err
	}

	// Seal appends the tag to the ciphertext; split it into its own segment.
	ciphertext, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	enc := base64.RawURLEncoding
	segments := []string{
		version,
		enc.EncodeToString(nonce),
		enc.EncodeToString(ciphertext),
		enc.EncodeToString(tag),
	}
	return strings.Join(segments, "."), nil
}

// Decode parses and decrypts a token issued under the domain's key.
//
// Fails closed: a wrong segment count, unrecognized version, invalid base64
// content, or AEAD authentication failure all return the same
// ErrInvalidToken with no plaintext, so callers cannot distinguish why a
// token was rejected. Configuration failures (missing key secret) are
// surfaced as-is since they indicate a broken deployment, not bad input.
func (c *TokenCodec) Decode(domain cryptoDomain.KeyDomain, token string) ([]byte, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 4 {
		return nil, cryptoDomain.ErrInvalidToken
	}

	alg, err := algorithmFor(segments[0])
	if err != nil {
		return nil, cryptoDomain.ErrInvalidToken
	}

	enc := base64.RawURLEncoding
	nonce, err := enc.DecodeString(segments[1])
	if err != nil {
		return nil, cryptoDomain.ErrInvalidToken
	}
	ciphertext, err := enc.DecodeString(segments[2])
	if err != nil {
		return nil, cryptoDomain.ErrInvalidToken
	}
	tag, err := enc.DecodeString(segments[3])
	if err != nil {
		return nil, cryptoDomain.ErrInvalidToken
	}

	// aead.Open panics on a wrong-length nonce, so reject bad lengths here.
	if len(nonce) != nonceSize || len(tag) != tagSize {
		return nil, cryptoDomain.ErrInvalidToken
	}

	key, err := c.keyring.Resolve(domain)
	if err != nil {
		return nil, err
	}

	cipher, err := c.manager.CreateCipher(key, alg)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	payload, err := cipher.Decrypt(sealed, nonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidToken
	}
	return payload, nil
}

// versionFor maps an algorithm to its token version literal.
func versionFor(alg cryptoDomain.Algorithm) (string, error) {
	switch alg {
	case cryptoDomain.AESGCM:
		return versionAESGCM, nil
	case cryptoDomain.ChaCha20:
		return versionChaCha20, nil
	default:
		return "", cryptoDomain.ErrUnsupportedAlgorithm
	}
}

// algorithmFor maps a token version literal to its algorithm.
func algorithmFor(version string) (cryptoDomain.Algorithm, error) {
	switch version {
	case versionAESGCM:
		return cryptoDomain.AESGCM, nil
	case versionChaCha20:
		return cryptoDomain.ChaCha20, nil
	default:
		return "", cryptoDomain.ErrUnsupportedAlgorithm
	}
}
