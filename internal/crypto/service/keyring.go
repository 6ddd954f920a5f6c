package service

import (
	"crypto/sha256"
	"sync"

	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
	"github.com/facturante/secrets/internal/errors"
)

// Keyring resolves and caches per-domain symmetric key material.
//
// Keys are derived once per domain by hashing the domain's operator-supplied
// secret string with SHA-256, so any non-empty secret yields exactly 32 bytes
// of key material regardless of its length or encoding. Derived keys are
// cached for the life of the process and never invalidated; rotating a key
// requires a process restart and re-encrypting every value stored under the
// old key (no dual-key transitional decode is provided).
//
// The key bytes never leave this package except through Resolve, are never
// logged, and are never compared across domains.
type Keyring struct {
	source SecretSource

	mu   sync.RWMutex
	keys map[cryptoDomain.KeyDomain][]byte
}

// NewKeyring creates a Keyring backed by the given secret source.
func NewKeyring(source SecretSource) *Keyring {
	return &Keyring{
		source: source,
		keys:   make(map[cryptoDomain.KeyDomain][]byte),
	}
}

// Resolve returns the 32-byte key for the domain, deriving and caching it on
// first use. Repeated calls are O(1).
//
// Returns ErrMissingKeySecret when the domain has no configured secret; this
// is fatal to the calling operation and is never defaulted. Safe for
// concurrent use: derivation is a pure function of the configured secret, so
// callers racing on first resolution derive identical bytes.
func (k *Keyring) Resolve(domain cryptoDomain.KeyDomain) ([]byte, error) {
	k.mu.RLock()
	key, ok := k.keys[domain]
	k.mu.RUnlock()
	if ok {
		return key, nil
	}

	secret := k.source.KeySecret(string(domain))
	if secret == "" {
		return nil, errors.Wrapf(cryptoDomain.ErrMissingKeySecret, "domain %q", domain)
	}

	sum := sha256.Sum256([]byte(secret))

	k.mu.Lock()
	defer k.mu.Unlock()
	// Another caller may have resolved the same domain while we derived;
	// both derivations are identical, keep the stored one.
	if existing, ok := k.keys[domain]; ok {
		return existing, nil
	}
	key = sum[:]
	k.keys[domain] = key
	return key, nil
}
