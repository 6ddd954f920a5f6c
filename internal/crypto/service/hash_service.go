package service

import (
	"crypto/sha256"
	"encoding/hex"
)

type sha256HashService struct{}

// NewSHA256HashService creates a new SHA-256 hash service.
//
// The digest is a stable, non-reversible fingerprint used only for equality
// lookups, deduplication, and audit trails; it carries no key material and
// is intentionally unsalted because its only requirement is repeatable
// equality across processes, not resistance to precomputation.
// Confidentiality of the underlying value is handled by the vault.
func NewSHA256HashService() HashService {
	return &sha256HashService{}
}

// Hash computes the SHA-256 hash of the input value and returns it as a
// 64-character lowercase hex string.
func (s *sha256HashService) Hash(value []byte) string {
	hash := sha256.Sum256(value)
	return hex.EncodeToString(hash[:])
}
