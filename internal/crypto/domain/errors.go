// Package domain defines core cryptographic domain models and errors.
package domain

import (
	"github.com/facturante/secrets/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// so callers can branch on the sentinel without knowing crypto internals.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the cryptographic key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrMissingKeySecret indicates the key domain has no configured secret.
	//
	// This is a deployment misconfiguration: it is surfaced immediately at
	// first key use rather than deferred to a confusing downstream decrypt
	// failure, and it is never silently defaulted to a fixed or empty key.
	ErrMissingKeySecret = errors.Wrap(errors.ErrConfiguration, "missing key secret for domain")

	// ErrInvalidToken indicates an opaque token failed to decode.
	//
	// Malformed segment count, unknown version, bad base64 content, and AEAD
	// authentication failure all collapse into this single error. Callers are
	// deliberately unable to distinguish why a token failed, so differentiated
	// error messages cannot be used as a decryption oracle.
	ErrInvalidToken = errors.Wrap(errors.ErrInvalidInput, "invalid token")
)
