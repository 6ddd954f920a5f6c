// Package domain defines secret vault domain errors.
package domain

import (
	"github.com/facturante/secrets/internal/errors"
)

var (
	// ErrUnsupportedDomain indicates a key domain outside the vault's
	// namespaces. The vault only keys credentials at rest; public
	// identifiers use their own codec and key domain.
	ErrUnsupportedDomain = errors.Wrap(errors.ErrInvalidInput, "unsupported vault domain")
)
