package domain

import (
	"github.com/facturante/secrets/internal/errors"
)

var (
	// ErrInvalidResourceType indicates a resource type outside the closed set.
	ErrInvalidResourceType = errors.Wrap(errors.ErrInvalidInput, "invalid resource type")

	// ErrInvalidPublicID indicates a public identifier with missing or
	// non-positive agency/local ids.
	ErrInvalidPublicID = errors.Wrap(errors.ErrInvalidInput, "invalid public id")
)
