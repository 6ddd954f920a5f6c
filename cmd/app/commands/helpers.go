// Package commands contains CLI command implementations for the application.
package commands

import (
	"io"
	"os"

	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
	"github.com/facturante/secrets/internal/errors"
	publicidDomain "github.com/facturante/secrets/internal/publicid/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// parseResourceType converts a resource type string to its domain value.
// Returns an error if the string is outside the closed set.
func parseResourceType(value string) (publicidDomain.ResourceType, error) {
	resourceType := publicidDomain.ResourceType(value)
	if !resourceType.Valid() {
		return "", errors.Wrapf(publicidDomain.ErrInvalidResourceType, "type %q", value)
	}
	return resourceType, nil
}

// parseVaultDomain converts a key domain string to its domain value.
// Only the vault's credential namespaces are accepted.
func parseVaultDomain(value string) (cryptoDomain.KeyDomain, error) {
	switch value {
	case string(cryptoDomain.DomainBilling):
		return cryptoDomain.DomainBilling, nil
	case string(cryptoDomain.DomainTaxAuthority):
		return cryptoDomain.DomainTaxAuthority, nil
	default:
		return "", errors.Wrapf(errors.ErrInvalidInput, "unknown vault domain %q", value)
	}
}
