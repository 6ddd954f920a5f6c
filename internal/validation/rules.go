// Package validation provides custom validation rules for form-validation
// and payment-setup collaborators.
package validation

import (
	"encoding/base64"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/facturante/secrets/internal/cbu"
	apperrors "github.com/facturante/secrets/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// CBU validates that a string is a well-formed 22-digit CBU with both
// embedded check digits matching the weighted-sum algorithm. Collaborators
// run this before a value is handed to the vault for storage.
var CBU = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_cbu_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if err := cbu.Validate(s); err != nil {
		return validation.NewError("validation_cbu", err.Error())
	}
	return nil
})

// OpaqueToken validates the shape of an opaque token: four dot-separated
// segments with base64url content (no padding). Shape only; authenticity is
// decided by the codec under the domain key.
var OpaqueToken = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_opaque_token_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	segments := strings.Split(s, ".")
	if len(segments) != 4 {
		return validation.NewError("validation_opaque_token", "must have exactly 4 dot-separated segments")
	}
	for _, segment := range segments[1:] {
		if _, err := base64.RawURLEncoding.DecodeString(segment); err != nil {
			return validation.NewError("validation_opaque_token", "must contain base64url-encoded segments")
		}
	}
	return nil
})
