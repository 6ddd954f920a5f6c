package commands

import (
	"fmt"

	jellyValidation "github.com/jellydator/validation"

	"github.com/facturante/secrets/internal/cbu"
	"github.com/facturante/secrets/internal/validation"
)

// RunValidateCBU checks a 22-digit bank account code against both embedded
// check digits and reports the result.
func RunValidateCBU(code string, io IOTuple) error {
	if err := jellyValidation.Validate(code, jellyValidation.Required, validation.CBU); err != nil {
		fmt.Fprintf(io.Writer, "invalid: %v\n", err)
		return nil
	}

	fmt.Fprintln(io.Writer, "valid")
	return nil
}

// RunGenerateCBU writes a random checksum-valid CBU, useful as a test fixture.
func RunGenerateCBU(io IOTuple) error {
	code, err := cbu.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate cbu: %w", err)
	}

	fmt.Fprintln(io.Writer, code)
	return nil
}
