package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facturante/secrets/internal/errors"
)

func TestErrorSentinels(t *testing.T) {
	t.Run("input errors wrap ErrInvalidInput", func(t *testing.T) {
		assert.ErrorIs(t, ErrUnsupportedAlgorithm, errors.ErrInvalidInput)
		assert.ErrorIs(t, ErrInvalidKeySize, errors.ErrInvalidInput)
		assert.ErrorIs(t, ErrInvalidToken, errors.ErrInvalidInput)
	})

	t.Run("missing key secret wraps ErrConfiguration", func(t *testing.T) {
		assert.ErrorIs(t, ErrMissingKeySecret, errors.ErrConfiguration)
		assert.NotErrorIs(t, ErrMissingKeySecret, errors.ErrInvalidInput)
	})
}
