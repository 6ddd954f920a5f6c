package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceType_Valid(t *testing.T) {
	t.Run("closed set members are valid", func(t *testing.T) {
		for _, rt := range []ResourceType{
			TypeBooking, TypeQuote, TypeReceipt, TypeInvoice,
			TypeCreditNote, TypeResource, TypeFile,
		} {
			assert.True(t, rt.Valid(), "type %q", rt)
		}
	})

	t.Run("anything else is invalid", func(t *testing.T) {
		for _, rt := range []ResourceType{"", "payment", "Booking", "BOOKING", "booking "} {
			assert.False(t, rt.Valid(), "type %q", rt)
		}
	})
}
