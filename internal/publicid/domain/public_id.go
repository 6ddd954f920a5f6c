// Package domain defines public identifier domain models.
package domain

// ResourceType identifies which kind of resource a public identifier points
// at. The set is closed: decoders reject any value outside it.
type ResourceType string

const (
	TypeBooking    ResourceType = "booking"
	TypeQuote      ResourceType = "quote"
	TypeReceipt    ResourceType = "receipt"
	TypeInvoice    ResourceType = "invoice"
	TypeCreditNote ResourceType = "credit_note"
	TypeResource   ResourceType = "resource"
	TypeFile       ResourceType = "file"
)

// Valid reports whether the resource type belongs to the closed set.
func (rt ResourceType) Valid() bool {
	switch rt {
	case TypeBooking, TypeQuote, TypeReceipt, TypeInvoice, TypeCreditNote, TypeResource, TypeFile:
		return true
	default:
		return false
	}
}

// PublicID is the logical triple behind an externally exposed opaque
// identifier. Encoding then decoding reproduces the exact triple, without
// revealing the internal sequence numbers or allowing cross-tenant
// enumeration.
type PublicID struct {
	Type     ResourceType
	AgencyID int64
	LocalID  int64
}
