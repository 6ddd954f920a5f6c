// Package usecase implements encoding and decoding of opaque public
// identifiers on top of the token codec.
package usecase

import (
	"encoding/json"

	cryptoDomain "github.com/facturante/secrets/internal/crypto/domain"
	cryptoService "github.com/facturante/secrets/internal/crypto/service"
	"github.com/facturante/secrets/internal/errors"
	publicidDomain "github.com/facturante/secrets/internal/publicid/domain"
)

// Codec defines the interface for public identifier encoding.
type Codec interface {
	// Encode turns a PublicID into an opaque token safe for URLs and APIs.
	Encode(id publicidDomain.PublicID) (string, error)

	// Decode reverses Encode. Any failure at any stage (token codec
	// failure, JSON parse failure, shape mismatch, unknown resource type)
	// collapses to nil, never an error, so HTTP-facing callers uniformly
	// treat a bad public id as "resource not found".
	Decode(token string) *publicidDomain.PublicID
}

// wirePayload is the compact structured encoding placed inside the token.
// Pointer fields distinguish absent keys from zero values at decode time.
type wirePayload struct {
	Type     *string `json:"t"`
	AgencyID *int64  `json:"a"`
	LocalID  *int64  `json:"i"`
}

type publicIDCodec struct {
	tokens *cryptoService.TokenCodec
}

// NewCodec creates a public identifier codec delegating to the token codec
// under the "public-id" key domain.
func NewCodec(tokens *cryptoService.TokenCodec) Codec {
	return &publicIDCodec{tokens: tokens}
}

// Encode validates the triple, serializes it to compact JSON, and encrypts
// it under the public-id domain key.
func (c *publicIDCodec) Encode(id publicidDomain.PublicID) (string, error) {
	if !id.Type.Valid() {
		return "", errors.Wrapf(publicidDomain.ErrInvalidResourceType, "type %q", id.Type)
	}
	if id.AgencyID <= 0 || id.LocalID <= 0 {
		return "", publicidDomain.ErrInvalidPublicID
	}

	resourceType := string(id.Type)
	payload, err := json.Marshal(wirePayload{
		Type:     &resourceType,
		AgencyID: &id.AgencyID,
		LocalID:  &id.LocalID,
	})
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(payload)

	return c.tokens.Encode(cryptoDomain.DomainPublicID, payload)
}

// Decode decrypts the token and parses the triple; nil on any failure.
func (c *publicIDCodec) Decode(token string) *publicidDomain.PublicID {
	payload, err := c.tokens.Decode(cryptoDomain.DomainPublicID, token)
	if err != nil {
		return nil
	}
	defer cryptoDomain.Zero(payload)

	var wire wirePayload
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil
	}
	if wire.Type == nil || wire.AgencyID == nil || wire.LocalID == nil {
		return nil
	}

	resourceType := publicidDomain.ResourceType(*wire.Type)
	if !resourceType.Valid() {
		return nil
	}
	if *wire.AgencyID <= 0 || *wire.LocalID <= 0 {
		return nil
	}

	return &publicidDomain.PublicID{
		Type:     resourceType,
		AgencyID: *wire.AgencyID,
		LocalID:  *wire.LocalID,
	}
}
