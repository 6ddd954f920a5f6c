package commands

import (
	"fmt"
	"log/slog"

	publicidDomain "github.com/facturante/secrets/internal/publicid/domain"
	publicidUsecase "github.com/facturante/secrets/internal/publicid/usecase"
)

// RunEncodePublicID encodes a {type, agency, local-id} triple into an opaque
// public identifier and writes the token to the output.
func RunEncodePublicID(
	codec publicidUsecase.Codec,
	logger *slog.Logger,
	resourceType string,
	agencyID int64,
	localID int64,
	io IOTuple,
) error {
	parsedType, err := parseResourceType(resourceType)
	if err != nil {
		return err
	}

	token, err := codec.Encode(publicidDomain.PublicID{
		Type:     parsedType,
		AgencyID: agencyID,
		LocalID:  localID,
	})
	if err != nil {
		return fmt.Errorf("failed to encode public id: %w", err)
	}

	logger.Info("encoded public id", slog.String("type", resourceType))
	fmt.Fprintln(io.Writer, token)
	return nil
}

// RunDecodePublicID decodes an opaque public identifier back into its triple.
// An undecodable token is reported without detail, mirroring how HTTP
// collaborators map it to a generic "not found".
func RunDecodePublicID(
	codec publicidUsecase.Codec,
	logger *slog.Logger,
	token string,
	io IOTuple,
) error {
	id := codec.Decode(token)
	if id == nil {
		fmt.Fprintln(io.Writer, "not found")
		return nil
	}

	fmt.Fprintf(io.Writer, "type=%s agency_id=%d local_id=%d\n", id.Type, id.AgencyID, id.LocalID)
	return nil
}
