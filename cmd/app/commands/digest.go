package commands

import (
	"fmt"

	cryptoService "github.com/facturante/secrets/internal/crypto/service"
)

// RunDigest writes the deterministic SHA-256 hex fingerprint of a value,
// as stored alongside the encrypted form for dedup and audit lookups.
func RunDigest(hashService cryptoService.HashService, value string, io IOTuple) error {
	fmt.Fprintln(io.Writer, hashService.Hash([]byte(value)))
	return nil
}
