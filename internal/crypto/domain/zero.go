package domain

// Zero overwrites a byte slice with zeros so decrypted token payloads and
// credential plaintext do not linger in memory after the codecs hand their
// result back to the caller.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
