package domain

// Algorithm represents the AEAD algorithm used for token encryption.
//
// Both supported algorithms provide Authenticated Encryption with Associated
// Data: confidentiality plus tamper-evidence via a 16-byte authentication tag.
// Use AESGCM on CPUs with AES-NI hardware acceleration, ChaCha20 elsewhere.
type Algorithm string

const (
	// AESGCM is AES-256-GCM: 256-bit key, 12-byte nonce, 16-byte tag.
	// Hardware accelerated on most modern server CPUs.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 is ChaCha20-Poly1305: 256-bit key, 12-byte nonce, 16-byte tag.
	// Constant-time in software, preferred without AES hardware support.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// KeyDomain names an isolated key namespace. Each domain derives its own
// 32-byte key from its own configured secret; a key compromise in one domain
// cannot be used to decrypt another.
type KeyDomain string

const (
	// DomainPublicID keys opaque public identifiers handed out in URLs and APIs.
	DomainPublicID KeyDomain = "public-id"

	// DomainBilling keys billing credentials at rest (bank account codes, passwords).
	DomainBilling KeyDomain = "billing-secret"

	// DomainTaxAuthority keys tax-authority credentials at rest
	// (web-service passwords, certificate and private-key material).
	DomainTaxAuthority KeyDomain = "tax-authority-secret"
)

// KeySize is the required symmetric key size in bytes for all supported
// algorithms (256 bits).
const KeySize = 32
