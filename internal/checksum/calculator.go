package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator is an interface for computing content digests.
// This abstraction allows for different digest algorithms.
type Calculator interface {
	// Calculate computes a digest of the exact, unmodified content.
	Calculate(content []byte) string
}

// SHA256 implements digest calculation using SHA-256 over the raw bytes.
// Manifest comments are semantically meaningful (they carry record display
// names), so no normalization is applied before hashing.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple
// goroutines. Using value semantics (pass by value) eliminates heap
// allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// Calculate computes SHA-256 of the content as lowercase hex.
func (c SHA256) Calculate(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ShortDigestLength is the number of hex characters shown when a digest is
// printed for humans.
const ShortDigestLength = 12

// Short truncates a digest for display. Full digests stay in reports;
// log lines use the short form.
func Short(digest string) string {
	if len(digest) <= ShortDigestLength {
		return digest
	}
	return digest[:ShortDigestLength]
}

// Verify SHA256 implements the Calculator interface at compile time
var _ Calculator = SHA256{}
