package identifier

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// maxAllocateAttempts bounds the collision retry loop. With a 96-bit
// identifier space a single collision is already astronomically unlikely,
// so exhausting the attempts means the configured space is saturated.
const maxAllocateAttempts = 1000

// Allocator issues fixed-width uppercase hexadecimal record identifiers.
// Every identifier is re-checked against the caller-supplied existing set
// and against everything this instance has issued before, so uniqueness is
// enforced, not merely probable.
//
// An Allocator instance is meant to live for one synchronization run. It is
// not safe for concurrent use.
type Allocator struct {
	length int
	issued map[string]struct{}
}

var _ pbxsync.IdentifierAllocator = (*Allocator)(nil)

// New creates an allocator producing identifiers of the standard manifest
// width (24 hex characters, a 96-bit space).
func New() *Allocator {
	a, err := NewWithLength(pbxsync.IdentifierLength)
	if err != nil {
		// IdentifierLength is a positive constant
		panic(err)
	}
	return a
}

// NewWithLength creates an allocator producing identifiers of the given
// width in hex characters. A non-positive width describes an empty
// identifier space and is rejected.
func NewWithLength(length int) (*Allocator, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: identifier length must be positive, got %d", pbxsync.ErrInvalidConfig, length)
	}

	return &Allocator{
		length: length,
		issued: make(map[string]struct{}),
	}, nil
}

// Allocate returns an identifier disjoint from existing and from every
// identifier this instance returned earlier. Candidates are drawn from
// random UUIDs and re-checked before being handed out.
func (a *Allocator) Allocate(existing map[string]struct{}) (string, error) {
	for attempt := 0; attempt < maxAllocateAttempts; attempt++ {
		candidate := a.draw()

		if _, taken := existing[candidate]; taken {
			continue
		}
		if _, taken := a.issued[candidate]; taken {
			continue
		}

		a.issued[candidate] = struct{}{}
		return candidate, nil
	}

	return "", fmt.Errorf("%w: identifier space of width %d exhausted after %d attempts", pbxsync.ErrInvalidConfig, a.length, maxAllocateAttempts)
}

// draw produces one random candidate of the configured width. Each UUID
// contributes 32 hex characters; wider identifiers chain several draws.
func (a *Allocator) draw() string {
	var sb strings.Builder
	for sb.Len() < a.length {
		u := uuid.New()
		sb.WriteString(hex.EncodeToString(u[:]))
	}

	return strings.ToUpper(sb.String()[:a.length])
}
