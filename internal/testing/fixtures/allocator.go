package fixtures

// SequentialAllocator issues deterministic fixture identifiers (ID(1),
// ID(2), ...) in order, skipping values already present in the existing
// set. It satisfies the identifier allocator contract so synchronizer
// tests can assert exact entry text.
type SequentialAllocator struct {
	n int
}

// NewSequentialAllocator creates an allocator starting at ID(1).
func NewSequentialAllocator() *SequentialAllocator {
	return &SequentialAllocator{}
}

// StartAt sets the ordinal of the next issued identifier.
func (a *SequentialAllocator) StartAt(n int) *SequentialAllocator {
	a.n = n - 1
	return a
}

// Allocate returns the next fixture identifier not present in existing.
func (a *SequentialAllocator) Allocate(existing map[string]struct{}) (string, error) {
	for {
		a.n++
		id := ID(a.n)
		if _, taken := existing[id]; !taken {
			return id, nil
		}
	}
}
