package pbxsync

// ManifestSynchronizer performs the in-memory manifest edits for one run.
// Two interchangeable implementations exist: a direct text-splice backend
// and a structured record-model backend. The orchestration logic
// (resolve, insert, persist) depends only on this interface, never on
// which backend performs the actual edit.
//
// A synchronizer is single-use: Load once, mutate, Serialize. It is not
// safe for concurrent use.
type ManifestSynchronizer interface {
	// Load parses the manifest text and locates the required sections.
	// Returns an error wrapping ErrManifestFormat if any of the four
	// section markers is missing or malformed.
	Load(content []byte) error

	// TrackedNames returns every path value and display name currently
	// recorded by the manifest's file references. The tracked-set
	// resolver matches candidate files against this set.
	TrackedNames() map[string]struct{}

	// InsertFile creates the record triple for one source file: a file
	// reference, a build file entry, and a membership list entry. The
	// three edits are applied atomically with respect to the in-memory
	// model; on error nothing is retained. Returns an error wrapping
	// ErrUnsupportedPath when the path would require quoting.
	InsertFile(relPath string) (*FileInsertion, error)

	// RewritePath replaces the path value of the file reference whose
	// current path exactly matches oldPath. Build file and membership
	// records are not touched. Returns an error wrapping
	// ErrReferenceNotFound when no reference matches, or
	// ErrUnsupportedPath when newPath would require quoting.
	RewritePath(oldPath, newPath string) error

	// Serialize returns the full manifest text with all applied edits,
	// byte-identical to the loaded content outside the edited regions.
	Serialize() []byte

	// Modified reports whether any mutation has been applied since Load.
	Modified() bool
}

// IdentifierAllocator produces record identifiers guaranteed not to
// collide with any identifier already present in the manifest, nor with
// any identifier issued earlier in the same run.
type IdentifierAllocator interface {
	// Allocate returns a fresh identifier disjoint from existing and from
	// every identifier this allocator has already issued. Collisions are
	// re-checked and retried; an error wrapping ErrInvalidConfig is
	// returned only for an unusable identifier space.
	Allocate(existing map[string]struct{}) (string, error)
}

// BackupManager persists the pre-mutation manifest bytes to a sibling
// path. The backup is created only when none exists yet, so the first
// run's original survives later runs ("first-run-wins").
type BackupManager interface {
	// Exists reports whether a backup for manifestPath is already present.
	Exists(manifestPath string) (bool, error)

	// Create writes content to the backup path for manifestPath and
	// returns that path. Callers check Exists first; Create overwrites.
	Create(manifestPath string, content []byte) (string, error)
}
