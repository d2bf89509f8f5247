package pbxsync

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// SyncConfig contains all parameters needed for a synchronization run.
type SyncConfig struct {
	// ProjectPath is the root directory scanned for source files
	ProjectPath string

	// ManifestPath is the path to the manifest file. If empty, the
	// manifest is discovered under ProjectPath (a single *.xcodeproj
	// bundle containing project.pbxproj).
	ManifestPath string

	// Extensions is the source file extension allowlist (".swift", ".m", ...)
	Extensions []string

	// ExcludeDirs are directory names skipped during scanning, in addition
	// to hidden directories, "build" and "DerivedData"
	ExcludeDirs []string

	// Backend selects the synchronizer implementation: "splice" or "records"
	Backend string

	// DryRun reports what would change without writing anything
	DryRun bool

	// ShowDiff prints a unified diff of the pending changes (implies no
	// extra I/O; most useful together with DryRun)
	ShowDiff bool

	// Force bypasses the interactive write approval
	Force bool

	// BackupSuffix is appended to ManifestPath to form the backup path
	BackupSuffix string

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the SyncConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *SyncConfig) Validate() error {
	var errs []error

	if c.ProjectPath == "" {
		errs = append(errs, fmt.Errorf("ProjectPath is required: %w", ErrInvalidConfig))
	}

	if c.Backend != "" && !IsValidBackend(c.Backend) {
		errs = append(errs, fmt.Errorf("unknown backend %q (valid: %s): %w",
			c.Backend, strings.Join(ValidBackends(), ", "), ErrInvalidConfig))
	}

	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("extension %q must start with a dot: %w", ext, ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

// PathMapping describes one path rewrite: the exact current path value and
// the value that replaces it.
type PathMapping struct {
	OldPath string
	NewPath string
}

// RewriteConfig contains all parameters needed for a path rewrite run.
type RewriteConfig struct {
	// ProjectPath is used to discover the manifest when ManifestPath is empty
	ProjectPath string

	// ManifestPath is the path to the manifest file
	ManifestPath string

	// Mappings are applied in order; each is independent of the others
	Mappings []PathMapping

	// Backend selects the synchronizer implementation: "splice" or "records"
	Backend string

	// DryRun reports what would change without writing anything
	DryRun bool

	// BackupSuffix is appended to ManifestPath to form the backup path
	BackupSuffix string

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the RewriteConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *RewriteConfig) Validate() error {
	var errs []error

	if c.ProjectPath == "" && c.ManifestPath == "" {
		errs = append(errs, fmt.Errorf("ProjectPath or ManifestPath is required: %w", ErrInvalidConfig))
	}

	if len(c.Mappings) == 0 {
		errs = append(errs, fmt.Errorf("at least one path mapping is required: %w", ErrInvalidConfig))
	}

	for i, m := range c.Mappings {
		if m.OldPath == "" || m.NewPath == "" {
			errs = append(errs, fmt.Errorf("mapping %d: old and new paths must be non-empty: %w", i+1, ErrInvalidConfig))
		}
	}

	if c.Backend != "" && !IsValidBackend(c.Backend) {
		errs = append(errs, fmt.Errorf("unknown backend %q (valid: %s): %w",
			c.Backend, strings.Join(ValidBackends(), ", "), ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// FileReference is a manifest record identifying one source file.
// Identity is the ID; no two references share an ID, and within one
// synchronization scope no two share a Path.
type FileReference struct {
	ID          string // 24 uppercase hex characters
	DisplayName string // base file name, shown in the /* ... */ comment
	Path        string // path value recorded in the manifest
}

// BuildFileEntry links a FileReference into the compiled-sources list.
// FileRefID must reference an existing FileReference.
type BuildFileEntry struct {
	ID          string
	FileRefID   string
	DisplayName string
}

// FileInsertion is the result of adding one source file: the two records
// created for it. The membership list entry reuses BuildFile.ID.
type FileInsertion struct {
	SourcePath string // path relative to the scan root
	Reference  FileReference
	BuildFile  BuildFileEntry
}

// SkippedFile records a file the synchronizer could not add and why.
type SkippedFile struct {
	Path   string
	Reason string
}

// SyncReport summarizes one synchronization run for human-facing output.
type SyncReport struct {
	ManifestPath string

	// ScannedCount is the number of candidate source files found on disk
	ScannedCount int

	// TrackedCount is the number of candidates already present in the manifest
	TrackedCount int

	Added   []FileInsertion
	Skipped []SkippedFile

	// BackupPath is set when a backup was written during this run
	BackupPath string

	// DigestBefore and DigestAfter are SHA-256 digests of the manifest
	// content before and after mutation
	DigestBefore string
	DigestAfter  string

	// Diff is a unified diff of the pending changes. Populated only when
	// the run was configured with ShowDiff.
	Diff string

	DryRun bool

	// NothingToDo is set when no untracked files were found and the
	// manifest was left untouched
	NothingToDo bool
}

// FailedMapping records a path mapping that could not be applied and why.
type FailedMapping struct {
	Mapping PathMapping
	Reason  string
}

// RewriteReport summarizes one path rewrite run.
type RewriteReport struct {
	ManifestPath string

	Rewritten []PathMapping
	Failed    []FailedMapping

	// BackupPath is set when a backup was written during this run
	BackupPath string

	DryRun bool

	// NothingToDo is set when no mapping matched and the manifest was
	// left untouched
	NothingToDo bool
}

// safePathPattern matches path values that the manifest grammar accepts
// without quoting.
var safePathPattern = regexp.MustCompile(`^[A-Za-z0-9_./]+$`)

// NeedsQuoting reports whether a path value would have to be quoted to be
// recorded in the manifest. The tool does not implement quoting; callers
// treat such paths as unsupported.
func NeedsQuoting(path string) bool {
	return !safePathPattern.MatchString(path)
}
