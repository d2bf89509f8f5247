package pbxsync

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Synchronization completed (including "nothing to do")
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration or parameters
	ExitManifestMissing   = 11 // Manifest file not found
	ExitApprovalDenied    = 12 // User denied write approval
	ExitFormatError       = 13 // Required manifest section marker missing or malformed
	ExitUnsupportedPath   = 14 // File path requires quoting this tool does not perform
	ExitReferenceNotFound = 15 // Path rewrite target not present in the manifest
)

const (
	// IdentifierLength is the width of a manifest record identifier in
	// hexadecimal characters. 24 hex characters encode 96 random bits,
	// which keeps the collision probability negligible even for manifests
	// with thousands of entries.
	IdentifierLength = 24

	// ManifestFileName is the manifest file name inside a project bundle.
	ManifestFileName = "project.pbxproj"

	// ProjectBundleSuffix identifies the project bundle directory that
	// contains the manifest.
	ProjectBundleSuffix = ".xcodeproj"

	// DefaultBackupSuffix is appended to the manifest path to form the
	// sibling backup path. The backup is created once and never
	// overwritten (first-run-wins).
	DefaultBackupSuffix = ".backup"
)

// Synchronizer backend names. Both backends implement ManifestSynchronizer
// and produce identical output; they differ in how the edit is performed.
const (
	// BackendSplice edits the manifest with direct byte splices at the
	// parsed section offsets.
	BackendSplice = "splice"

	// BackendRecords parses each section into typed line records, mutates
	// the records, and reassembles the text.
	BackendRecords = "records"

	// DefaultBackend is used when no backend is configured.
	DefaultBackend = BackendSplice
)

// DefaultExtensions is the source file extension allowlist used when the
// configuration does not specify one.
var DefaultExtensions = []string{".swift"}

// DefaultExcludedDirs are directory names skipped during source scanning
// in addition to hidden directories, which are always skipped.
var DefaultExcludedDirs = []string{"build", "DerivedData"}

// ValidBackends returns the recognized synchronizer backend names.
func ValidBackends() []string {
	return []string{BackendSplice, BackendRecords}
}

// IsValidBackend reports whether name is a recognized backend name.
func IsValidBackend(name string) bool {
	return name == BackendSplice || name == BackendRecords
}
