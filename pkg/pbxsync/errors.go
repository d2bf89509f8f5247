package pbxsync

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	report, err := syncer.Sync(ctx, config)
//	if errors.Is(err, pbxsync.ErrManifestFormat) {
//	    // Handle a structurally broken manifest
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrManifestNotFound indicates the manifest file was not found.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrApprovalDenied indicates the user denied approval for the write.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrManifestFormat indicates a required section marker is missing or
	// malformed. Nothing is written when this error is returned.
	ErrManifestFormat = errors.New("manifest format error")

	// ErrUnsupportedPath indicates a file path contains characters that
	// would require quoting, which this tool does not perform.
	ErrUnsupportedPath = errors.New("unsupported path")

	// ErrReferenceNotFound indicates a path rewrite found no file
	// reference whose current path matches the requested old path.
	ErrReferenceNotFound = errors.New("file reference not found")
)

// usageErrorPatterns identify cobra/pflag argument errors, which carry no
// sentinel of their own.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"invalid argument",
	"required flag",
	"accepts ",
	"requires at least",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrManifestNotFound):
		return ExitManifestMissing
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrManifestFormat):
		return ExitFormatError
	case errors.Is(err, ErrUnsupportedPath):
		return ExitUnsupportedPath
	case errors.Is(err, ErrReferenceNotFound):
		return ExitReferenceNotFound
	}

	// Check for CLI usage error patterns from cobra/pflag
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
