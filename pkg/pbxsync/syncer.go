package pbxsync

import "context"

// Syncer is the main interface for executing manifest synchronization.
// Implementations handle the full workflow: load the manifest, resolve
// untracked source files, insert their records, and persist the result.
type Syncer interface {
	// Sync executes one synchronization run using the provided
	// configuration. The report is returned even when err is non-nil,
	// so callers can show what was and was not applied.
	Sync(ctx context.Context, config SyncConfig) (*SyncReport, error)
}

// Rewriter is the interface for executing path rewrites against the
// manifest, used when source files move between directories.
type Rewriter interface {
	// Rewrite applies the configured path mappings. Mappings that match
	// no file reference are reported as failed; the rest are applied.
	// The report is returned even when err is non-nil.
	Rewrite(ctx context.Context, config RewriteConfig) (*RewriteReport, error)
}
