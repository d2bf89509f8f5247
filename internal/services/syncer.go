package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/pbxsync/internal/backup"
	"github.com/vvka-141/pbxsync/internal/checksum"
	"github.com/vvka-141/pbxsync/internal/files/scanner"
	"github.com/vvka-141/pbxsync/internal/manifest"
	"github.com/vvka-141/pbxsync/internal/report"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

type scannerFactory func(extensions, excludeDirs []string) pbxsync.SourceScanner

type backupFactory func(suffix string) pbxsync.BackupManager

type synchronizerFactory func(backend string) (pbxsync.ManifestSynchronizer, error)

// SyncService implements the Syncer interface.
// A service instance holds no per-run state; every run creates its own
// synchronizer backend. Concurrent runs against the same manifest file are
// not guarded; the safety net is the pre-mutation backup, not locking.
type SyncService struct {
	store         pbxsync.ManifestStore
	approver      pbxsync.Approver
	logger        pbxsync.Logger
	calculator    checksum.Calculator
	scanners      scannerFactory
	backups       backupFactory
	synchronizers synchronizerFactory
}

// NewSyncService creates a new SyncService with all dependencies injected.
//
// Panic vs. Error Boundary Rationale:
//   - Panics on nil dependencies: These are programmer errors that should fail loudly
//     at application startup, not during request handling. Fail-fast at construction
//     time prevents cryptic nil pointer dereferences deep in call stacks.
//   - Returns errors for runtime conditions: Configuration validation, manifest parse
//     failures, and file system errors are recoverable runtime conditions that should
//     be handled by the caller, not panics.
func NewSyncService(
	store pbxsync.ManifestStore,
	approver pbxsync.Approver,
	logger pbxsync.Logger,
) *SyncService {
	if store == nil {
		panic("store cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &SyncService{
		store:      store,
		approver:   approver,
		logger:     logger,
		calculator: checksum.New(),
		scanners: func(extensions, excludeDirs []string) pbxsync.SourceScanner {
			return scanner.NewScanner(extensions, excludeDirs)
		},
		backups: func(suffix string) pbxsync.BackupManager {
			return backup.NewManager(suffix)
		},
		synchronizers: NewSynchronizer,
	}
}

// Sync executes one synchronization run using the provided configuration.
// Per-file insertion failures do not stop the batch: earlier successes are
// kept, every skipped file is recorded in the report, and the first
// failure is surfaced as the run error after the whole batch has been
// tried. The report is returned even when the error is non-nil.
func (s *SyncService) Sync(ctx context.Context, config pbxsync.SyncConfig) (*pbxsync.SyncReport, error) {
	rep := &pbxsync.SyncReport{DryRun: config.DryRun}
	state := stateIdle

	fail := func(err error) (*pbxsync.SyncReport, error) {
		s.advance(&state, stateFailed)
		return rep, err
	}

	if err := config.Validate(); err != nil {
		return fail(fmt.Errorf("invalid configuration: %w", err))
	}

	s.logger.Verbose("Starting synchronization under %s", config.ProjectPath)

	manifestPath, err := s.store.Resolve(config.ProjectPath, config.ManifestPath)
	if err != nil {
		return fail(err)
	}
	rep.ManifestPath = manifestPath
	s.logger.Verbose("Manifest: %s", manifestPath)

	content, err := s.store.Load(manifestPath)
	if err != nil {
		return fail(err)
	}
	rep.DigestBefore = s.calculator.Calculate(content)

	synchronizer, err := s.synchronizers(config.Backend)
	if err != nil {
		return fail(err)
	}
	if err := synchronizer.Load(content); err != nil {
		return fail(fmt.Errorf("parsing %s: %w", manifestPath, err))
	}
	s.advance(&state, stateLoaded)

	untracked, err := s.resolveUntracked(synchronizer, config, rep)
	if err != nil {
		return fail(err)
	}
	s.advance(&state, stateResolved)

	if len(untracked) == 0 {
		rep.NothingToDo = true
		rep.DigestAfter = rep.DigestBefore
		s.advance(&state, statePersisted)
		s.logger.Info("✓ Manifest already tracks all %d source file(s)", rep.ScannedCount)
		return rep, nil
	}

	firstErr := s.insertAll(synchronizer, untracked, rep)
	if len(rep.Added) == 0 {
		// Every insertion failed; the manifest is untouched.
		return fail(firstErr)
	}
	s.advance(&state, stateMutated)

	output := synchronizer.Serialize()
	rep.DigestAfter = s.calculator.Calculate(output)

	if config.ShowDiff {
		diff, err := report.UnifiedDiff(manifestPath, content, output)
		if err != nil {
			return fail(err)
		}
		rep.Diff = diff
	}

	if config.DryRun {
		s.advance(&state, statePersisted)
		s.logger.Info("Dry run: %d file(s) would be added to %s", len(rep.Added), manifestPath)
		return rep, firstErr
	}

	if err := s.requestApproval(ctx, config, manifestPath, len(rep.Added)); err != nil {
		return fail(err)
	}

	backupPath, err := persistManifest(s.store, s.backups(config.BackupSuffix), s.logger, manifestPath, content, output)
	rep.BackupPath = backupPath
	if err != nil {
		return fail(err)
	}
	s.advance(&state, statePersisted)

	s.logger.Info("✓ Added %d file(s) to %s", len(rep.Added), manifestPath)
	s.logger.Verbose("Manifest digest %s -> %s",
		checksum.Short(rep.DigestBefore), checksum.Short(rep.DigestAfter))
	return rep, firstErr
}

// advance moves the run to its next state. Transitions are forward-only.
func (s *SyncService) advance(state *runState, to runState) {
	s.logger.Verbose("Run state: %s -> %s", *state, to)
	*state = to
}

// resolveUntracked scans the project tree and returns the source files the
// manifest does not track, sorted by path.
func (s *SyncService) resolveUntracked(synchronizer pbxsync.ManifestSynchronizer, config pbxsync.SyncConfig, rep *pbxsync.SyncReport) ([]string, error) {
	result, err := s.scanners(config.Extensions, config.ExcludeDirs).ScanDirectory(config.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", config.ProjectPath, err)
	}

	paths := make([]string, len(result.Files))
	for i, f := range result.Files {
		paths[i] = f.Path
	}

	untracked := manifest.ResolveUntracked(paths, synchronizer.TrackedNames())
	rep.ScannedCount = len(paths)
	rep.TrackedCount = len(paths) - len(untracked)
	s.logger.Verbose("Scanned %d source file(s), %d untracked", rep.ScannedCount, len(untracked))
	return untracked, nil
}

// insertAll stages one record triple per untracked file, in the resolver's
// sorted order. Each file's triple is atomic; the batch is best-effort.
func (s *SyncService) insertAll(synchronizer pbxsync.ManifestSynchronizer, untracked []string, rep *pbxsync.SyncReport) error {
	var firstErr error
	for _, relPath := range untracked {
		ins, err := synchronizer.InsertFile(relPath)
		if err != nil {
			rep.Skipped = append(rep.Skipped, pbxsync.SkippedFile{Path: relPath, Reason: err.Error()})
			if firstErr == nil {
				firstErr = err
			}
			s.logger.Error("Skipping %s: %v", relPath, err)
			continue
		}
		rep.Added = append(rep.Added, *ins)
		s.logger.Verbose("Staged %s (ref %s, build %s)", relPath, ins.Reference.ID, ins.BuildFile.ID)
	}
	return firstErr
}

// requestApproval asks the approver before the manifest is rewritten.
// Force skips the prompt entirely.
func (s *SyncService) requestApproval(ctx context.Context, config pbxsync.SyncConfig, manifestPath string, pendingChanges int) error {
	if config.Force {
		s.logger.Verbose("Approval skipped (force)")
		return nil
	}

	approved, err := s.approver.RequestApproval(ctx, manifestPath, pendingChanges)
	if err != nil {
		return fmt.Errorf("approval request failed: %w", err)
	}
	if !approved {
		return pbxsync.ErrApprovalDenied
	}
	return nil
}

// Verify SyncService implements the interface at compile time
var _ pbxsync.Syncer = (*SyncService)(nil)
