package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/pbxsync/internal/backup"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// RewriteService implements the Rewriter interface. Like SyncService, an
// instance holds no per-run state.
type RewriteService struct {
	store         pbxsync.ManifestStore
	logger        pbxsync.Logger
	backups       backupFactory
	synchronizers synchronizerFactory
}

// NewRewriteService creates a new RewriteService.
// Panics if a dependency is nil.
func NewRewriteService(store pbxsync.ManifestStore, logger pbxsync.Logger) *RewriteService {
	if store == nil {
		panic("store cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &RewriteService{
		store:  store,
		logger: logger,
		backups: func(suffix string) pbxsync.BackupManager {
			return backup.NewManager(suffix)
		},
		synchronizers: NewSynchronizer,
	}
}

// Rewrite applies the configured path mappings in order. A mapping that
// matches no file reference is recorded as failed and the batch continues;
// the first failure is surfaced as the run error after every mapping has
// been tried. The report is returned even when the error is non-nil.
func (s *RewriteService) Rewrite(ctx context.Context, config pbxsync.RewriteConfig) (*pbxsync.RewriteReport, error) {
	rep := &pbxsync.RewriteReport{DryRun: config.DryRun}
	state := stateIdle

	fail := func(err error) (*pbxsync.RewriteReport, error) {
		s.advance(&state, stateFailed)
		return rep, err
	}

	if err := config.Validate(); err != nil {
		return fail(fmt.Errorf("invalid configuration: %w", err))
	}

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

	synchronizer, err := s.synchronizers(config.Backend)
	if err != nil {
		return fail(err)
	}
	if err := synchronizer.Load(content); err != nil {
		return fail(fmt.Errorf("parsing %s: %w", manifestPath, err))
	}
	s.advance(&state, stateLoaded)

	firstErr := s.applyMappings(synchronizer, config.Mappings, rep)

	if len(rep.Rewritten) == 0 {
		// No mapping matched; the manifest is untouched.
		rep.NothingToDo = true
		return fail(firstErr)
	}
	s.advance(&state, stateMutated)

	output := synchronizer.Serialize()

	if config.DryRun {
		s.advance(&state, statePersisted)
		s.logger.Info("Dry run: %d path(s) would be rewritten in %s", len(rep.Rewritten), manifestPath)
		return rep, firstErr
	}

	backupPath, err := persistManifest(s.store, s.backups(config.BackupSuffix), s.logger, manifestPath, content, output)
	rep.BackupPath = backupPath
	if err != nil {
		return fail(err)
	}
	s.advance(&state, statePersisted)

	s.logger.Info("✓ Rewrote %d path(s) in %s", len(rep.Rewritten), manifestPath)
	return rep, firstErr
}

func (s *RewriteService) advance(state *runState, to runState) {
	s.logger.Verbose("Run state: %s -> %s", *state, to)
	*state = to
}

// applyMappings applies each mapping independently, collecting failures
// instead of stopping on them.
func (s *RewriteService) applyMappings(synchronizer pbxsync.ManifestSynchronizer, mappings []pbxsync.PathMapping, rep *pbxsync.RewriteReport) error {
	var firstErr error
	for _, m := range mappings {
		if err := synchronizer.RewritePath(m.OldPath, m.NewPath); err != nil {
			rep.Failed = append(rep.Failed, pbxsync.FailedMapping{Mapping: m, Reason: err.Error()})
			if firstErr == nil {
				firstErr = err
			}
			s.logger.Error("Cannot rewrite %s: %v", m.OldPath, err)
			continue
		}
		rep.Rewritten = append(rep.Rewritten, m)
		s.logger.Verbose("Rewrote %s -> %s", m.OldPath, m.NewPath)
	}
	return firstErr
}

// Verify RewriteService implements the interface at compile time
var _ pbxsync.Rewriter = (*RewriteService)(nil)
