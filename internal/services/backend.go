package services

import (
	"fmt"
	"strings"

	"github.com/vvka-141/pbxsync/internal/identifier"
	"github.com/vvka-141/pbxsync/internal/manifest/records"
	"github.com/vvka-141/pbxsync/internal/manifest/splice"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// NewSynchronizer returns the synchronizer backend selected by name, with
// a fresh identifier allocator. An empty name selects the default backend.
// Both backends produce identical output for the same operations.
func NewSynchronizer(backend string) (pbxsync.ManifestSynchronizer, error) {
	if backend == "" {
		backend = pbxsync.DefaultBackend
	}

	switch backend {
	case pbxsync.BackendSplice:
		return splice.New(identifier.New()), nil
	case pbxsync.BackendRecords:
		return records.New(identifier.New()), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (valid: %s): %w",
			backend, strings.Join(pbxsync.ValidBackends(), ", "), pbxsync.ErrInvalidConfig)
	}
}
