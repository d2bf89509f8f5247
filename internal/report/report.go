package report

import (
	"fmt"
	"io"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// RenderSync writes a human-readable summary of one synchronization run.
func RenderSync(w io.Writer, r *pbxsync.SyncReport) {
	fmt.Fprintf(w, "Manifest: %s\n", r.ManifestPath)
	fmt.Fprintf(w, "Scanned %d source file(s); %d already tracked.\n", r.ScannedCount, r.TrackedCount)

	if r.NothingToDo {
		fmt.Fprintf(w, "Nothing to do: the manifest already tracks every source file.\n")
		return
	}

	if len(r.Added) > 0 {
		verb := "Added"
		if r.DryRun {
			verb = "Would add"
		}
		fmt.Fprintf(w, "%s %d file(s):\n", verb, len(r.Added))
		for _, ins := range r.Added {
			fmt.Fprintf(w, "  + %s\n", ins.SourcePath)
		}
	}

	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped %d file(s):\n", len(r.Skipped))
		for _, sk := range r.Skipped {
			fmt.Fprintf(w, "  - %s (%s)\n", sk.Path, sk.Reason)
		}
	}

	if r.Diff != "" {
		fmt.Fprintf(w, "\n%s", r.Diff)
	}

	if r.BackupPath != "" {
		fmt.Fprintf(w, "Backup written to %s\n", r.BackupPath)
	}
}

// RenderCheck writes the report-only view of a synchronization run: which
// source files the manifest does not track. Used by the check command,
// which never mutates.
func RenderCheck(w io.Writer, r *pbxsync.SyncReport) {
	fmt.Fprintf(w, "Manifest: %s\n", r.ManifestPath)

	untracked := len(r.Added) + len(r.Skipped)
	if untracked == 0 {
		fmt.Fprintf(w, "All %d source file(s) are tracked.\n", r.ScannedCount)
		return
	}

	fmt.Fprintf(w, "Scanned %d source file(s); %d tracked, %d untracked.\n",
		r.ScannedCount, r.TrackedCount, untracked)
	fmt.Fprintf(w, "Untracked file(s):\n")
	for _, ins := range r.Added {
		fmt.Fprintf(w, "  ? %s\n", ins.SourcePath)
	}
	for _, sk := range r.Skipped {
		fmt.Fprintf(w, "  ? %s (%s)\n", sk.Path, sk.Reason)
	}
}

// RenderRewrite writes a human-readable summary of one path rewrite run.
func RenderRewrite(w io.Writer, r *pbxsync.RewriteReport) {
	fmt.Fprintf(w, "Manifest: %s\n", r.ManifestPath)

	if len(r.Rewritten) > 0 {
		verb := "Rewrote"
		if r.DryRun {
			verb = "Would rewrite"
		}
		fmt.Fprintf(w, "%s %d path(s):\n", verb, len(r.Rewritten))
		for _, m := range r.Rewritten {
			fmt.Fprintf(w, "  %s -> %s\n", m.OldPath, m.NewPath)
		}
	}

	if len(r.Failed) > 0 {
		fmt.Fprintf(w, "Failed %d mapping(s):\n", len(r.Failed))
		for _, f := range r.Failed {
			fmt.Fprintf(w, "  %s -> %s (%s)\n", f.Mapping.OldPath, f.Mapping.NewPath, f.Reason)
		}
	}

	if r.NothingToDo {
		fmt.Fprintf(w, "No changes were applied to the manifest.\n")
	}

	if r.BackupPath != "" {
		fmt.Fprintf(w, "Backup written to %s\n", r.BackupPath)
	}
}
