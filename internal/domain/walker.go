package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"umlauter.dev/pkg/umlauter/internal/adapter"
	"umlauter.dev/pkg/umlauter/internal/controller"
	m "umlauter.dev/pkg/umlauter/internal/model"
)

// DefaultMediaMarkers are the name fragments that mark a file as tagged audio.
var DefaultMediaMarkers = []string{".mp3", ".flac"}

// Walker converts a directory tree in place.
type Walker interface {
	// Walk renames dir, then renames and processes each child depth-first,
	// threading the edited-record count through the recursion. Renames, tag
	// edits and soft failures are appended to report.
	Walk(ctx context.Context, dir m.Path, edited int, report *m.Report) (int, error)
}

type walker struct {
	adapter.SourceFSAdapter
	adapter.TagCodec
	Renamer
	ui      controller.UI
	markers []string
}

// NewWalker creates a Walker. Files whose name contains one of markers are
// opened through codec; an empty markers list selects DefaultMediaMarkers.
func NewWalker(
	fsAdapter adapter.SourceFSAdapter,
	codec adapter.TagCodec,
	ui controller.UI,
	markers []string,
) Walker {
	if len(markers) == 0 {
		markers = DefaultMediaMarkers
	}

	return &walker{
		SourceFSAdapter: fsAdapter,
		TagCodec:        codec,
		Renamer:         NewRenamer(fsAdapter),
		ui:              ui,
		markers:         markers,
	}
}

func (w *walker) Walk(ctx context.Context, dir m.Path, edited int, report *m.Report) (int, error) {
	info, err := w.FileInfo(dir)
	if err != nil || !info.IsDir() {
		return edited, nil
	}

	renamed, err := w.RenameToASCII(dir)
	if err != nil {
		return edited, err
	}

	w.recordRename(ctx, report, dir, renamed, m.KindDirectory)

	entries, err := w.ReadDir(renamed)
	if err != nil {
		return edited, fmt.Errorf("%w: %s: %w", ErrList, renamed, err)
	}

	for _, entry := range entries {
		child := w.JoinPath(string(renamed), entry.Name())

		switch {
		case entry.IsDir():
			edited, err = w.Walk(ctx, child, edited, report)
			if err != nil {
				return edited, err
			}
		case w.isMedia(entry.Name()):
			if w.processMedia(ctx, child, report) {
				edited++
			}
		default:
			w.renameFile(ctx, child, report)
		}
	}

	return edited, nil
}

// isMedia matches markers anywhere in the name, not only as a suffix.
func (w *walker) isMedia(name string) bool {
	for _, marker := range w.markers {
		if strings.Contains(name, marker) {
			return true
		}
	}

	return false
}

// processMedia renames a media file, then rewrites its tags. It returns true
// when at least one field changed, whether or not the save succeeded.
func (w *walker) processMedia(ctx context.Context, path m.Path, report *m.Report) bool {
	renamed, ok := w.renameFile(ctx, path, report)
	if !ok {
		return false
	}

	tags, err := w.Open(renamed)
	if err != nil {
		w.recordFailure(ctx, report, renamed, m.FailureRead, fmt.Errorf("%w: %s: %w", ErrRead, renamed, err))
		return false
	}

	defer func() {
		if err := tags.Close(); err != nil {
			slog.Warn("close tags", "path", renamed, "error", err)
		}
	}()

	changes := ApplyFields(tags)
	if len(changes) == 0 {
		return false
	}

	edit := m.TagEdit{Path: renamed, Changes: changes, Saved: true}

	if err := tags.Save(); err != nil {
		edit.Saved = false
		w.recordFailure(ctx, report, renamed, m.FailureWrite, fmt.Errorf("%w: %s: %w", ErrWrite, renamed, err))
	}

	report.Edits = append(report.Edits, edit)
	slog.Info("edited tags", "path", renamed, "fields", len(changes), "saved", edit.Saved)
	w.ui.DisplayTagEdit(ctx, edit)

	return true
}

// renameFile renames a non-directory entry. A failure is reported and the
// entry is skipped; it never aborts the walk.
func (w *walker) renameFile(ctx context.Context, path m.Path, report *m.Report) (m.Path, bool) {
	renamed, err := w.RenameToASCII(path)
	if err != nil {
		w.recordFailure(ctx, report, path, m.FailureRename, err)
		return "", false
	}

	w.recordRename(ctx, report, path, renamed, m.KindFile)

	return renamed, true
}

func (w *walker) recordRename(ctx context.Context, report *m.Report, from, to m.Path, kind m.EntryKind) {
	if from == to {
		return
	}

	rename := m.Rename{From: from, To: to, Kind: kind}
	report.Renames = append(report.Renames, rename)
	slog.Info("renamed entry", "from", from, "to", to, "kind", kind)
	w.ui.DisplayRename(ctx, rename)
}

func (w *walker) recordFailure(ctx context.Context, report *m.Report, path m.Path, kind m.FailureKind, err error) {
	failure := m.Failure{Path: path, Kind: kind, Message: err.Error()}
	report.Failures = append(report.Failures, failure)
	slog.Error("skipping entry", "path", path, "kind", kind, "error", err)
	w.ui.DisplayFailure(ctx, failure)
}
