package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"umlauter.dev/pkg/umlauter/internal/adapter"
	m "umlauter.dev/pkg/umlauter/internal/model"
)

// Renamer moves filesystem entries to their transliterated names.
type Renamer interface {
	// RenameToASCII renames path if its base name contains umlauts and
	// returns the path the entry lives at afterwards.
	RenameToASCII(path m.Path) (m.Path, error)
}

type renamer struct {
	adapter.SourceFSAdapter
}

// NewRenamer creates a Renamer backed by the provided filesystem adapter.
func NewRenamer(fsAdapter adapter.SourceFSAdapter) Renamer {
	return &renamer{SourceFSAdapter: fsAdapter}
}

func (r *renamer) RenameToASCII(path m.Path) (m.Path, error) {
	cleaned := filepath.Clean(string(path))

	name := filepath.Base(cleaned)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	newName := ConvertUmlauts(name)
	if newName == name {
		return path, nil
	}

	newPath := r.JoinPath(filepath.Dir(cleaned), newName)
	if err := r.Rename(m.Path(cleaned), newPath); err != nil {
		return "", fmt.Errorf("%w: from %s to %s: %w", ErrRename, cleaned, newName, err)
	}

	slog.Debug("renamed", "from", cleaned, "to", newPath)

	return newPath, nil
}
