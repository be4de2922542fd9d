// Package adapter contains infrastructure adapters for the umlaut converter.
package adapter

import (
	"os"
	"path/filepath"

	m "umlauter.dev/pkg/umlauter/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on while walking a media tree. It hides direct `os` access so the walk can
// be tested with injected failures.
type SourceFSAdapter interface {
	// FileInfo returns metadata for a path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ReadDir lists the immediate children of a directory.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	// Rename moves oldPath to newPath.
	Rename(oldPath, newPath m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the walker.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadDir lists directory entries. Entry types come from the directory
// listing itself, so symlinks are reported as symlinks and not followed.
func (a *LocalSourceFSAdapter) ReadDir(path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// Rename renames a file or directory in place.
func (a *LocalSourceFSAdapter) Rename(oldPath, newPath m.Path) error {
	return os.Rename(string(oldPath), string(newPath))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
