// Package model defines the data structures shared by the umlaut converter.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// EntryKind distinguishes directories from regular files.
type EntryKind string

const (
	// KindDirectory marks a directory entry.
	KindDirectory EntryKind = "directory"
	// KindFile marks any non-directory entry.
	KindFile EntryKind = "file"
)
