package domain

import "errors"

// Fatal errors abort the directory being walked and every ancestor.
var (
	// ErrInvalidPath is returned for paths without an extractable base name.
	ErrInvalidPath = errors.New("invalid record name")
	// ErrRename wraps a failed filesystem rename.
	ErrRename = errors.New("rename failed")
	// ErrList wraps a failed directory listing.
	ErrList = errors.New("list directory failed")
)

// Soft errors are reported and the walk continues with the next sibling.
var (
	// ErrRead wraps a tag codec failure to open a media file.
	ErrRead = errors.New("read tags failed")
	// ErrWrite wraps a tag codec failure to persist changed tags.
	ErrWrite = errors.New("save tags failed")
)

// ErrAborted is returned when the user declines the confirmation prompt.
var ErrAborted = errors.New("aborted by user")
