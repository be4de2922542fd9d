package model

// FailureKind classifies soft failures recorded during a run.
type FailureKind string

const (
	// FailureRename is a file that could not be renamed.
	FailureRename FailureKind = "rename"
	// FailureRead is a media file the tag codec could not open.
	FailureRead FailureKind = "read"
	// FailureWrite is a media file whose changed tags could not be saved.
	FailureWrite FailureKind = "write"
)

// Rename records an entry that was moved to its transliterated name.
type Rename struct {
	From Path      `yaml:"from"`
	To   Path      `yaml:"to"`
	Kind EntryKind `yaml:"kind"`
}

// TagEdit records the tag changes applied to one media file.
type TagEdit struct {
	Path    Path          `yaml:"path"`
	Changes []FieldChange `yaml:"changes"`
	Saved   bool          `yaml:"saved"`
}

// Failure records an error that was reported but did not stop the run.
type Failure struct {
	Path    Path        `yaml:"path"`
	Kind    FailureKind `yaml:"kind"`
	Message string      `yaml:"message"`
}

// Report is the outcome of one conversion run.
type Report struct {
	Root     Path      `yaml:"root"`
	Edited   int       `yaml:"edited"`
	Renames  []Rename  `yaml:"renames,omitempty"`
	Edits    []TagEdit `yaml:"edits,omitempty"`
	Failures []Failure `yaml:"failures,omitempty"`
	Error    string    `yaml:"error,omitempty"`
}
