package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	m "umlauter.dev/pkg/umlauter/internal/model"
)

// TagFile is the mutable primary tag view of one opened audio file.
type TagFile interface {
	// Get returns the string value of field and whether the field is present.
	Get(field m.Field) (string, bool)

	// Set replaces the value of field in memory.
	Set(field m.Field, value string)

	// Save persists the in-memory tag back to the file it was opened from.
	Save() error

	// Close releases any resources held by the view.
	Close() error
}

// TagCodec opens audio files and exposes their primary tag.
type TagCodec interface {
	Open(path m.Path) (TagFile, error)
}

var (
	flacMagic = []byte("fLaC")
	id3Magic  = []byte("ID3")
)

const flacMarker = ".flac"

// ErrUnsupportedFormat is returned for files that carry neither a known tag
// header nor MPEG audio frames.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// LocalTagCodec picks the FLAC or ID3v2 codec for each file.
type LocalTagCodec struct {
	id3  TagCodec
	flac TagCodec
}

// NewLocalTagCodec constructs a LocalTagCodec backed by the ID3v2 and FLAC codecs.
func NewLocalTagCodec() *LocalTagCodec {
	return &LocalTagCodec{
		id3:  NewID3Codec(),
		flac: NewFLACCodec(),
	}
}

// Open sniffs the file header to choose a codec. Files without a known magic
// fall back to the name: anything containing ".flac" goes to the FLAC codec.
// Untagged MP3 streams start with an MPEG frame sync and go to ID3v2; any
// other content is rejected with ErrUnsupportedFormat.
func (c *LocalTagCodec) Open(path m.Path) (TagFile, error) {
	head, err := readHead(path, len(flacMagic))
	if err != nil {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(head, flacMagic):
		return c.flac.Open(path)
	case bytes.HasPrefix(head, id3Magic):
		return c.id3.Open(path)
	case strings.Contains(strings.ToLower(string(path)), flacMarker):
		return c.flac.Open(path)
	case isMPEGFrameSync(head):
		return c.id3.Open(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// isMPEGFrameSync reports whether head starts with the 11-bit MPEG audio sync.
func isMPEGFrameSync(head []byte) bool {
	return len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0
}

func readHead(path m.Path, n int) ([]byte, error) {
	// #nosec G304 - path comes from the directory walk
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	head := make([]byte, n)

	read, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return head[:read], nil
}
