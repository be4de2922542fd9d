package adapter

import (
	"fmt"

	"github.com/bogem/id3v2/v2"

	m "umlauter.dev/pkg/umlauter/internal/model"
)

// id3Frames maps tracked fields to ID3v2.3/2.4 text frame IDs.
var id3Frames = map[m.Field]string{
	m.FieldTrackArtist: "TPE1",
	m.FieldTrackTitle:  "TIT2",
	m.FieldAlbumArtist: "TPE2",
	m.FieldAlbumTitle:  "TALB",
	m.FieldGenre:       "TCON",
}

// ID3Codec reads and writes ID3v2 tags (MP3 files).
type ID3Codec struct{}

// NewID3Codec constructs an ID3Codec.
func NewID3Codec() *ID3Codec {
	return &ID3Codec{}
}

// Open parses the ID3v2 tag at path. Files without a tag yield an empty view.
func (c *ID3Codec) Open(path m.Path) (TagFile, error) {
	tag, err := id3v2.Open(string(path), id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("parse id3v2 tag: %w", err)
	}

	return &id3File{tag: tag}, nil
}

type id3File struct {
	tag *id3v2.Tag
}

func (f *id3File) Get(field m.Field) (string, bool) {
	id, ok := id3Frames[field]
	if !ok || len(f.tag.GetFrames(id)) == 0 {
		return "", false
	}

	return f.tag.GetTextFrame(id).Text, true
}

func (f *id3File) Set(field m.Field, value string) {
	id, ok := id3Frames[field]
	if !ok {
		return
	}

	f.tag.AddTextFrame(id, f.tag.DefaultEncoding(), value)
}

func (f *id3File) Save() error {
	return f.tag.Save()
}

func (f *id3File) Close() error {
	return f.tag.Close()
}
