package adapter

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"

	m "umlauter.dev/pkg/umlauter/internal/model"
)

// vorbisKeys maps tracked fields to Vorbis comment keys.
var vorbisKeys = map[m.Field]string{
	m.FieldTrackArtist: flacvorbis.FIELD_ARTIST,
	m.FieldTrackTitle:  flacvorbis.FIELD_TITLE,
	m.FieldAlbumArtist: "ALBUMARTIST",
	m.FieldAlbumTitle:  flacvorbis.FIELD_ALBUM,
	m.FieldGenre:       flacvorbis.FIELD_GENRE,
}

// FLACCodec reads and writes Vorbis comments embedded in FLAC files.
type FLACCodec struct{}

// NewFLACCodec constructs a FLACCodec.
func NewFLACCodec() *FLACCodec {
	return &FLACCodec{}
}

// Open loads the FLAC stream at path into memory and parses its Vorbis
// comment block. A stream without a comment block yields an empty view.
func (c *FLACCodec) Open(path m.Path) (TagFile, error) {
	// #nosec G304 - path comes from the directory walk
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(string(path))
	if err != nil {
		return nil, err
	}

	stream, err := flac.ParseBytes(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse flac stream: %w", err)
	}

	file := &flacFile{path: path, mode: info.Mode().Perm(), stream: stream, commentIdx: -1}

	for idx, meta := range stream.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}

		comment, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, fmt.Errorf("parse vorbis comment: %w", err)
		}

		file.comment = comment
		file.commentIdx = idx

		break
	}

	return file, nil
}

type flacFile struct {
	path       m.Path
	mode       os.FileMode
	stream     *flac.File
	comment    *flacvorbis.MetaDataBlockVorbisComment
	commentIdx int
}

// lookup returns the index of the first comment entry for key.
func (f *flacFile) lookup(key string) (int, string) {
	if f.comment == nil {
		return -1, ""
	}

	for idx, entry := range f.comment.Comments {
		name, value, ok := strings.Cut(entry, "=")
		if ok && strings.EqualFold(name, key) {
			return idx, value
		}
	}

	return -1, ""
}

func (f *flacFile) Get(field m.Field) (string, bool) {
	key, ok := vorbisKeys[field]
	if !ok {
		return "", false
	}

	idx, value := f.lookup(key)

	return value, idx >= 0
}

func (f *flacFile) Set(field m.Field, value string) {
	key, ok := vorbisKeys[field]
	if !ok {
		return
	}

	if f.comment == nil {
		f.comment = flacvorbis.New()
	}

	idx, _ := f.lookup(key)
	if idx < 0 {
		f.comment.Comments = append(f.comment.Comments, key+"="+value)
		return
	}

	name, _, _ := strings.Cut(f.comment.Comments[idx], "=")
	f.comment.Comments[idx] = name + "=" + value
}

func (f *flacFile) Save() error {
	if f.comment == nil {
		return nil
	}

	block := f.comment.Marshal()
	if f.commentIdx >= 0 {
		f.stream.Meta[f.commentIdx] = &block
	} else {
		f.stream.Meta = append(f.stream.Meta, &block)
		f.commentIdx = len(f.stream.Meta) - 1
	}

	return os.WriteFile(string(f.path), f.stream.Marshal(), f.mode)
}

func (f *flacFile) Close() error {
	return nil
}
