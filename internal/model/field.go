package model

// Field identifies one textual metadata field of an audio file.
type Field string

const (
	// FieldTrackArtist is the performing artist of the track.
	FieldTrackArtist Field = "track_artist"
	// FieldTrackTitle is the title of the track.
	FieldTrackTitle Field = "track_title"
	// FieldAlbumArtist is the artist credited for the whole album.
	FieldAlbumArtist Field = "album_artist"
	// FieldAlbumTitle is the album name.
	FieldAlbumTitle Field = "album_title"
	// FieldGenre is the free-form genre text.
	FieldGenre Field = "genre"
)

// TrackedFields lists the fields the converter rewrites, in the order they are applied.
var TrackedFields = []Field{
	FieldTrackArtist,
	FieldTrackTitle,
	FieldAlbumArtist,
	FieldAlbumTitle,
	FieldGenre,
}

// FieldChange records a single rewritten field value.
type FieldChange struct {
	Field Field  `yaml:"field"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
}
