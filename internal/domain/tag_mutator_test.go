package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "umlauter.dev/pkg/umlauter/internal/model"
)

func TestApplyField(t *testing.T) {
	t.Run("absent field is a no-op", func(t *testing.T) {
		tags := &fakeTagFile{fields: map[m.Field]string{}}

		_, changed := ApplyField(tags, m.FieldGenre)
		assert.False(t, changed)
		assert.Empty(t, tags.fields)
	})

	t.Run("field without umlauts is left alone", func(t *testing.T) {
		tags := &fakeTagFile{fields: map[m.Field]string{m.FieldTrackArtist: "Müller"}}

		_, changed := ApplyField(tags, m.FieldTrackArtist)
		assert.False(t, changed)
		assert.Equal(t, "Müller", tags.fields[m.FieldTrackArtist])
	})

	t.Run("field with umlauts is rewritten", func(t *testing.T) {
		tags := &fakeTagFile{fields: map[m.Field]string{m.FieldTrackTitle: "Mädchen"}}

		change, changed := ApplyField(tags, m.FieldTrackTitle)
		assert.True(t, changed)
		assert.Equal(t, m.FieldChange{Field: m.FieldTrackTitle, From: "Mädchen", To: "Madchen"}, change)
		assert.Equal(t, "Madchen", tags.fields[m.FieldTrackTitle])
	})
}

func TestApplyFields(t *testing.T) {
	tags := &fakeTagFile{fields: map[m.Field]string{
		m.FieldTrackArtist: "Björk",
		m.FieldTrackTitle:  "Joga",
		m.FieldAlbumTitle:  "Homogenic",
		m.FieldGenre:       "Elektronische Musik Ä",
		"comment":          "Schön",
	}}

	changes := ApplyFields(tags)

	assert.Equal(t, []m.FieldChange{
		{Field: m.FieldTrackArtist, From: "Björk", To: "Bjork"},
		{Field: m.FieldGenre, From: "Elektronische Musik Ä", To: "Elektronische Musik A"},
	}, changes)
	assert.Equal(t, "Schön", tags.fields["comment"], "untracked fields are ignored")

	assert.Empty(t, ApplyFields(tags), "second pass finds nothing to change")
}
