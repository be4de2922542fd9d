package domain

import (
	"umlauter.dev/pkg/umlauter/internal/adapter"
	m "umlauter.dev/pkg/umlauter/internal/model"
)

// ApplyField transliterates a single field of tags in place. It reports the
// change and true only when the stored value was actually rewritten; absent
// fields are left alone.
func ApplyField(tags adapter.TagFile, field m.Field) (m.FieldChange, bool) {
	value, ok := tags.Get(field)
	if !ok {
		return m.FieldChange{}, false
	}

	converted := ConvertUmlauts(value)
	if converted == value {
		return m.FieldChange{}, false
	}

	tags.Set(field, converted)

	return m.FieldChange{Field: field, From: value, To: converted}, true
}

// ApplyFields runs ApplyField over every tracked field and returns the
// changes made. An empty result means the file does not need saving.
func ApplyFields(tags adapter.TagFile) []m.FieldChange {
	var changes []m.FieldChange

	for _, field := range m.TrackedFields {
		if change, changed := ApplyField(tags, field); changed {
			changes = append(changes, change)
		}
	}

	return changes
}
