// Package domain provides the core conversion logic: transliteration,
// renaming, tag mutation and the recursive tree walk.
package domain

import "strings"

var umlautReplacer = strings.NewReplacer(
	"ä", "a",
	"Ä", "A",
	"ö", "o",
	"Ö", "O",
)

// ConvertUmlauts replaces ä, Ä, ö and Ö with a, A, o and O. Every other
// character, including ü and ß, is left untouched.
func ConvertUmlauts(text string) string {
	return umlautReplacer.Replace(text)
}
