// Package textproc holds small text transformations used by the text
// analysis endpoint.  Every function treats empty input as "nothing to do"
// and returns the zero value.
package textproc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// CapitalizeWords lower-cases text and upper-cases the first letter of each
// space-separated word.  Runs of spaces are preserved.
func CapitalizeWords(text string) string {
	if text == "" {
		return ""
	}
	words := strings.Split(strings.ToLower(text), " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// CleanText collapses every whitespace run, line breaks included, into a
// single space and trims the ends.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}

// DefaultSuffix marks truncated text.
const DefaultSuffix = "..."

// TruncateText shortens text to at most maxLength characters, ending with
// suffix when anything was cut.  A suffix longer than maxLength is itself
// cut to fit.
func TruncateText(text string, maxLength int, suffix string) string {
	if text == "" || maxLength <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	sfx := []rune(suffix)
	if len(sfx) >= maxLength {
		return string(sfx[:maxLength])
	}
	return string(runes[:maxLength-len(sfx)]) + suffix
}

// CountWords returns the number of whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
