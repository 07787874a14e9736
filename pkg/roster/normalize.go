package roster

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// trim strips leading and trailing white space, treating the byte order mark
// U+FEFF as white space too.
func trim(text string) string {
	return strings.TrimFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
}

// Normalize returns the comparison form of a name: trimmed and lowercased.
// It is used for equality checks only and is never stored.
func Normalize(text string) string {
	return cases.Lower(language.Und).String(trim(text))
}

// TitleCase returns the display form of a name. The trimmed text is split on
// single spaces and every segment gets an upper-case first character and a
// lower-case remainder. Consecutive inner spaces produce empty segments which
// are kept, so "ana  maria" becomes "Ana  Maria".
func TitleCase(text string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	words := strings.Split(trim(text), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(string(r)) + lower.String(w[size:])
	}
	return strings.Join(words, " ")
}
