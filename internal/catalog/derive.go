package catalog

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// isBaseLetter reports whether r is an ASCII letter or a Latin-1 letter
// (À through ÿ, excluding the × and ÷ signs).
func isBaseLetter(r rune) bool {
	switch {
	case 'A' <= r && r <= 'Z', 'a' <= r && r <= 'z':
		return true
	case '\u00C0' <= r && r <= '\u00FF':
		return unicode.IsLetter(r)
	default:
		return false
	}
}

// CategoryBase returns the longest leading run of letters in category,
// after NFC normalization. It returns "" when category is empty or does not
// start with a letter.
func CategoryBase(category string) string {
	s := norm.NFC.String(category)
	end := 0
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if r == utf8.RuneError || !isBaseLetter(r) {
			break
		}
		end += size
	}
	return s[:end]
}

// Derive fills CategoryBase for every title in place.
func Derive(titles []Title) {
	for i := range titles {
		titles[i].CategoryBase = CategoryBase(titles[i].Category)
	}
}
