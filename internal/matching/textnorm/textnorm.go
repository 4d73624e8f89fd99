// Package textnorm turns free text into the lowercase word sequences the
// matching engine works on.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minTokenLen is the shortest token Tokens keeps, exclusive.
const minTokenLen = 2

// Fold lowercases s and strips combining marks so "Résumé" becomes "resume".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Tokens returns the ordered keyword tokens of text: letters only, longer than
// two characters, stop words removed. Digits and punctuation separate tokens.
func Tokens(text string) []string {
	fields := strings.FieldsFunc(Fold(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) <= minTokenLen || IsStopWord(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Words splits text into lowercase words. Letters, digits and underscores form
// words; everything else separates them. Nothing is filtered out.
func Words(text string) []string {
	return strings.FieldsFunc(Fold(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}
