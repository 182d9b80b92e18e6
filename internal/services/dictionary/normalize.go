package dictionary

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningTilde is kept through normalization so Ñ survives
const combiningTilde = '\u0303'

var droppedMarks = runes.Predicate(func(r rune) bool {
	return unicode.Is(unicode.Mn, r) && r != combiningTilde
})

// Normalize uppercases text and strips accents, keeping the tilde of Ñ.
// "árbol" becomes "ARBOL", "niño" becomes "NIÑO".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// Transformers carry state, so the chain is built per call
	t := transform.Chain(norm.NFD, runes.Remove(droppedMarks), norm.NFC)
	result, _, err := transform.String(t, strings.ToUpper(text))
	if err != nil {
		return strings.ToUpper(text)
	}
	return result
}
