package dictionary

import (
	"strings"

	"github.com/mcoot/palabras/internal/model"
)

var digraphs = map[string]struct{}{
	"CH": {},
	"LL": {},
	"RR": {},
}

// Tokenize splits an uppercase word into tiles, merging CH, LL and RR.
// Every other rune, including Ñ, is its own tile.
func Tokenize(word string) []model.Tile {
	letters := []rune(strings.ToUpper(word))
	tokens := make([]model.Tile, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		if i+1 < len(letters) {
			pair := string(letters[i : i+2])
			if _, ok := digraphs[pair]; ok {
				tokens = append(tokens, model.Tile(pair))
				i++
				continue
			}
		}
		tokens = append(tokens, model.Tile(letters[i]))
	}
	return tokens
}

// Join concatenates tiles back into a word
func Join(tiles []model.Tile) string {
	var sb strings.Builder
	for _, t := range tiles {
		sb.WriteString(string(t))
	}
	return sb.String()
}
