package ansiterm

import "github.com/mattn/go-runewidth"

func runeWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// VisibleWidth returns the number of terminal columns s occupies,
// excluding the ANSI escape sequences it contains.
func VisibleWidth(s string) int {
	w := 0
	for _, tok := range Tokenize(s) {
		w += tok.Width
	}
	return w
}
