// Package quiz implements the masked-name quiz: masking, hint selection and
// the reveal state of the current entry.
package quiz

import "strings"

// Placeholder glyphs used for hidden characters.
const (
	WidePlaceholder   = '〇'
	NarrowPlaceholder = '*'
)

// Positions is a set of revealed rune positions.
type Positions map[int]struct{}

// IsSpace reports whether r is a plain or ideographic space. Spaces are never
// hidden and never offered as hints.
func IsSpace(r rune) bool {
	return r == ' ' || r == '　'
}

// Mask hides every rune of name whose position is not in revealed. Spaces are
// kept; runes above the single-byte range become WidePlaceholder and the
// rest NarrowPlaceholder.
func Mask(name string, revealed Positions) string {
	var b strings.Builder
	b.Grow(len(name))

	i := 0
	for _, r := range name {
		_, shown := revealed[i]
		switch {
		case shown, IsSpace(r):
			b.WriteRune(r)
		case r > 0xFF:
			b.WriteRune(WidePlaceholder)
		default:
			b.WriteRune(NarrowPlaceholder)
		}
		i++
	}

	return b.String()
}

// Hidden returns the positions of name that are neither revealed nor spaces,
// in ascending order.
func Hidden(name string, revealed Positions) []int {
	var out []int
	i := 0
	for _, r := range name {
		if _, shown := revealed[i]; !shown && !IsSpace(r) {
			out = append(out, i)
		}
		i++
	}
	return out
}
