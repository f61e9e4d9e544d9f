package quiz

import (
	"math/rand/v2"
	"slices"
)

// NoName is shown for an entry whose name is empty once the name is visible.
const NoName = "No Name"

// Source picks a uniform index in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Reveal is the quiz state of the current entry: which positions have been
// given as hints and whether the whole name is shown.
type Reveal struct {
	revealed Positions
	full     bool
	src      Source
}

// NewReveal creates an empty reveal state. A nil src uses a randomly seeded
// generator.
func NewReveal(src Source) *Reveal {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Reveal{revealed: Positions{}, src: src}
}

// Hint reveals one random hidden, non-space position of name. It returns the
// position and false when nothing is left to reveal.
func (r *Reveal) Hint(name string) (int, bool) {
	hidden := Hidden(name, r.revealed)
	if len(hidden) == 0 {
		return 0, false
	}
	pos := hidden[r.src.IntN(len(hidden))]
	r.revealed[pos] = struct{}{}
	return pos, true
}

// CanHint reports whether Hint would reveal anything for name. The hint
// control is disabled when this is false.
func (r *Reveal) CanHint(name string) bool {
	return len(Hidden(name, r.revealed)) > 0
}

// ShowFull shows the name unmasked until the next Reset.
func (r *Reveal) ShowFull() {
	r.full = true
}

// Full reports whether the name is shown unmasked.
func (r *Reveal) Full() bool {
	return r.full
}

// Revealed returns the revealed positions in ascending order.
func (r *Reveal) Revealed() []int {
	out := make([]int, 0, len(r.revealed))
	for p := range r.revealed {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Reset clears all hints and the full-name flag.
func (r *Reveal) Reset() {
	clear(r.revealed)
	r.full = false
}

// Display renders name for quiz mode.
func (r *Reveal) Display(name string) string {
	if r.full {
		if name == "" {
			return NoName
		}
		return name
	}
	return Mask(name, r.revealed)
}
