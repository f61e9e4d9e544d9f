package quiz

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted returns the queued values in order, modulo n.
type scripted struct{ vals []int }

func (s *scripted) IntN(n int) int {
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v % n
}

func positions(ps ...int) Positions {
	out := Positions{}
	for _, p := range ps {
		out[p] = struct{}{}
	}
	return out
}

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		revealed Positions
		want     string
	}{
		{"ascii hidden", "Shiba", nil, "*****"},
		{"multibyte hidden", "チワワ", nil, "〇〇〇"},
		{"spaces kept", "Big Dog", nil, "*** ***"},
		{"ideographic space kept", "柴　犬", nil, "〇　〇"},
		{"revealed positions", "Shiba", positions(0, 4), "S***a"},
		{"mixed widths", "Aチ b", positions(1), "*チ *"},
		{"latin-1 is narrow", "café", nil, "****"},
		{"empty", "", nil, ""},
		{"out of range positions ignored", "ab", positions(5), "**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask(tt.input, tt.revealed))
		})
	}
}

func TestMask_Pure(t *testing.T) {
	revealed := positions(1, 2)
	first := Mask("ポメラニアン", revealed)
	second := Mask("ポメラニアン", revealed)
	assert.Equal(t, first, second)
	assert.Len(t, revealed, 2)
}

func TestMask_AllRevealedIsIdentity(t *testing.T) {
	for _, name := range []string{"Shiba Inu", "チワワ", "柴　犬", "a"} {
		all := Positions{}
		for _, p := range Hidden(name, nil) {
			all[p] = struct{}{}
		}
		assert.Equal(t, name, Mask(name, all))
	}
}

func TestHint_TerminatesAfterNonSpaceCount(t *testing.T) {
	names := []string{"Shiba Inu", "チワワ", "柴　犬", "  x  ", "Golden Retriever"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			r := NewReveal(rand.New(rand.NewPCG(1, 2)))
			k := utf8.RuneCountInString(strings.NewReplacer(" ", "", "　", "").Replace(name))
			runes := []rune(name)

			for i := range k {
				require.True(t, r.CanHint(name), "call %d", i)
				pos, ok := r.Hint(name)
				require.True(t, ok)
				assert.False(t, IsSpace(runes[pos]), "revealed a space at %d", pos)
			}

			assert.False(t, r.CanHint(name))
			_, ok := r.Hint(name)
			assert.False(t, ok)
			assert.Len(t, r.Revealed(), k)
			assert.Equal(t, name, r.Display(name))
		})
	}
}

func TestScenario_Chihuahua(t *testing.T) {
	name := "チワワ"
	r := NewReveal(&scripted{vals: []int{1, 1, 0}})

	assert.Equal(t, "〇〇〇", r.Display(name))

	pos, ok := r.Hint(name) // hidden [0 1 2] -> 1
	require.True(t, ok)
	assert.Equal(t, 1, pos)
	assert.Equal(t, "〇ワ〇", r.Display(name))

	pos, _ = r.Hint(name) // hidden [0 2] -> 2
	assert.Equal(t, 2, pos)
	assert.Equal(t, "〇ワワ", r.Display(name))

	pos, _ = r.Hint(name) // hidden [0] -> 0
	assert.Equal(t, 0, pos)
	assert.Equal(t, "チワワ", r.Display(name))

	assert.False(t, r.CanHint(name))
}

func TestReveal_ShowFullAndReset(t *testing.T) {
	r := NewReveal(&scripted{vals: []int{0}})
	_, _ = r.Hint("Pug")
	assert.Equal(t, "P**", r.Display("Pug"))

	r.ShowFull()
	assert.True(t, r.Full())
	assert.Equal(t, "Pug", r.Display("Pug"))
	assert.Equal(t, NoName, r.Display(""))

	r.Reset()
	assert.False(t, r.Full())
	assert.Empty(t, r.Revealed())
	assert.Equal(t, "***", r.Display("Pug"))
}

func TestReveal_NilSource(t *testing.T) {
	r := NewReveal(nil)
	_, ok := r.Hint("ab")
	assert.True(t, ok)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("quiz")
	require.NoError(t, err)
	assert.Equal(t, ModeQuiz, m)
	assert.Equal(t, "quiz", m.String())

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeBrowse, m)

	_, err = ParseMode("exam")
	require.Error(t, err)

	assert.Equal(t, ModeQuiz, ModeFromFlag(true))
	assert.Equal(t, ModeBrowse, ModeFromFlag(false))
}
