package quiz

import "fmt"

// Mode is the presentation mode of the detail view.
type Mode int

const (
	// ModeBrowse shows names in full and offers editing.
	ModeBrowse Mode = iota
	// ModeQuiz masks names and is read-only apart from hints.
	ModeQuiz
)

// ModeFromFlag maps the navigation flag to a mode.
func ModeFromFlag(quiz bool) Mode {
	if quiz {
		return ModeQuiz
	}
	return ModeBrowse
}

// ParseMode parses "browse" or "quiz".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "browse", "":
		return ModeBrowse, nil
	case "quiz":
		return ModeQuiz, nil
	default:
		return ModeBrowse, fmt.Errorf("unknown mode %q", s)
	}
}

func (m Mode) String() string {
	if m == ModeQuiz {
		return "quiz"
	}
	return "browse"
}
