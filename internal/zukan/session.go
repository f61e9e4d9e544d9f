package zukan

import (
	"github.com/colonyops/zukan/internal/core/catalog"
	"github.com/colonyops/zukan/internal/core/cursor"
	"github.com/colonyops/zukan/internal/core/quiz"
)

// NoDescription is shown for an entry without a description.
const NoDescription = "No Explanation"

// Affordances lists which user actions are currently enabled.
type Affordances struct {
	AddEntry    bool
	EditEntry   bool
	DeleteEntry bool
	AddImage    bool
	EditImage   bool
	DeleteImage bool
	PickEntry   bool
	CopyImage   bool
	Hint        bool
	Reveal      bool
}

// Session is the browsing state of one detail view: the store, the cursor
// over it, the quiz reveal of the current entry and the presentation mode.
type Session struct {
	store  *Store
	cursor *cursor.Controller
	reveal *quiz.Reveal
	mode   quiz.Mode
}

// NewSession creates a session in mode. src feeds hint selection; nil uses a
// random source.
func NewSession(mode quiz.Mode, src quiz.Source) *Session {
	reveal := quiz.NewReveal(src)
	return &Session{
		store:  NewStore(),
		cursor: cursor.New(reveal.Reset),
		reveal: reveal,
		mode:   mode,
	}
}

// Open starts browsing collection id from the first entry and returns the
// ticket for its initial load.
func (s *Session) Open(id int64) Ticket {
	t := s.store.Switch(id)
	s.cursor.Reset()
	return t
}

// OpenAs switches the presentation mode and opens collection id.
func (s *Session) OpenAs(id int64, mode quiz.Mode) Ticket {
	s.mode = mode
	s.reveal.Reset()
	return s.Open(id)
}

// Begin issues a ticket for refetching the current collection.
func (s *Session) Begin() Ticket {
	return s.store.Begin()
}

// Leave stops browsing; late responses are discarded.
func (s *Session) Leave() {
	s.store.Leave()
	s.cursor.Reset()
}

// IsCurrent reports whether t is the latest ticket.
func (s *Session) IsCurrent(t Ticket) bool {
	return s.store.IsCurrent(t)
}

// Mode returns the presentation mode.
func (s *Session) Mode() quiz.Mode { return s.mode }

// Loaded reports whether the collection has been fetched.
func (s *Session) Loaded() bool { return s.store.Loaded() }

// Collection returns the collection being browsed.
func (s *Session) Collection() catalog.Collection { return s.store.Current() }

// Position returns the cursor clamped to the collection.
func (s *Session) Position() cursor.Position {
	return s.cursor.Position(s.store.Current())
}

// Entry returns the entry under the cursor.
func (s *Session) Entry() catalog.Entry {
	e, _ := s.cursor.Current(s.store.Current())
	return e
}

// Image returns the image under the cursor. ok is false when the entry has
// no images.
func (s *Session) Image() (catalog.Image, bool) {
	return s.cursor.CurrentImage(s.store.Current())
}

func (s *Session) NextImage() { s.cursor.NextImage(s.store.Current()) }
func (s *Session) PrevImage() { s.cursor.PrevImage(s.store.Current()) }
func (s *Session) NextEntry() { s.cursor.NextEntry(s.store.Current()) }
func (s *Session) PrevEntry() { s.cursor.PrevEntry(s.store.Current()) }

// SelectEntry jumps to entry index.
func (s *Session) SelectEntry(index int) error {
	return s.cursor.SelectEntry(s.store.Current(), index)
}

// Hint reveals one more position of the current name. It is a no-op unless
// the hint affordance is enabled.
func (s *Session) Hint() (int, bool) {
	if !s.Affordances().Hint {
		return 0, false
	}
	return s.reveal.Hint(s.Entry().Name)
}

// ShowFull unmasks the current name until the entry changes.
func (s *Session) ShowFull() {
	if s.Affordances().Reveal {
		s.reveal.ShowFull()
	}
}

// Revealed returns the hinted positions of the current name.
func (s *Session) Revealed() []int {
	return s.reveal.Revealed()
}

// DisplayName is the entry name as it should be shown in the current mode.
// Placeholder entries are never masked.
func (s *Session) DisplayName() string {
	e := s.Entry()
	if s.mode == quiz.ModeQuiz && !e.IsPlaceholder() {
		return s.reveal.Display(e.Name)
	}
	if e.Name == "" {
		return quiz.NoName
	}
	return e.Name
}

// Description returns the entry description or a fallback.
func (s *Session) Description() string {
	if d := s.Entry().Description; d != "" {
		return d
	}
	return NoDescription
}

// CategoryName returns the category of the current entry, or "".
func (s *Session) CategoryName() string {
	return s.store.Current().CategoryName(s.Entry().CategoryID)
}

// Apply installs a refresh and repositions the cursor by its policy. It
// reports whether the refresh was applied; failed and stale refreshes are
// ignored and leave all state untouched.
func (s *Session) Apply(r Refresh) bool {
	if r.Err != nil {
		return false
	}

	before := s.Entry().ID
	if !s.store.Accept(r.Ticket, r.Collection) {
		return false
	}
	col := s.store.Current()

	switch r.Policy {
	case ResetPosition:
		s.cursor.Reset()
	case ResetImage:
		s.cursor.ResetImage()
		s.cursor.Clamp(col)
	default:
		s.cursor.Clamp(col)
	}

	if s.Entry().ID != before {
		s.reveal.Reset()
	}
	return true
}

// Affordances computes the enabled actions for the current state and mode.
func (s *Session) Affordances() Affordances {
	e := s.Entry()
	_, hasImage := s.Image()
	actual := !e.IsPlaceholder()

	if s.mode == quiz.ModeQuiz {
		return Affordances{
			CopyImage: actual && hasImage,
			Hint:      actual && !s.reveal.Full() && s.reveal.CanHint(e.Name),
			Reveal:    actual && !s.reveal.Full(),
		}
	}

	loaded := s.store.Loaded()
	return Affordances{
		AddEntry:    loaded,
		EditEntry:   actual,
		DeleteEntry: actual,
		AddImage:    actual,
		EditImage:   actual && hasImage,
		DeleteImage: actual && hasImage,
		PickEntry:   loaded && actual,
		CopyImage:   actual && hasImage,
	}
}
