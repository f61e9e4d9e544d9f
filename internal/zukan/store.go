package zukan

import "github.com/colonyops/zukan/internal/core/catalog"

// Ticket tags a fetch with the collection and sequence it was issued for.
// Only the most recently issued ticket is accepted by the store.
type Ticket struct {
	CollectionID int64
	seq          uint64
}

// Store holds the collection being browsed. It is the single source of truth
// for the cursor and is replaced wholesale by every accepted fetch.
//
// Store is not safe for concurrent use; it lives on the UI goroutine and
// fetches report back to it.
type Store struct {
	collection catalog.Collection
	loaded     bool
	seq        uint64
}

// NewStore returns an empty store showing no collection.
func NewStore() *Store {
	return &Store{collection: catalog.Loading(catalog.SentinelID)}
}

// Switch starts browsing collection id. The loading placeholder is shown until
// a fetch for the returned ticket is accepted. Responses for earlier tickets
// are discarded from now on.
func (s *Store) Switch(id int64) Ticket {
	s.collection = catalog.Loading(id)
	s.loaded = false
	return s.Begin()
}

// Begin issues a ticket for a refetch of the current collection. It
// supersedes every ticket issued before it.
func (s *Store) Begin() Ticket {
	s.seq++
	return Ticket{CollectionID: s.collection.ID, seq: s.seq}
}

// Leave stops browsing. In-flight responses are discarded.
func (s *Store) Leave() {
	s.seq++
	s.collection = catalog.Loading(catalog.SentinelID)
	s.loaded = false
}

// Accept replaces the collection with col when t is the latest ticket. It
// reports whether col was applied. Empty collections are normalised to a
// single placeholder entry.
func (s *Store) Accept(t Ticket, col catalog.Collection) bool {
	if !s.IsCurrent(t) {
		return false
	}
	s.collection = catalog.Normalize(col)
	s.loaded = true
	return true
}

// IsCurrent reports whether t is the latest ticket issued.
func (s *Store) IsCurrent(t Ticket) bool {
	return t.seq == s.seq && t.CollectionID == s.collection.ID
}

// Current returns the collection being browsed.
func (s *Store) Current() catalog.Collection {
	return s.collection
}

// Loaded reports whether a fetch has been accepted since the last Switch.
func (s *Store) Loaded() bool {
	return s.loaded
}
