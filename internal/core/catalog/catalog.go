// Package catalog defines the collection, entry, and image domain types.
package catalog

// SentinelID marks a placeholder record that does not exist on the server.
// Edit and delete actions are never offered for a record carrying it.
const SentinelID int64 = 0

// NoImageRef is the locator used by placeholder images.
const NoImageRef = "no-image"

// Placeholder text shown while a collection is loading or empty.
const (
	LoadingName        = "Loading..."
	LoadingDescription = "Please wait while the collection is fetched."
	EmptyName          = "No entries yet."
	EmptyDescription   = "This collection has no entries registered yet."
)

// Category is an optional per-entry classifier scoped to one collection.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Image is a single picture attached to an entry. FileRef is an opaque
// locator (URL or path) that the rendering layer resolves.
type Image struct {
	ID      int64  `json:"id"`
	EntryID int64  `json:"entryId"`
	FileRef string `json:"fileRef"`
}

// Entry is one item of a collection with its ordered images.
type Entry struct {
	ID           int64   `json:"id"`
	CollectionID int64   `json:"collectionId"`
	Name         string  `json:"name"`
	CategoryID   *int64  `json:"categoryId"`
	Description  string  `json:"description"`
	Images       []Image `json:"images"`
}

// IsPlaceholder reports whether the entry is a stand-in with no server record.
func (e Entry) IsPlaceholder() bool {
	return e.ID == SentinelID
}

// Collection is a picture book: a named, ordered list of entries.
type Collection struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Thumbnail  *string    `json:"thumbnail"`
	Categories []Category `json:"categories"`
	Entries    []Entry    `json:"entries"`
}

// CollectionSummary is the list-view projection of a collection.
type CollectionSummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Thumbnail *string `json:"thumbnail"`
}

// CategoryName returns the name of the category with the given id, or ""
// when id is nil or unknown.
func (c Collection) CategoryName(id *int64) string {
	if id == nil {
		return ""
	}
	for _, cat := range c.Categories {
		if cat.ID == *id {
			return cat.Name
		}
	}
	return ""
}

// HasCategories reports whether entries of this collection may carry a category.
func (c Collection) HasCategories() bool {
	return len(c.Categories) > 0
}

// Summary returns the list-view projection of the collection.
func (c Collection) Summary() CollectionSummary {
	return CollectionSummary{ID: c.ID, Name: c.Name, Thumbnail: c.Thumbnail}
}

// Normalize guarantees a collection has at least one entry. An empty entry
// list is replaced by a single placeholder entry carrying SentinelID and one
// no-op image. The input is never modified.
func Normalize(c Collection) Collection {
	if len(c.Entries) > 0 {
		return c
	}
	c.Entries = []Entry{placeholderEntry(EmptyName, EmptyDescription)}
	return c
}

// Loading returns the collection shown before the first fetch resolves.
func Loading(id int64) Collection {
	return Collection{
		ID:      id,
		Name:    LoadingName,
		Entries: []Entry{placeholderEntry(LoadingName, LoadingDescription)},
	}
}

func placeholderEntry(name, description string) Entry {
	return Entry{
		ID:           SentinelID,
		CollectionID: SentinelID,
		Name:         name,
		Description:  description,
		Images: []Image{
			{ID: SentinelID, EntryID: SentinelID, FileRef: NoImageRef},
		},
	}
}
