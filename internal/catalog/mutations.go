package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewEntryID generates a unique entry id. Exposed so callers that must name
// derived assets (icon extraction) can allocate the id before inserting.
func NewEntryID() string {
	return uuid.NewString()
}

// AddCategory creates an empty category at the end of the ordering.
func (s *Store) AddCategory(name string) (Category, error) {
	var created Category
	err := s.Mutate(func(doc *Document) error {
		created = Category{
			ID:    uuid.NewString(),
			Name:  name,
			Apps:  []string{},
			Order: len(doc.Categories),
		}
		doc.Categories[created.ID] = created
		return nil
	})
	return created, err
}

// InsertEntry adds a fully formed entry to the document and to its owning
// category's member list. CreatedAt is stamped when unset.
func (s *Store) InsertEntry(entry Entry) error {
	return s.Mutate(func(doc *Document) error {
		if _, exists := doc.Apps[entry.ID]; exists {
			return fmt.Errorf("entry id %s already present", entry.ID)
		}
		category, ok := doc.Categories[entry.Category]
		if !ok {
			return fmt.Errorf("category %s: %w", entry.Category, ErrNotFound)
		}
		if entry.CreatedAt == 0 {
			entry.CreatedAt = s.now()
		}
		doc.Apps[entry.ID] = entry
		category.Apps = append(category.Apps, entry.ID)
		doc.Categories[entry.Category] = category
		return nil
	})
}

// Rename changes an entry's display name.
func (s *Store) Rename(id, name string) error {
	return s.Mutate(func(doc *Document) error {
		entry, ok := doc.Apps[id]
		if !ok {
			return fmt.Errorf("entry %s: %w", id, ErrNotFound)
		}
		entry.Name = name
		doc.Apps[id] = entry
		return nil
	})
}

// Recategorize moves an entry to another category, keeping member lists
// consistent. Stale memberships found along the way are repaired rather than
// trusted.
func (s *Store) Recategorize(id, categoryID string) error {
	return s.Mutate(func(doc *Document) error {
		entry, ok := doc.Apps[id]
		if !ok {
			return fmt.Errorf("entry %s: %w", id, ErrNotFound)
		}
		target, ok := doc.Categories[categoryID]
		if !ok {
			return fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
		}

		doc.detachEntry(id)
		entry.Category = categoryID
		doc.Apps[id] = entry
		target = doc.Categories[categoryID]
		target.Apps = append(target.Apps, id)
		doc.Categories[categoryID] = target
		return nil
	})
}

// TouchLaunched records a launch timestamp on an entry.
func (s *Store) TouchLaunched(id string) error {
	return s.Mutate(func(doc *Document) error {
		entry, ok := doc.Apps[id]
		if !ok {
			return fmt.Errorf("entry %s: %w", id, ErrNotFound)
		}
		entry.LastLaunched = s.now()
		doc.Apps[id] = entry
		return nil
	})
}

// FindByPath reports whether any entry already tracks the given target path,
// compared case-insensitively.
func (s *Store) FindByPath(path string) (Entry, bool, error) {
	doc, err := s.Snapshot()
	if err != nil {
		return Entry{}, false, err
	}
	for _, entry := range doc.Apps {
		if strings.EqualFold(entry.Path, path) {
			return entry, true, nil
		}
	}
	return Entry{}, false, nil
}

// RemoveEntry deletes an entry from the document and detaches it from every
// category member list. Returns the removed entry for asset cleanup.
func (d *Document) RemoveEntry(id string) (Entry, bool) {
	entry, ok := d.Apps[id]
	if !ok {
		return Entry{}, false
	}
	delete(d.Apps, id)
	d.detachEntry(id)
	return entry, true
}

// detachEntry removes id from all category member lists. The entry's own
// category field is the primary record; scanning every list repairs any
// membership drift instead of trusting it.
func (d *Document) detachEntry(id string) {
	for catID, category := range d.Categories {
		kept := category.Apps[:0]
		for _, member := range category.Apps {
			if member != id {
				kept = append(kept, member)
			}
		}
		if len(kept) != len(category.Apps) {
			category.Apps = kept
			d.Categories[catID] = category
		}
	}
}
