package catalog

import (
	"sort"
	"strings"
)

// SchemaVersion is the document version written by this release. Loading a
// document with an older version runs the migration pipeline (see migrate.go).
const SchemaVersion = "2"

// legacyVersion is the tag the original release wrote before the pipeline
// existed. Documents without a version are treated as this.
const legacyVersion = "1.0"

// Validation status values stamped on entries by maintenance runs.
const (
	ValidationValid   = "valid"
	ValidationInvalid = "invalid"
)

// Update status values stamped on update metadata by maintenance runs.
const (
	UpdateStatusNone      = "none"
	UpdateStatusSuspected = "suspected"
)

// UpdateMetadata captures the baseline recorded when update tracking was
// initialized for an entry plus the outcome of the most recent check.
// Baseline fields are pointers: absent means never recorded, which is
// distinct from a recorded zero.
type UpdateMetadata struct {
	BaselineVersion      string `json:"baselineVersion,omitempty"`
	BaselineFileSize     *int64 `json:"baselineFileSize,omitempty"`
	BaselineModifiedTime *int64 `json:"baselineModifiedTime,omitempty"`
	LastCheckedAt        int64  `json:"lastCheckedAt,omitempty"`
	UpdateStatus         string `json:"updateStatus,omitempty"`
	UpdateConfidence     string `json:"updateConfidence,omitempty"`
}

// Entry is a tracked launchable target.
type Entry struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Path             string          `json:"path"`
	Category         string          `json:"category"`
	Icon             string          `json:"icon,omitempty"`
	LastLaunched     int64           `json:"lastLaunched,omitempty"`
	CreatedAt        int64           `json:"createdAt"`
	ValidationStatus string          `json:"validationStatus,omitempty"`
	LastValidatedAt  int64           `json:"lastValidatedAt,omitempty"`
	UpdateMetadata   *UpdateMetadata `json:"updateMetadata,omitempty"`
}

// Category is a named, ordered grouping of entries.
type Category struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Icon  string   `json:"icon,omitempty"`
	Apps  []string `json:"apps"`
	Order int      `json:"order"`
}

// Document is the persisted catalog.
type Document struct {
	Version    string              `json:"version"`
	Categories map[string]Category `json:"categories"`
	Apps       map[string]Entry    `json:"apps"`
	Settings   map[string]any      `json:"settings"`
}

// NewDocument returns an empty document at the current schema version.
func NewDocument() *Document {
	return &Document{
		Version:    SchemaVersion,
		Categories: make(map[string]Category),
		Apps:       make(map[string]Entry),
		Settings:   DefaultSettings(),
	}
}

// DefaultSettings seeds the opaque settings bag with the UI defaults the
// original document shipped with. The core never interprets these keys.
func DefaultSettings() map[string]any {
	return map[string]any{
		"cardSize": "medium",
		"theme":    "auto",
		"sortBy":   "lastLaunched",
	}
}

// IconFilename derives the icon asset filename for an entry. Filenames are
// always derived from the entry id, never user-chosen, so deleting an entry
// needs no separate asset bookkeeping.
func IconFilename(entryID string) string {
	return entryID + ".png"
}

// IsInlineIcon reports whether an icon field holds a legacy inline data URI
// rather than an asset filename.
func IsInlineIcon(icon string) bool {
	return strings.HasPrefix(icon, "data:image")
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		Version:    d.Version,
		Categories: make(map[string]Category, len(d.Categories)),
		Apps:       make(map[string]Entry, len(d.Apps)),
		Settings:   make(map[string]any, len(d.Settings)),
	}
	for id, cat := range d.Categories {
		cat.Apps = append([]string(nil), cat.Apps...)
		out.Categories[id] = cat
	}
	for id, entry := range d.Apps {
		if entry.UpdateMetadata != nil {
			meta := *entry.UpdateMetadata
			if meta.BaselineFileSize != nil {
				size := *meta.BaselineFileSize
				meta.BaselineFileSize = &size
			}
			if meta.BaselineModifiedTime != nil {
				mtime := *meta.BaselineModifiedTime
				meta.BaselineModifiedTime = &mtime
			}
			entry.UpdateMetadata = &meta
		}
		out.Apps[id] = entry
	}
	for key, value := range d.Settings {
		out.Settings[key] = value
	}
	return out
}

// SortedEntryIDs returns all entry ids in lexical order. Batch operations
// iterate in this order so their error lists are reproducible across runs.
func (d *Document) SortedEntryIDs() []string {
	ids := make([]string, 0, len(d.Apps))
	for id := range d.Apps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
