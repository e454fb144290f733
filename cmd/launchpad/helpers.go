package main

import (
	"fmt"
	"strings"
	"time"

	"launchpad/internal/catalog"
)

const defaultCategoryName = "Uncategorized"

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func formatTimestamp(epoch int64) string {
	if epoch == 0 {
		return "never"
	}
	return time.Unix(epoch, 0).Format("2006-01-02 15:04")
}

// resolveCategory finds a category by name, creating it when absent. An empty
// name selects the default bucket so `launchpad add` works straight from the
// context menu.
func resolveCategory(ctx *commandContext, name string) (catalog.Category, error) {
	if strings.TrimSpace(name) == "" {
		name = defaultCategoryName
	}

	doc, err := ctx.store.Snapshot()
	if err != nil {
		return catalog.Category{}, err
	}
	for _, cat := range doc.Categories {
		if strings.EqualFold(cat.Name, name) {
			return cat, nil
		}
	}
	return ctx.store.AddCategory(name)
}

// findEntry resolves an id or a unique display name to an entry.
func findEntry(ctx *commandContext, key string) (catalog.Entry, error) {
	if entry, err := ctx.store.Entry(key); err == nil {
		return entry, nil
	}

	doc, err := ctx.store.Snapshot()
	if err != nil {
		return catalog.Entry{}, err
	}
	var matches []catalog.Entry
	for _, entry := range doc.Apps {
		if strings.EqualFold(entry.Name, key) {
			matches = append(matches, entry)
		}
	}
	switch len(matches) {
	case 0:
		return catalog.Entry{}, fmt.Errorf("no entry matches %q", key)
	case 1:
		return matches[0], nil
	default:
		var ids []string
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		return catalog.Entry{}, fmt.Errorf("%q is ambiguous, matching ids: %s", key, strings.Join(ids, ", "))
	}
}

func categoryNames(doc *catalog.Document) map[string]string {
	names := make(map[string]string, len(doc.Categories))
	for id, cat := range doc.Categories {
		names[id] = cat.Name
	}
	return names
}
