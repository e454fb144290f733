package catalog

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"launchpad/internal/logging"
)

// migrate walks the document forward to SchemaVersion one step at a time.
// Each step is keyed by the version it upgrades from; the rewritten version
// tag is the recorded marker that the step has been applied, so execution
// never depends on guessing from field shape. Returns true when anything
// changed and the document needs persisting.
func (s *Store) migrate(doc *Document) (bool, error) {
	if strings.TrimSpace(doc.Version) == "" {
		doc.Version = legacyVersion
	}

	changed := false
	for doc.Version != SchemaVersion {
		step, ok := migrations[doc.Version]
		if !ok {
			// Unknown tag, likely written by a newer release. Leave the
			// document alone rather than replaying steps against it.
			s.logger.Warn("unknown catalog schema version, skipping migration",
				logging.String("version", doc.Version))
			return changed, nil
		}
		if err := step.apply(s, doc); err != nil {
			return changed, err
		}
		doc.Version = step.to
		changed = true
	}
	return changed, nil
}

type migrationStep struct {
	to    string
	apply func(s *Store, doc *Document) error
}

var migrations = map[string]migrationStep{
	legacyVersion: {to: SchemaVersion, apply: migrateInlineIcons},
}

// migrateInlineIcons rewrites every legacy inline data-URI icon into a
// file-based asset named after its entry id. A payload that fails to decode
// loses its icon (extraction can regenerate it later); a failed asset write
// aborts the step so it is retried on the next load.
func migrateInlineIcons(s *Store, doc *Document) error {
	for _, id := range doc.SortedEntryIDs() {
		entry := doc.Apps[id]
		if !IsInlineIcon(entry.Icon) {
			continue
		}

		payload, err := decodeDataURI(entry.Icon)
		if err != nil {
			s.logger.Warn("dropping undecodable inline icon",
				logging.String("entry_id", id),
				logging.String("name", entry.Name),
				logging.Error(err))
			entry.Icon = ""
			doc.Apps[id] = entry
			continue
		}

		filename := IconFilename(id)
		if err := os.MkdirAll(s.iconsDir, 0o755); err != nil {
			return fmt.Errorf("create icon directory: %w", err)
		}
		if err := os.WriteFile(s.IconPath(filename), payload, 0o644); err != nil {
			return fmt.Errorf("write icon asset %s: %w", filename, err)
		}

		entry.Icon = filename
		doc.Apps[id] = entry
		s.logger.Debug("migrated inline icon to asset",
			logging.String("entry_id", id),
			logging.String("asset", filename))
	}
	return nil
}

func decodeDataURI(uri string) ([]byte, error) {
	marker := "base64,"
	idx := strings.Index(uri, marker)
	if idx < 0 {
		return nil, fmt.Errorf("icon data URI carries no base64 payload")
	}
	payload, err := base64.StdEncoding.DecodeString(uri[idx+len(marker):])
	if err != nil {
		return nil, fmt.Errorf("decode icon payload: %w", err)
	}
	return payload, nil
}
