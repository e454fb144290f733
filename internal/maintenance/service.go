package maintenance

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"launchpad/internal/batch"
	"launchpad/internal/catalog"
	"launchpad/internal/icon"
	"launchpad/internal/launchers"
	"launchpad/internal/logging"
	"launchpad/internal/pathcheck"
	"launchpad/internal/updates"
)

// ErrDuplicatePath signals that the target is already tracked by an entry.
var ErrDuplicatePath = errors.New("path already tracked")

// Service coordinates the catalog store with the platform capabilities.
type Service struct {
	store     *catalog.Store
	validator *pathcheck.Validator
	icons     *icon.Extractor
	detector  *updates.Detector
	resolver  launchers.ShortcutResolver
	spawner   launchers.Spawner
	logger    *slog.Logger

	now func() int64
}

// New wires a service from its parts. resolver and spawner may be nil for
// callers that never launch (tests, read-only tooling).
func New(store *catalog.Store, validator *pathcheck.Validator, icons *icon.Extractor,
	detector *updates.Detector, resolver launchers.ShortcutResolver,
	spawner launchers.Spawner, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		validator: validator,
		icons:     icons,
		detector:  detector,
		resolver:  resolver,
		spawner:   spawner,
		logger:    logging.NewComponentLogger(logger, "maintenance"),
		now:       func() int64 { return time.Now().Unix() },
	}
}

// AddEntry tracks a new launch target. The display name defaults to the file
// stem when empty. Icon extraction is best-effort: a target without an icon
// still gets added, just without an asset.
func (s *Service) AddEntry(name, path, categoryID string) (catalog.Entry, error) {
	if _, err := os.Stat(path); err != nil {
		return catalog.Entry{}, fmt.Errorf("target %s: %w", path, err)
	}
	if existing, found, err := s.store.FindByPath(path); err != nil {
		return catalog.Entry{}, err
	} else if found {
		return existing, fmt.Errorf("%w by entry %s", ErrDuplicatePath, existing.ID)
	}

	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	entry := catalog.Entry{
		ID:       catalog.NewEntryID(),
		Name:     name,
		Path:     path,
		Category: categoryID,
	}

	if filename, err := s.icons.ExtractToFile(s.iconSource(entry), entry.ID); err != nil {
		s.logger.Warn("icon extraction failed, entry added without icon",
			logging.String("path", path),
			logging.Error(err))
	} else {
		entry.Icon = filename
	}

	if err := s.store.InsertEntry(entry); err != nil {
		if entry.Icon != "" {
			// Without the entry the asset is an orphan.
			os.Remove(s.store.IconPath(entry.Icon))
		}
		return catalog.Entry{}, err
	}

	s.logger.Info("entry added",
		logging.String("id", entry.ID),
		logging.String("name", entry.Name),
		logging.String("path", path))
	return s.store.Entry(entry.ID)
}

// ValidationReport summarizes one full validation pass.
type ValidationReport struct {
	Total   int                         `json:"total"`
	Valid   int                         `json:"valid"`
	Invalid int                         `json:"invalid"`
	Results map[string]pathcheck.Result `json:"results"`
}

// ValidateAll checks every tracked path and stamps the outcome on each entry
// in a single persisted mutation.
func (s *Service) ValidateAll() (ValidationReport, error) {
	report := ValidationReport{Results: make(map[string]pathcheck.Result)}
	checkedAt := s.now()

	err := s.store.Mutate(func(doc *catalog.Document) error {
		for _, id := range doc.SortedEntryIDs() {
			entry := doc.Apps[id]
			result := s.validator.Validate(entry.Path)

			entry.LastValidatedAt = checkedAt
			if result.Valid {
				entry.ValidationStatus = catalog.ValidationValid
				report.Valid++
			} else {
				entry.ValidationStatus = catalog.ValidationInvalid
				report.Invalid++
			}
			doc.Apps[id] = entry

			report.Results[id] = result
			report.Total++
		}
		return nil
	})
	if err != nil {
		return ValidationReport{}, err
	}

	s.logger.Info("validation pass finished",
		logging.Int("total", report.Total),
		logging.Int("invalid", report.Invalid))
	return report, nil
}

// InitBaselines records the update baseline for every entry that does not
// have one yet. Entries with an existing baseline count as successes so the
// operation is safe to re-run.
func (s *Service) InitBaselines() (batch.Result, error) {
	doc, err := s.store.Snapshot()
	if err != nil {
		return batch.Result{}, err
	}

	result := batch.Run(doc.SortedEntryIDs(), func(id string) error {
		return s.store.Mutate(func(doc *catalog.Document) error {
			entry, ok := doc.Apps[id]
			if !ok {
				return fmt.Errorf("entry %s: %w", id, catalog.ErrNotFound)
			}
			if entry.UpdateMetadata != nil {
				return nil
			}

			meta := &catalog.UpdateMetadata{UpdateStatus: catalog.UpdateStatusNone}
			target := s.iconSource(entry)
			if fp, ok := s.validator.Fingerprint(target); ok {
				size, mtime := fp.Size, fp.Modified
				meta.BaselineFileSize = &size
				meta.BaselineModifiedTime = &mtime
			}
			meta.BaselineVersion = s.displayVersion(target)

			entry.UpdateMetadata = meta
			doc.Apps[id] = entry
			return nil
		})
	})

	s.logger.Info("baselines initialized",
		logging.Int("total", result.Total),
		logging.Int("failed", result.Failed))
	return result, nil
}

// UpdateReport summarizes one update check pass.
type UpdateReport struct {
	Total     int                       `json:"total"`
	Suspected int                       `json:"suspected"`
	Skipped   int                       `json:"skipped"`
	Results   map[string]updates.Result `json:"results"`
}

// CheckAllUpdates evaluates the update signals for every entry that has a
// baseline and stamps the outcome in a single persisted mutation. Entries
// without a baseline are skipped, not failed.
func (s *Service) CheckAllUpdates() (UpdateReport, error) {
	report := UpdateReport{Results: make(map[string]updates.Result)}
	checkedAt := s.now()

	err := s.store.Mutate(func(doc *catalog.Document) error {
		for _, id := range doc.SortedEntryIDs() {
			entry := doc.Apps[id]
			report.Total++
			if entry.UpdateMetadata == nil {
				report.Skipped++
				continue
			}

			meta := entry.UpdateMetadata
			result := s.detector.Check(s.iconSource(entry), updates.Baseline{
				Version:      meta.BaselineVersion,
				FileSize:     meta.BaselineFileSize,
				ModifiedTime: meta.BaselineModifiedTime,
			})

			meta.LastCheckedAt = checkedAt
			if result.HasUpdate {
				meta.UpdateStatus = catalog.UpdateStatusSuspected
				meta.UpdateConfidence = result.Confidence
				report.Suspected++
			} else {
				meta.UpdateStatus = catalog.UpdateStatusNone
				meta.UpdateConfidence = ""
			}
			doc.Apps[id] = entry

			report.Results[id] = result
		}
		return nil
	})
	if err != nil {
		return UpdateReport{}, err
	}

	s.logger.Info("update check finished",
		logging.Int("total", report.Total),
		logging.Int("suspected", report.Suspected))
	return report, nil
}

// DeleteEntries removes entries and their icon assets. Each removal is its
// own persisted mutation so one failure never aborts the rest; the result
// lists every failed id.
func (s *Service) DeleteEntries(ids []string) batch.Result {
	result := batch.Run(ids, func(id string) error {
		var removed catalog.Entry
		err := s.store.Mutate(func(doc *catalog.Document) error {
			entry, ok := doc.RemoveEntry(id)
			if !ok {
				return fmt.Errorf("entry %s: %w", id, catalog.ErrNotFound)
			}
			removed = entry
			return nil
		})
		if err != nil {
			return err
		}

		if removed.Icon != "" && !catalog.IsInlineIcon(removed.Icon) {
			if err := os.Remove(s.store.IconPath(removed.Icon)); err != nil && !errors.Is(err, os.ErrNotExist) {
				s.logger.Warn("failed to remove icon asset",
					logging.String("id", id),
					logging.Error(err))
			}
		}
		return nil
	})

	s.logger.Info("delete batch finished",
		logging.Int("total", result.Total),
		logging.Int("failed", result.Failed))
	return result
}

// RefreshIcon re-extracts the entry's icon asset, overwriting the previous
// one, and returns the asset filename.
func (s *Service) RefreshIcon(id string) (string, error) {
	entry, err := s.store.Entry(id)
	if err != nil {
		return "", err
	}

	filename, err := s.icons.ExtractToFile(s.iconSource(entry), entry.ID)
	if err != nil {
		return "", err
	}

	err = s.store.Mutate(func(doc *catalog.Document) error {
		entry, ok := doc.Apps[id]
		if !ok {
			return fmt.Errorf("entry %s: %w", id, catalog.ErrNotFound)
		}
		entry.Icon = filename
		doc.Apps[id] = entry
		return nil
	})
	if err != nil {
		return "", err
	}
	return filename, nil
}

// Launch spawns an entry's target and records the launch time. The timestamp
// is only stamped when the spawn itself succeeded.
func (s *Service) Launch(id string, opts launchers.LaunchOptions) error {
	entry, err := s.store.Entry(id)
	if err != nil {
		return err
	}
	if err := s.spawner.Launch(entry.Path, opts); err != nil {
		return err
	}
	return s.store.TouchLaunched(id)
}

// iconSource returns the path whose icon and metadata represent the entry.
// For shortcuts that is the resolved target; resolution failures fall back
// to the shortcut file itself.
func (s *Service) iconSource(entry catalog.Entry) string {
	if s.resolver == nil || !strings.EqualFold(filepath.Ext(entry.Path), ".lnk") {
		return entry.Path
	}
	target, err := s.resolver.Resolve(entry.Path)
	if err != nil {
		s.logger.Debug("shortcut resolution failed, using shortcut path",
			logging.String("path", entry.Path),
			logging.Error(err))
		return entry.Path
	}
	return target
}

func (s *Service) displayVersion(target string) string {
	if s.detector == nil {
		return ""
	}
	if version, ok := s.detector.DisplayVersion(target); ok {
		return version
	}
	return ""
}
