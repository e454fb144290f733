package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"launchpad/internal/logging"
)

// Store provides exclusive access to the persisted catalog document.
//
// The RWMutex serializes in-process access; the flock lock file enforces the
// system-wide single-writer guarantee for mutations. Operations hold the
// guard for their full duration, including any OS round-trips the mutation
// function performs.
type Store struct {
	path     string
	iconsDir string
	logger   *slog.Logger

	mu   sync.RWMutex
	lock *flock.Flock
	doc  *Document

	now func() int64
}

// DefaultPaths returns the canonical per-user catalog file and icon asset
// directory.
func DefaultPaths() (catalogPath, iconsDir string, err error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", "", fmt.Errorf("resolve user config dir: %w", err)
	}
	dir := filepath.Join(base, "launchpad")
	return filepath.Join(dir, "catalog.json"), filepath.Join(dir, "icons"), nil
}

// NewStore creates a store for the given catalog file and icon directory.
// Nothing is read from disk until Load or the first access.
func NewStore(path, iconsDir string, logger *slog.Logger) *Store {
	return &Store{
		path:     path,
		iconsDir: iconsDir,
		logger:   logging.NewComponentLogger(logger, "catalog"),
		lock:     flock.New(path + ".lock"),
		now:      func() int64 { return time.Now().Unix() },
	}
}

// Path returns the catalog file location.
func (s *Store) Path() string { return s.path }

// IconsDir returns the icon asset directory.
func (s *Store) IconsDir() string { return s.iconsDir }

// IconPath returns the on-disk location of an icon asset filename.
func (s *Store) IconPath(filename string) string {
	return filepath.Join(s.iconsDir, filename)
}

// Load reads the document from disk, synthesizing an empty default when the
// file is absent or unparsable, and runs the migration pipeline before
// returning. A migration that did work persists immediately so it runs at
// most once per installation.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	migrated, err := s.loadLocked()
	if err != nil {
		return err
	}
	if migrated {
		if err := s.withFileLock(s.saveLocked); err != nil {
			return fmt.Errorf("persist migrated catalog: %w", err)
		}
		s.logger.Info("catalog migrated",
			logging.String("version", s.doc.Version),
			logging.String("path", s.path))
	}
	return nil
}

// loadLocked reads and migrates the document in memory. The caller persists
// when migrated is true; callers already holding the file lock save directly.
func (s *Store) loadLocked() (migrated bool, err error) {
	doc, err := s.readDocument()
	if err != nil {
		return false, err
	}
	migrated, err = s.migrate(doc)
	if err != nil {
		return false, fmt.Errorf("migrate catalog: %w", err)
	}
	s.doc = doc
	return migrated, nil
}

// withFileLock runs fn while holding the cross-process lock file.
func (s *Store) withFileLock(fn func() error) error {
	locked, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !locked {
		return ErrLocked
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("failed to release catalog lock", logging.Error(err))
		}
	}()
	return fn()
}

func (s *Store) readDocument() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("catalog file unparsable, starting from empty document",
			logging.String("path", s.path),
			logging.Error(err))
		return NewDocument(), nil
	}
	if doc.Categories == nil {
		doc.Categories = make(map[string]Category)
	}
	if doc.Apps == nil {
		doc.Apps = make(map[string]Entry)
	}
	if doc.Settings == nil {
		doc.Settings = DefaultSettings()
	}
	return &doc, nil
}

// Snapshot returns a deep copy of the current document, loading it first if
// necessary. Readers never observe partial mutations.
func (s *Store) Snapshot() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		migrated, err := s.loadLocked()
		if err != nil {
			return nil, err
		}
		if migrated {
			if err := s.withFileLock(s.saveLocked); err != nil {
				return nil, fmt.Errorf("persist migrated catalog: %w", err)
			}
		}
	}
	return s.doc.Clone(), nil
}

// Entry returns a copy of the entry with the given id.
func (s *Store) Entry(id string) (Entry, error) {
	doc, err := s.Snapshot()
	if err != nil {
		return Entry{}, err
	}
	entry, ok := doc.Apps[id]
	if !ok {
		return Entry{}, fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	return entry, nil
}

// Mutate applies fn to the document and persists the result. The in-process
// guard and the cross-process lock file are held for the full duration, so
// fn may perform OS round-trips without another writer interleaving. If fn
// fails, nothing is persisted and the in-memory document is restored.
func (s *Store) Mutate(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withFileLock(func() error {
		if s.doc == nil {
			migrated, err := s.loadLocked()
			if err != nil {
				return err
			}
			if migrated {
				if err := s.saveLocked(); err != nil {
					return fmt.Errorf("persist migrated catalog: %w", err)
				}
			}
		}

		working := s.doc.Clone()
		if err := fn(working); err != nil {
			return err
		}

		s.doc = working
		if err := s.saveLocked(); err != nil {
			// In-memory and on-disk state diverge here until the next
			// successful save. Surfaced, not masked.
			return err
		}
		return nil
	})
}

// saveLocked writes the document atomically via a temp file rename.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write catalog temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace catalog file: %w", err)
	}
	return nil
}
