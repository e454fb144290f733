package catalog

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

var tinyPNG = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0A, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

func writeLegacyCatalog(t *testing.T, store *Store, doc *Document) {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMigrateInlineIconToAsset(t *testing.T) {
	store := newTestStore(t)

	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(tinyPNG)
	legacy := &Document{
		Version:    "1.0",
		Categories: map[string]Category{},
		Apps: map[string]Entry{
			"abc": {ID: "abc", Name: "App", Path: `C:\app.exe`, Icon: uri},
		},
		Settings: DefaultSettings(),
	}
	writeLegacyCatalog(t, store, legacy)

	if err := store.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	entry, err := store.Entry("abc")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Icon != "abc.png" {
		t.Fatalf("icon = %q, want abc.png", entry.Icon)
	}
	if IsInlineIcon(entry.Icon) {
		t.Error("icon still inline after migration")
	}

	written, err := os.ReadFile(store.IconPath("abc.png"))
	if err != nil {
		t.Fatalf("read migrated asset: %v", err)
	}
	if !bytes.Equal(written, tinyPNG) {
		t.Error("migrated asset bytes differ from embedded payload")
	}

	// Migration persists immediately: the on-disk document already carries
	// the new version tag and filename.
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	var persisted Document
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatal(err)
	}
	if persisted.Version != SchemaVersion {
		t.Errorf("persisted version = %q, want %q", persisted.Version, SchemaVersion)
	}
	if persisted.Apps["abc"].Icon != "abc.png" {
		t.Errorf("persisted icon = %q", persisted.Apps["abc"].Icon)
	}
}

func TestMigrateRunsAtMostOnce(t *testing.T) {
	store := newTestStore(t)

	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(tinyPNG)
	legacy := &Document{
		Version:    "1.0",
		Categories: map[string]Category{},
		Apps: map[string]Entry{
			"abc": {ID: "abc", Name: "App", Path: `C:\app.exe`, Icon: uri},
		},
		Settings: DefaultSettings(),
	}
	writeLegacyCatalog(t, store, legacy)

	if err := store.Load(); err != nil {
		t.Fatalf("first load: %v", err)
	}

	// Replace the asset so a second migration pass would be visible.
	if err := os.WriteFile(store.IconPath("abc.png"), []byte("sentinel"), 0o644); err != nil {
		t.Fatal(err)
	}

	reopened := NewStore(store.Path(), store.IconsDir(), nil)
	if err := reopened.Load(); err != nil {
		t.Fatalf("second load: %v", err)
	}
	data, err := os.ReadFile(store.IconPath("abc.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "sentinel" {
		t.Error("migration ran a second time")
	}
}

func TestMigrateDropsUndecodableIcon(t *testing.T) {
	store := newTestStore(t)

	legacy := &Document{
		Version:    "1.0",
		Categories: map[string]Category{},
		Apps: map[string]Entry{
			"bad": {ID: "bad", Name: "App", Path: `C:\app.exe`, Icon: "data:image/png;base64,@@@not-base64@@@"},
		},
		Settings: DefaultSettings(),
	}
	writeLegacyCatalog(t, store, legacy)

	if err := store.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	entry, err := store.Entry("bad")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Icon != "" {
		t.Errorf("undecodable icon should be cleared, got %q", entry.Icon)
	}
}

func TestMigrateLeavesFileIconsAlone(t *testing.T) {
	store := newTestStore(t)

	legacy := &Document{
		Version:    "1.0",
		Categories: map[string]Category{},
		Apps: map[string]Entry{
			"ok": {ID: "ok", Name: "App", Path: `C:\app.exe`, Icon: "ok.png"},
		},
		Settings: DefaultSettings(),
	}
	writeLegacyCatalog(t, store, legacy)

	if err := store.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	entry, err := store.Entry("ok")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Icon != "ok.png" {
		t.Errorf("file-based icon rewritten to %q", entry.Icon)
	}
}
