// Package launchers holds the thin OS collaborator boundaries the catalog
// core consumes: process spawning, shortcut-file target resolution, and
// context-menu registration. Each is a capability interface with a
// platform-selected implementation; unsupported platforms fail clearly,
// except for benign boolean queries, which answer false.
package launchers
