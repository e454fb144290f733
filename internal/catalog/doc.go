// Package catalog owns the persisted launcher document: tracked entries,
// their categories, and the opaque settings bag, stored as a single JSON
// file with icon assets in a sibling directory.
//
// All mutation flows through Store, which serializes access with an
// in-process lock and a cross-process lock file so exactly one writer exists
// system-wide. Saves are atomic (temp file + rename) and loads always run
// the schema migration pipeline before returning a document.
package catalog
