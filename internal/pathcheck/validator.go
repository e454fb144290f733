// Package pathcheck classifies and verifies launch target paths and produces
// the lightweight file fingerprints the update detector compares against its
// baselines.
package pathcheck

import (
	"fmt"
	"os"
	"strings"
)

// PathType classifies the storage medium behind a target path.
type PathType string

const (
	TypeLocal     PathType = "local"
	TypeNetwork   PathType = "network"
	TypeRemovable PathType = "removable"
)

// DriveProber is the optional platform capability that inspects the drive
// behind a rooted path. Without one, removable media collapses to local.
type DriveProber interface {
	// Probe returns the drive classification for path, or false when the
	// drive type cannot be determined.
	Probe(path string) (PathType, bool)
}

// Result is the outcome of validating a target path. It is a value, not an
// error: an unreachable target is ordinary data for maintenance runs.
type Result struct {
	Valid    bool
	Reason   string
	PathType PathType
}

// Fingerprint is the (size, modified-time) pair used as a cheap proxy for
// file-content identity.
type Fingerprint struct {
	Size     int64
	Modified int64 // epoch seconds
}

// Validator checks target paths. The zero value works; a DriveProber refines
// classification where the platform supports it.
type Validator struct {
	prober DriveProber
}

// New returns a validator using the platform drive prober.
func New() *Validator {
	return &Validator{prober: newDriveProber()}
}

// NewWithProber returns a validator with an explicit prober, nil for none.
func NewWithProber(prober DriveProber) *Validator {
	return &Validator{prober: prober}
}

// Classify determines the storage medium for a path. UNC-form paths are
// network regardless of platform; everything else defers to the drive
// prober and falls back to local.
func (v *Validator) Classify(path string) PathType {
	if strings.HasPrefix(path, `\\`) || strings.HasPrefix(path, "//") {
		return TypeNetwork
	}
	if v != nil && v.prober != nil {
		if pathType, ok := v.prober.Probe(path); ok {
			return pathType
		}
	}
	return TypeLocal
}

// Validate reports whether the target is reachable, with a reason when not.
func (v *Validator) Validate(path string) Result {
	pathType := v.Classify(path)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Result{Valid: false, Reason: "missing", PathType: pathType}
		}
		return Result{Valid: false, Reason: fmt.Sprintf("inaccessible: %v", err), PathType: pathType}
	}
	return Result{Valid: true, PathType: pathType}
}

// Fingerprint stats the target. ok is false when metadata cannot be read.
func (v *Validator) Fingerprint(path string) (Fingerprint, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return Fingerprint{}, false
	}
	return Fingerprint{
		Size:     info.Size(),
		Modified: info.ModTime().Unix(),
	}, true
}
