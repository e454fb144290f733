// Package updates decides whether a tracked binary has silently changed
// since its recorded baseline, grading each determination with a confidence
// level that reflects how trustworthy the deciding signal is.
package updates

import (
	"log/slog"

	"launchpad/internal/logging"
	"launchpad/internal/pathcheck"
)

// Confidence grades on an update determination.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// modifiedTimeTolerance absorbs filesystem timestamp rounding: modified
// times within this many seconds of the baseline count as unchanged.
const modifiedTimeTolerance = 2

// VersionProvider is the optional platform capability that looks up the
// installed display version for a launch target. Best-effort and not
// guaranteed unique.
type VersionProvider interface {
	DisplayVersion(targetPath string) (string, bool)
}

// Baseline is the fingerprint and version recorded when update tracking was
// initialized. Nil fields were never recorded, which is distinct from a
// recorded zero.
type Baseline struct {
	Version      string
	FileSize     *int64
	ModifiedTime *int64
}

// Result is the outcome of one update check.
type Result struct {
	HasUpdate           bool
	Confidence          string
	OldVersion          string
	NewVersion          string
	FileChanged         bool
	SizeChanged         bool
	ModifiedTimeChanged bool
}

// Detector compares current state against baselines.
type Detector struct {
	fingerprint func(string) (pathcheck.Fingerprint, bool)
	versions    VersionProvider
	logger      *slog.Logger
}

// New builds a detector on top of the path validator's fingerprints and the
// platform version provider (nil when the platform has none).
func New(validator *pathcheck.Validator, versions VersionProvider, logger *slog.Logger) *Detector {
	return &Detector{
		fingerprint: validator.Fingerprint,
		versions:    versions,
		logger:      logging.NewComponentLogger(logger, "updates"),
	}
}

// Check evaluates the layered update signals for a target. The first
// decisive signal wins: a version mismatch is the most reliable evidence and
// short-circuits file-metadata evidence; metadata alone yields medium
// confidence when both size and modified time moved, low when only one did.
func (d *Detector) Check(targetPath string, baseline Baseline) Result {
	result := Result{Confidence: ConfidenceLow, OldVersion: baseline.Version}

	if current, ok := d.fingerprint(targetPath); ok {
		if baseline.FileSize != nil && current.Size != *baseline.FileSize {
			result.SizeChanged = true
			result.FileChanged = true
		}
		if baseline.ModifiedTime != nil && absDiff(current.Modified, *baseline.ModifiedTime) > modifiedTimeTolerance {
			result.ModifiedTimeChanged = true
			result.FileChanged = true
		}
	}

	if d.versions != nil {
		if current, ok := d.versions.DisplayVersion(targetPath); ok {
			result.NewVersion = current
			if baseline.Version != "" && current != baseline.Version {
				result.HasUpdate = true
				result.Confidence = ConfidenceHigh
				return result
			}
		}
	}

	if result.FileChanged {
		result.HasUpdate = true
		if result.SizeChanged && result.ModifiedTimeChanged {
			result.Confidence = ConfidenceMedium
		} else {
			// A single weak signal, e.g. a copy-induced timestamp change
			// with unchanged content, is less trustworthy.
			result.Confidence = ConfidenceLow
		}
	}
	return result
}

// DisplayVersion exposes the platform version lookup so baseline recording
// can reuse it. False when no provider exists or the target is unknown.
func (d *Detector) DisplayVersion(targetPath string) (string, bool) {
	if d.versions == nil {
		return "", false
	}
	return d.versions.DisplayVersion(targetPath)
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
