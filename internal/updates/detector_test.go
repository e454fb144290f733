package updates

import (
	"testing"

	"launchpad/internal/pathcheck"
)

type stubVersions struct {
	version string
	ok      bool
}

func (s stubVersions) DisplayVersion(string) (string, bool) { return s.version, s.ok }

func newTestDetector(current pathcheck.Fingerprint, haveFile bool, versions VersionProvider) *Detector {
	d := New(pathcheck.NewWithProber(nil), versions, nil)
	d.fingerprint = func(string) (pathcheck.Fingerprint, bool) {
		return current, haveFile
	}
	return d
}

func ptr(v int64) *int64 { return &v }

func TestCheckUnchangedFile(t *testing.T) {
	d := newTestDetector(pathcheck.Fingerprint{Size: 1000, Modified: 5000}, true, nil)
	result := d.Check(`C:\app.exe`, Baseline{FileSize: ptr(1000), ModifiedTime: ptr(5000)})
	if result.FileChanged || result.HasUpdate {
		t.Errorf("expected no change, got %+v", result)
	}
	if result.Confidence != ConfidenceLow {
		t.Errorf("confidence = %s, want low", result.Confidence)
	}
}

func TestCheckSizeOnlyChange(t *testing.T) {
	d := newTestDetector(pathcheck.Fingerprint{Size: 2000, Modified: 5000}, true, nil)
	result := d.Check(`C:\app.exe`, Baseline{FileSize: ptr(1000), ModifiedTime: ptr(5000)})
	if !result.SizeChanged || !result.FileChanged || !result.HasUpdate {
		t.Fatalf("expected size-driven update, got %+v", result)
	}
	if result.ModifiedTimeChanged {
		t.Error("modified time should be unchanged")
	}
	if result.Confidence != ConfidenceLow {
		t.Errorf("confidence = %s, want low for a single signal", result.Confidence)
	}
}

func TestCheckBothSignalsChange(t *testing.T) {
	d := newTestDetector(pathcheck.Fingerprint{Size: 2000, Modified: 9000}, true, nil)
	result := d.Check(`C:\app.exe`, Baseline{FileSize: ptr(1000), ModifiedTime: ptr(5000)})
	if !result.HasUpdate || result.Confidence != ConfidenceMedium {
		t.Errorf("expected medium-confidence update, got %+v", result)
	}
}

func TestCheckModifiedTimeTolerance(t *testing.T) {
	cases := []struct {
		name     string
		current  int64
		expected bool
	}{
		{"within tolerance", 5002, false},
		{"beyond tolerance", 5003, true},
		{"within tolerance backwards", 4998, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDetector(pathcheck.Fingerprint{Size: 1000, Modified: tc.current}, true, nil)
			result := d.Check(`C:\app.exe`, Baseline{FileSize: ptr(1000), ModifiedTime: ptr(5000)})
			if result.ModifiedTimeChanged != tc.expected {
				t.Errorf("modifiedTimeChanged = %v, want %v", result.ModifiedTimeChanged, tc.expected)
			}
		})
	}
}

func TestCheckNoBaseline(t *testing.T) {
	d := newTestDetector(pathcheck.Fingerprint{Size: 2000, Modified: 9000}, true, nil)
	result := d.Check(`C:\app.exe`, Baseline{})
	if result.HasUpdate || result.FileChanged {
		t.Errorf("no baseline must never report an update: %+v", result)
	}
}

func TestCheckVersionMismatchShortCircuits(t *testing.T) {
	// File metadata looks unchanged but the installed version moved: the
	// version signal wins with high confidence.
	d := newTestDetector(pathcheck.Fingerprint{Size: 1000, Modified: 5000}, true, stubVersions{version: "2.0.1", ok: true})
	result := d.Check(`C:\app.exe`, Baseline{Version: "2.0.0", FileSize: ptr(1000), ModifiedTime: ptr(5000)})
	if !result.HasUpdate || result.Confidence != ConfidenceHigh {
		t.Fatalf("expected high-confidence update, got %+v", result)
	}
	if result.OldVersion != "2.0.0" || result.NewVersion != "2.0.1" {
		t.Errorf("versions = %q -> %q", result.OldVersion, result.NewVersion)
	}
}

func TestCheckVersionMatchFallsBackToMetadata(t *testing.T) {
	d := newTestDetector(pathcheck.Fingerprint{Size: 2000, Modified: 9000}, true, stubVersions{version: "2.0.0", ok: true})
	result := d.Check(`C:\app.exe`, Baseline{Version: "2.0.0", FileSize: ptr(1000), ModifiedTime: ptr(5000)})
	if !result.HasUpdate || result.Confidence != ConfidenceMedium {
		t.Errorf("expected metadata-driven medium update, got %+v", result)
	}
}

func TestCheckVersionHitWithoutBaselineVersion(t *testing.T) {
	// A current version with no recorded baseline version is not evidence.
	d := newTestDetector(pathcheck.Fingerprint{Size: 1000, Modified: 5000}, true, stubVersions{version: "3.1", ok: true})
	result := d.Check(`C:\app.exe`, Baseline{FileSize: ptr(1000), ModifiedTime: ptr(5000)})
	if result.HasUpdate {
		t.Errorf("unexpected update: %+v", result)
	}
	if result.NewVersion != "3.1" {
		t.Errorf("current version should still be reported: %+v", result)
	}
}

func TestCheckUnreadableFile(t *testing.T) {
	d := newTestDetector(pathcheck.Fingerprint{}, false, nil)
	result := d.Check(`C:\app.exe`, Baseline{FileSize: ptr(1000), ModifiedTime: ptr(5000)})
	if result.FileChanged || result.HasUpdate {
		t.Errorf("unreadable target must not count as changed: %+v", result)
	}
}
