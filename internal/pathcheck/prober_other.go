//go:build !windows

package pathcheck

// Drive type probing is only implemented for Windows volumes. Elsewhere every
// non-UNC path classifies as local.
func newDriveProber() DriveProber {
	return nil
}
