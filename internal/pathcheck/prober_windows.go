//go:build windows

package pathcheck

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

// driveProber classifies a path by the drive type of its volume root using
// GetDriveTypeW. This is the real probe behind the removable classification;
// platforms without it collapse removable to local.
type driveProber struct{}

func newDriveProber() DriveProber {
	return driveProber{}
}

func (driveProber) Probe(path string) (PathType, bool) {
	root := filepath.VolumeName(path)
	if root == "" {
		return "", false
	}
	rootPtr, err := windows.UTF16PtrFromString(root + `\`)
	if err != nil {
		return "", false
	}

	switch windows.GetDriveType(rootPtr) {
	case windows.DRIVE_REMOVABLE, windows.DRIVE_CDROM:
		return TypeRemovable, true
	case windows.DRIVE_REMOTE:
		return TypeNetwork, true
	case windows.DRIVE_FIXED, windows.DRIVE_RAMDISK:
		return TypeLocal, true
	default:
		return "", false
	}
}
