//go:build windows

package updates

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
	"golang.org/x/text/cases"
)

const uninstallRoot = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`
const uninstallRoot32 = `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`

// registryVersions resolves display versions from the Windows uninstall
// registry. It probes for a key matching the target's filename stem first
// and falls back to a linear scan of all uninstall entries, matching the
// stem as a case-folded substring of the display name.
type registryVersions struct {
	fold cases.Caser
}

// NewVersionProvider returns the uninstall-registry version lookup.
func NewVersionProvider() VersionProvider {
	return &registryVersions{fold: cases.Fold()}
}

func (r *registryVersions) DisplayVersion(targetPath string) (string, bool) {
	base := filepath.Base(targetPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return "", false
	}

	for _, keyPath := range []string{
		uninstallRoot + `\` + stem,
		uninstallRoot32 + `\` + stem,
	} {
		if version, ok := readDisplayVersion(keyPath); ok {
			return version, true
		}
	}
	return r.scanUninstallEntries(stem)
}

func readDisplayVersion(keyPath string) (string, bool) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer key.Close()

	version, _, err := key.GetStringValue("DisplayVersion")
	if err != nil || version == "" {
		return "", false
	}
	return version, true
}

// scanUninstallEntries walks every uninstall entry looking for a display
// name containing the stem. More thorough than the exact probe but slower,
// and explicitly not guaranteed unique.
func (r *registryVersions) scanUninstallEntries(stem string) (string, bool) {
	root, err := registry.OpenKey(registry.LOCAL_MACHINE, uninstallRoot, registry.READ)
	if err != nil {
		return "", false
	}
	defer root.Close()

	names, err := root.ReadSubKeyNames(-1)
	if err != nil {
		return "", false
	}

	needle := r.fold.String(stem)
	for _, name := range names {
		sub, err := registry.OpenKey(root, name, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		display, _, err := sub.GetStringValue("DisplayName")
		if err == nil && strings.Contains(r.fold.String(display), needle) {
			if version, _, err := sub.GetStringValue("DisplayVersion"); err == nil && version != "" {
				sub.Close()
				return version, true
			}
		}
		sub.Close()
	}
	return "", false
}
