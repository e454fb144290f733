//go:build !windows

package updates

// Version lookup needs the Windows uninstall registry. Elsewhere the
// capability is absent and the detector relies on file metadata alone.
func NewVersionProvider() VersionProvider {
	return nil
}
