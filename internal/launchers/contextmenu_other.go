//go:build !windows

package launchers

import (
	"fmt"

	"launchpad/internal/platform"
)

type noContextMenu struct{}

func newContextMenu() ContextMenu {
	return noContextMenu{}
}

func (noContextMenu) Register(string) error {
	return fmt.Errorf("context menu registration: %w", platform.ErrUnsupported)
}

func (noContextMenu) Unregister() error {
	return fmt.Errorf("context menu registration: %w", platform.ErrUnsupported)
}

func (noContextMenu) Registered() bool {
	return false
}
