//go:build !windows

package launchers

import (
	"fmt"
	"os/exec"
	"runtime"

	"launchpad/internal/platform"
)

type openSpawner struct{}

func newSpawner() Spawner {
	return openSpawner{}
}

func (openSpawner) Launch(targetPath string, opts LaunchOptions) error {
	if opts.Elevated {
		return fmt.Errorf("elevated launch: %w", platform.ErrUnsupported)
	}

	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	cmd := exec.Command(opener, targetPath)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", targetPath, err)
	}
	return cmd.Process.Release()
}
