//go:build windows

package launchers

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

type winSpawner struct{}

func newSpawner() Spawner {
	return winSpawner{}
}

func (winSpawner) Launch(targetPath string, opts LaunchOptions) error {
	var cmd *exec.Cmd
	if opts.Elevated {
		// The RunAs verb triggers the elevation prompt; quoting guards
		// against paths with spaces inside the PowerShell expression.
		script := fmt.Sprintf("Start-Process '%s' -Verb RunAs", strings.ReplaceAll(targetPath, "'", "''"))
		cmd = exec.Command("powershell", "-NoProfile", "-Command", script)
	} else {
		// start resolves shell associations, so shortcuts and documents
		// launch the same way a double-click would.
		cmd = exec.Command("cmd", "/C", "start", "", targetPath)
	}

	if opts.HiddenConsole {
		cmd.SysProcAttr = &syscall.SysProcAttr{
			HideWindow:    true,
			CreationFlags: windows.CREATE_NO_WINDOW,
		}
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", targetPath, err)
	}
	return cmd.Process.Release()
}
