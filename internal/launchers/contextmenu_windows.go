//go:build windows

package launchers

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const (
	contextMenuKey  = `Software\Classes\*\shell\AddToProgramManager`
	contextMenuText = "Add to Launchpad"
)

type winContextMenu struct{}

func newContextMenu() ContextMenu {
	return winContextMenu{}
}

// Register writes the verb under HKCU so no elevation is needed. The command
// quotes both the executable and the selected file to survive spaces.
func (winContextMenu) Register(exePath string) error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, contextMenuKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create context menu key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue("", contextMenuText); err != nil {
		return fmt.Errorf("set menu text: %w", err)
	}
	if err := key.SetStringValue("Icon", exePath); err != nil {
		return fmt.Errorf("set menu icon: %w", err)
	}

	cmdKey, _, err := registry.CreateKey(registry.CURRENT_USER, contextMenuKey+`\command`, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create command key: %w", err)
	}
	defer cmdKey.Close()

	command := fmt.Sprintf(`"%s" add "%%1"`, exePath)
	if err := cmdKey.SetStringValue("", command); err != nil {
		return fmt.Errorf("set command: %w", err)
	}
	return nil
}

func (winContextMenu) Unregister() error {
	if err := registry.DeleteKey(registry.CURRENT_USER, contextMenuKey+`\command`); err != nil && err != registry.ErrNotExist {
		return fmt.Errorf("delete command key: %w", err)
	}
	if err := registry.DeleteKey(registry.CURRENT_USER, contextMenuKey); err != nil && err != registry.ErrNotExist {
		return fmt.Errorf("delete context menu key: %w", err)
	}
	return nil
}

func (winContextMenu) Registered() bool {
	key, err := registry.OpenKey(registry.CURRENT_USER, contextMenuKey, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	key.Close()
	return true
}
