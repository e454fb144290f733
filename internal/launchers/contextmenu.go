package launchers

// ContextMenu registers the launcher in the OS file context menu so any
// executable can be added to the catalog from the file manager.
type ContextMenu interface {
	// Register adds the menu entry invoking exePath on the selected file.
	Register(exePath string) error
	Unregister() error
	// Registered is a benign query: it answers false rather than erroring
	// on platforms without context-menu support.
	Registered() bool
}

// NewContextMenu returns the platform context-menu registrar.
func NewContextMenu() ContextMenu {
	return newContextMenu()
}
