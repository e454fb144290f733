package launchers

// LaunchOptions adjusts how a target is spawned.
type LaunchOptions struct {
	// Elevated requests an administrator launch.
	Elevated bool
	// HiddenConsole suppresses the console window of console-subsystem
	// targets.
	HiddenConsole bool
}

// Spawner launches a target fire-and-forget: the only result is whether the
// spawn itself succeeded.
type Spawner interface {
	Launch(targetPath string, opts LaunchOptions) error
}

// NewSpawner returns the platform spawner.
func NewSpawner() Spawner {
	return newSpawner()
}
