package config

const (
	defaultLogDir        = "~/.local/share/launchpad/logs"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultHiddenConsole = true
)

// Default returns the repository default configuration. The catalog and icon
// paths stay empty here; normalize fills them from the platform user config
// directory so the catalog lands in AppData on Windows and ~/.config
// elsewhere.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Launch: Launch{
			HiddenConsole: defaultHiddenConsole,
		},
	}
}
