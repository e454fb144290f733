package main

import (
	"log/slog"
	"strings"
	"sync"

	"launchpad/internal/catalog"
	"launchpad/internal/config"
	"launchpad/internal/icon"
	"launchpad/internal/launchers"
	"launchpad/internal/logging"
	"launchpad/internal/maintenance"
	"launchpad/internal/pathcheck"
	"launchpad/internal/updates"
)

// commandContext lazily wires configuration, logging, and the maintenance
// service once per invocation. Every command shares the same instances.
type commandContext struct {
	configFlag *string

	once    sync.Once
	cfg     *config.Config
	logger  *slog.Logger
	store   *catalog.Store
	service *maintenance.Service
	err     error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensure() error {
	c.once.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.err = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.err = err
			return
		}

		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			LogDir: cfg.Paths.LogDir,
		})
		if err != nil {
			c.err = err
			return
		}

		store := catalog.NewStore(cfg.Paths.CatalogPath, cfg.Paths.IconsDir, logger)
		validator := pathcheck.New()
		icons := icon.New(cfg.Paths.IconsDir, logger)
		detector := updates.New(validator, updates.NewVersionProvider(), logger)

		c.cfg = cfg
		c.logger = logger
		c.store = store
		c.service = maintenance.New(store, validator, icons, detector,
			launchers.NewShortcutResolver(), launchers.NewSpawner(), logger)
	})
	return c.err
}

func (c *commandContext) configValue() *config.Config {
	return c.cfg
}

func (c *commandContext) launchOptions(elevated bool) launchers.LaunchOptions {
	return launchers.LaunchOptions{
		Elevated:      elevated,
		HiddenConsole: c.cfg.Launch.HiddenConsole,
	}
}
