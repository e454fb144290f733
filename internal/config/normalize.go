package config

import (
	"fmt"
	"strings"

	"launchpad/internal/catalog"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.CatalogPath) == "" || strings.TrimSpace(c.Paths.IconsDir) == "" {
		catalogPath, iconsDir, err := catalog.DefaultPaths()
		if err != nil {
			return fmt.Errorf("paths: %w", err)
		}
		if strings.TrimSpace(c.Paths.CatalogPath) == "" {
			c.Paths.CatalogPath = catalogPath
		}
		if strings.TrimSpace(c.Paths.IconsDir) == "" {
			c.Paths.IconsDir = iconsDir
		}
	}

	var err error
	if c.Paths.CatalogPath, err = expandPath(c.Paths.CatalogPath); err != nil {
		return fmt.Errorf("paths.catalog_path: %w", err)
	}
	if c.Paths.IconsDir, err = expandPath(c.Paths.IconsDir); err != nil {
		return fmt.Errorf("paths.icons_dir: %w", err)
	}
	if c.Paths.LogDir == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
