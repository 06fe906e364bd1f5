package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeAds()
	c.normalizeLogos()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		c.Paths.ExportDir = defaultExportDir
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCatalog() error {
	var err error
	c.Catalog.SeedPath = strings.TrimSpace(c.Catalog.SeedPath)
	if c.Catalog.SeedPath, err = expandPath(c.Catalog.SeedPath); err != nil {
		return fmt.Errorf("catalog.seed_path: %w", err)
	}
	c.Catalog.CollationLanguage = strings.TrimSpace(c.Catalog.CollationLanguage)
	if c.Catalog.CollationLanguage == "" {
		c.Catalog.CollationLanguage = defaultCollationLanguage
	}
	return nil
}

func (c *Config) normalizeAds() {
	c.Ads.DefaultNetworkCode = strings.TrimSpace(c.Ads.DefaultNetworkCode)
	if c.Ads.DefaultNetworkCode == "" {
		if value, ok := os.LookupEnv(networkCodeEnv); ok {
			c.Ads.DefaultNetworkCode = strings.TrimSpace(value)
		}
	}
	c.Ads.AppVersion = strings.TrimSpace(c.Ads.AppVersion)
	if c.Ads.AppVersion == "" {
		c.Ads.AppVersion = defaultAppVersion
	}
}

func (c *Config) normalizeLogos() {
	c.Logos.BaseURL = strings.TrimSpace(c.Logos.BaseURL)
	c.Logos.PlaceholderURL = strings.TrimSpace(c.Logos.PlaceholderURL)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
