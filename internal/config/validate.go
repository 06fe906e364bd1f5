package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateAds(); err != nil {
		return err
	}
	if err := c.validateLogos(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	if _, err := language.Parse(c.Catalog.CollationLanguage); err != nil {
		return fmt.Errorf("catalog.collation_language %q is not a valid language tag: %w", c.Catalog.CollationLanguage, err)
	}
	return nil
}

func (c *Config) validateAds() error {
	code := c.Ads.DefaultNetworkCode
	if code == "" {
		return nil
	}
	if len(code) < 3 || strings.Trim(code, "0123456789") != "" {
		return fmt.Errorf("ads.default_network_code must be at least three digits, got %q", code)
	}
	return nil
}

func (c *Config) validateLogos() error {
	for key, value := range map[string]string{
		"logos.base_url":        c.Logos.BaseURL,
		"logos.placeholder_url": c.Logos.PlaceholderURL,
	} {
		if value == "" {
			continue
		}
		parsed, err := url.Parse(value)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", key, value)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}
