package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (valid: %s)", c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	for _, ext := range c.Extensions {
		if ext == "" || ext == "." {
			return fmt.Errorf("invalid extension %q", ext)
		}
	}
	if _, err := c.LintSettings(); err != nil {
		return err
	}
	return nil
}

// ValidateRoot checks that the root directory exists.
func (c *Config) ValidateRoot() error {
	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("root directory does not exist: %s\nHint: use --root to choose the directory to lint", c.Root)
	}
	if !info.IsDir() {
		return fmt.Errorf("root is not a directory: %s", c.Root)
	}
	return nil
}
