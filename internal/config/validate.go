package config

import (
	"fmt"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("unsupported output %q (want %s or %s)", c.Output, OutputText, OutputYAML)
	}

	switch c.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("unsupported color mode %q (want %s, %s or %s)", c.Color, ColorAuto, ColorOn, ColorOff)
	}

	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}

	if strings.TrimSpace(c.Mapping.Param) == "" {
		return fmt.Errorf("mapping.param is required")
	}

	return nil
}
