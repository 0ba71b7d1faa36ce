package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables recognized by FromEnv.
const (
	// EnvColor overrides Config.Color ("1", "true", "false", ...).
	EnvColor = "EXPECT_COLOR"

	// EnvHidePass overrides Config.HidePass.
	EnvHidePass = "EXPECT_HIDE_PASS"

	// EnvOnly overrides Config.Only with a comma-separated
	// pattern list.
	EnvOnly = "EXPECT_ONLY"
)

// FromEnv overlays environment variables onto the given
// configuration and returns it. Unset variables leave the existing
// values untouched; values that do not parse are ignored.
func FromEnv(c *Config) *Config {
	if c == nil {
		c = &Config{}
	}

	if v, ok := os.LookupEnv(EnvColor); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Color = &b
		}
	}

	if v, ok := os.LookupEnv(EnvHidePass); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.HidePass = b
		}
	}

	if v, ok := os.LookupEnv(EnvOnly); ok {
		patterns := []string{}
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				patterns = append(patterns, p)
			}
		}
		c.Only = patterns
	}

	return c
}
