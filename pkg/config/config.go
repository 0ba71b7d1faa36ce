// Package config provides optional file- and environment-based
// configuration for an expectation tester. It augments, never
// replaces, the tester's fluent configuration calls.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.expect/pkg/expect"
)

// Config holds run configuration for a Tester, loadable from JSON
// or YAML files and overridable from the environment.
type Config struct {
	// Color enables or disables colorized report lines. When nil
	// the tester's default is left untouched.
	Color *bool `json:"color,omitempty" yaml:"color,omitempty"`

	// HidePass suppresses PASS report lines. Passing
	// expectations are still counted.
	HidePass bool `json:"hide_pass" yaml:"hide_pass"`

	// Only restricts execution to expectations whose identifier
	// matches at least one pattern. A pattern starting with '~'
	// is a regular expression over the identifier, any other
	// pattern is a substring match. An empty list runs
	// everything.
	Only []string `json:"only,omitempty" yaml:"only,omitempty"`
}

// Load reads a configuration file. The format is chosen by
// extension: .json, .yaml, or .yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read config file %s: %w", path, err,
		)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return LoadBytes(data, "json")
	case ".yaml", ".yml":
		return LoadBytes(data, "yaml")
	}
	return nil, fmt.Errorf(
		"unsupported config format %q for %s", ext, path,
	)
}

// LoadBytes parses configuration from raw bytes in the given
// format, "json" or "yaml".
func LoadBytes(data []byte, format string) (*Config, error) {
	cfg := &Config{}
	switch format {
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf(
				"failed to parse JSON config: %w", err,
			)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf(
				"failed to parse YAML config: %w", err,
			)
		}
	default:
		return nil, fmt.Errorf(
			"unsupported config format %q", format,
		)
	}
	return cfg, nil
}

// Filter compiles the Only patterns into a single identifier
// predicate, or nil when the list is empty.
func (c *Config) Filter() (func(id string) bool, error) {
	if len(c.Only) == 0 {
		return nil, nil
	}

	type matcher func(id string) bool
	matchers := make([]matcher, 0, len(c.Only))
	for _, pattern := range c.Only {
		if sub, ok := strings.CutPrefix(pattern, "~"); ok {
			re, err := regexp.Compile(sub)
			if err != nil {
				return nil, fmt.Errorf(
					"invalid identifier pattern %q: %w",
					pattern, err,
				)
			}
			matchers = append(matchers, re.MatchString)
			continue
		}
		sub := pattern
		matchers = append(matchers, func(id string) bool {
			return strings.Contains(id, sub)
		})
	}

	return func(id string) bool {
		for _, m := range matchers {
			if m(id) {
				return true
			}
		}
		return false
	}, nil
}

// Apply translates the configuration into the tester's fluent
// configuration calls and returns the same tester instance.
func (c *Config) Apply(ut *expect.Tester) (*expect.Tester, error) {
	if c.Color != nil {
		ut.ColorOutput(*c.Color)
	}
	if c.HidePass {
		ut.HidePass()
	}

	filter, err := c.Filter()
	if err != nil {
		return nil, err
	}
	if filter != nil {
		ut.OnlyIf(filter)
	}
	return ut, nil
}
