package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/types"
)

// Config is the complete frece configuration.
type Config struct {
	Recovery Recovery `koanf:"recovery" toml:"recovery"`
	Scan     Scan     `koanf:"scan" toml:"scan"`
	Output   Output   `koanf:"output" toml:"output"`
	Tools    Tools    `koanf:"tools" toml:"tools"`
}

// Recovery holds the defaults for the recover command.
type Recovery struct {
	DefaultDirName string `koanf:"default_dir_name" toml:"default_dir_name"`
	OnCollision    string `koanf:"on_collision" toml:"on_collision"`
	Workers        int    `koanf:"workers" toml:"workers"`
	Verify         bool   `koanf:"verify" toml:"verify"`
	PreserveTimes  bool   `koanf:"preserve_times" toml:"preserve_times"`
}

// Scan holds traversal settings.
type Scan struct {
	ExcludeDirs []string `koanf:"exclude_dirs" toml:"exclude_dirs"`
	SkipHidden  bool     `koanf:"skip_hidden" toml:"skip_hidden"`
}

// Output holds presentation settings.
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Tools lists the external recovery tools that may be launched.
type Tools struct {
	Known []string `koanf:"known" toml:"known"`
}

var validFormats = []string{"auto", "term", "terminal", "text", "json", "xml"}

// Validate checks values that the decoder cannot.
func (c *Config) Validate() error {
	invalid := func(key string, format string, args ...interface{}) error {
		return errors.Newf(errors.ErrConfigValid, "%s: %s", key, fmt.Sprintf(format, args...)).
			WithDetail("key", key)
	}

	if _, err := types.ParseCollisionPolicy(c.Recovery.OnCollision); err != nil {
		return invalid("recovery.on_collision", "%q is not one of overwrite, skip, rename", c.Recovery.OnCollision)
	}
	if c.Recovery.Workers < 1 {
		return invalid("recovery.workers", "must be at least 1, got %d", c.Recovery.Workers)
	}
	name := strings.TrimSpace(c.Recovery.DefaultDirName)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return invalid("recovery.default_dir_name", "%q is not a directory name", c.Recovery.DefaultDirName)
	}
	if !contains(validFormats, strings.ToLower(c.Output.Format)) {
		return invalid("output.format", "%q is not one of %s", c.Output.Format, strings.Join(validFormats, ", "))
	}
	return nil
}

// CollisionPolicy returns the configured policy. Call after Validate.
func (c *Config) CollisionPolicy() types.CollisionPolicy {
	policy, err := types.ParseCollisionPolicy(c.Recovery.OnCollision)
	if err != nil {
		return types.CollisionOverwrite
	}
	return policy
}

// IsKnownTool reports whether name is listed in tools.known.
func (c *Config) IsKnownTool(name string) bool {
	return contains(c.Tools.Known, name)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
