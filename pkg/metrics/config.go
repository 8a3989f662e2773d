package metrics

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var namespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config controls request instrumentation and the exposition endpoint.
type Config struct {
	Enabled   bool   `toml:"enabled"`
	Namespace string `toml:"namespace"`
	Path      string `toml:"path"`
}

// Env maps environment variable names for metrics configuration.
type Env struct {
	Enabled   string
	Namespace string
	Path      string
}

// Finalize applies defaults, environment overrides and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from overlay. An overlay can enable metrics
// but not disable them; use the environment for that.
func (c *Config) Merge(overlay *Config) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.Namespace != "" {
		c.Namespace = overlay.Namespace
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
}

func (c *Config) loadDefaults() {
	if c.Namespace == "" {
		c.Namespace = "prompt_mixer"
	}
	if c.Path == "" {
		c.Path = "/metrics"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if enabled, err := strconv.ParseBool(v); err == nil {
				c.Enabled = enabled
			}
		}
	}
	if env.Namespace != "" {
		if v := os.Getenv(env.Namespace); v != "" {
			c.Namespace = v
		}
	}
	if env.Path != "" {
		if v := os.Getenv(env.Path); v != "" {
			c.Path = v
		}
	}
}

func (c *Config) validate() error {
	if !namespacePattern.MatchString(c.Namespace) {
		return fmt.Errorf("invalid metrics namespace %q", c.Namespace)
	}
	if c.Path == "" || c.Path[0] != '/' {
		return fmt.Errorf("invalid metrics path %q: must start with /", c.Path)
	}
	if strings.HasSuffix(c.Path, "/") {
		return fmt.Errorf("invalid metrics path %q: must not end with /", c.Path)
	}
	return nil
}
