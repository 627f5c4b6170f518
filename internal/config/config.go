package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nested keys: COSMIC_SERVER__PORT sets server.port.
const EnvPrefix = "COSMIC_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (COSMIC_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps COSMIC_PARTICLES__COUNT to particles.count.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLayouts = map[Layout]bool{
	LayoutWide:     true,
	LayoutCentered: true,
}

var validSidebarStates = map[SidebarState]bool{
	SidebarAuto:      true,
	SidebarExpanded:  true,
	SidebarCollapsed: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Page.Title) == "" {
		return fmt.Errorf("page.title is required")
	}
	if !validLayouts[c.Page.Layout] {
		return fmt.Errorf("invalid page.layout %q: must be one of wide, centered", c.Page.Layout)
	}
	if !validSidebarStates[c.Page.SidebarState] {
		return fmt.Errorf("invalid page.sidebar_state %q: must be one of auto, expanded, collapsed", c.Page.SidebarState)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}

	if c.Particles.Count < 0 {
		return fmt.Errorf("particles.count must be non-negative")
	}
	if !c.Particles.Wrap.Valid() {
		return fmt.Errorf("invalid particles.wrap %q: must be one of carry, reset", c.Particles.Wrap)
	}

	if c.Highlight.Language == "" {
		return fmt.Errorf("highlight.language is required")
	}
	if c.Highlight.Style == "" {
		return fmt.Errorf("highlight.style is required")
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	return nil
}
