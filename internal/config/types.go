package config

import "github.com/ziadkadry99/cosmic-code/internal/particles"

// Layout controls how wide the page content column is.
type Layout string

const (
	LayoutWide     Layout = "wide"
	LayoutCentered Layout = "centered"
)

// SidebarState is the initial state of the page sidebar.
type SidebarState string

const (
	SidebarAuto      SidebarState = "auto"
	SidebarExpanded  SidebarState = "expanded"
	SidebarCollapsed SidebarState = "collapsed"
)

// Config is the top-level cosmic configuration, corresponding to .cosmic.yml.
type Config struct {
	Page      PageConfig      `yaml:"page" koanf:"page"`
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Particles ParticleConfig  `yaml:"particles" koanf:"particles"`
	Highlight HighlightConfig `yaml:"highlight" koanf:"highlight"`
	DataDir   string          `yaml:"data_dir" koanf:"data_dir"`
}

// PageConfig is set once at startup and never changes while serving.
type PageConfig struct {
	Title        string       `yaml:"title" koanf:"title"`
	Icon         string       `yaml:"icon" koanf:"icon"`
	Layout       Layout       `yaml:"layout" koanf:"layout"`
	SidebarState SidebarState `yaml:"sidebar_state" koanf:"sidebar_state"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}

// ParticleConfig controls the background animation.
type ParticleConfig struct {
	Count int                  `yaml:"count" koanf:"count"`
	Seed  uint64               `yaml:"seed" koanf:"seed"` // 0 picks a new seed per view
	Wrap  particles.WrapPolicy `yaml:"wrap" koanf:"wrap"`
}

// HighlightConfig selects the editor preview lexer and theme.
type HighlightConfig struct {
	Language string `yaml:"language" koanf:"language"`
	Style    string `yaml:"style" koanf:"style"`
}
