package config

import (
	"github.com/ziadkadry99/cosmic-code/internal/highlight"
	"github.com/ziadkadry99/cosmic-code/internal/particles"
)

// DefaultPort matches the port the page has always been served on.
const DefaultPort = 8501

// styleChoices are the themes offered by the init wizard.
var styleChoices = []string{"monokai", "dracula", "github-dark", "nord", "solarized-dark", "native"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Page: PageConfig{
			Title:        "Cosmic Code",
			Icon:         "🚀",
			Layout:       LayoutWide,
			SidebarState: SidebarCollapsed,
		},
		Server: ServerConfig{
			Port: DefaultPort,
		},
		Particles: ParticleConfig{
			Count: particles.DefaultCount,
			Wrap:  particles.WrapCarry,
		},
		Highlight: HighlightConfig{
			Language: highlight.DefaultLanguage,
			Style:    highlight.DefaultStyle,
		},
		DataDir: ".cosmic",
	}
}
