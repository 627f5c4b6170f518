package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to Cosmic Code! Let's configure your page.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Page title.
	titlePrompt := promptui.Prompt{
		Label:    "Page title",
		Default:  cfg.Page.Title,
		Validate: requireText,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("page title: %w", err)
	}
	cfg.Page.Title = strings.TrimSpace(title)

	// 2. Layout.
	layoutPrompt := promptui.Select{
		Label: "Select page layout",
		Items: []string{
			"wide     — content spans the window",
			"centered — fixed-width column",
		},
	}
	layoutIdx, _, err := layoutPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("layout selection: %w", err)
	}
	cfg.Page.Layout = []Layout{LayoutWide, LayoutCentered}[layoutIdx]

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 4. Particle count.
	countPrompt := promptui.Prompt{
		Label:    "Background particles",
		Default:  strconv.Itoa(cfg.Particles.Count),
		Validate: validateCount,
	}
	countStr, err := countPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("particle count: %w", err)
	}
	cfg.Particles.Count, _ = strconv.Atoi(strings.TrimSpace(countStr))

	// 5. Editor theme.
	stylePrompt := promptui.Select{
		Label: "Select editor theme",
		Items: styleChoices,
	}
	_, style, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Highlight.Style = style

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

func validateCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("count must be a number")
	}
	if n < 0 {
		return fmt.Errorf("count must be non-negative")
	}
	return nil
}
