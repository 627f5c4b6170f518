//go:build !nowindow

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cosmic-code/internal/particles"
	"github.com/ziadkadry99/cosmic-code/internal/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the particle field in a desktop window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")

		sim, err := particles.NewSeeded(cfg.Particles.Count,
			particles.Bounds{Width: float64(width), Height: float64(height)},
			seedOrClock(cfg.Particles.Seed), particles.WithWrap(cfg.Particles.Wrap))
		if err != nil {
			return fmt.Errorf("creating simulation: %w", err)
		}
		return window.Run(sim, cfg.Page.Title)
	},
}

func init() {
	windowCmd.Flags().Int("width", 1024, "window width in pixels")
	windowCmd.Flags().Int("height", 576, "window height in pixels")
	rootCmd.AddCommand(windowCmd)
}
