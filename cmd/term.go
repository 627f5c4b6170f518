package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cosmic-code/internal/particles"
	"github.com/ziadkadry99/cosmic-code/internal/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Show the particle field in the terminal",
	Long:  `Animates the particle field in the terminal. Press Esc, q or Ctrl+C to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fps, _ := cmd.Flags().GetInt("fps")

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initialising screen: %w", err)
		}
		defer screen.Fini()

		sim, err := particles.NewSeeded(cfg.Particles.Count, term.NewSurface(screen).Bounds(),
			seedOrClock(cfg.Particles.Seed), particles.WithWrap(cfg.Particles.Wrap))
		if err != nil {
			return fmt.Errorf("creating simulation: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return term.Run(ctx, screen, sim, fps)
	},
}

func init() {
	termCmd.Flags().Int("fps", term.DefaultFPS, "frames per second")
	rootCmd.AddCommand(termCmd)
}
