package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cosmic-code/internal/highlight"
	"github.com/ziadkadry99/cosmic-code/internal/launches"
	"github.com/ziadkadry99/cosmic-code/internal/page"
	"github.com/ziadkadry99/cosmic-code/internal/server"
	"github.com/ziadkadry99/cosmic-code/internal/stream"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Cosmic Code page",
	Long:  `Starts the HTTP server for the landing page, the particle stream and the launch log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		open, _ := cmd.Flags().GetBool("open")

		store, database, err := openLaunchStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		hl := highlight.New(cfg.Highlight.Language, cfg.Highlight.Style)
		composer, err := page.New(page.Config{
			Title:        cfg.Page.Title,
			Icon:         cfg.Page.Icon,
			Layout:       string(cfg.Page.Layout),
			SidebarState: string(cfg.Page.SidebarState),
		}, hl, highlight.NewMarkdown(cfg.Highlight.Style),
			page.WithLauncher(store),
			page.WithStreamPath(stream.Route),
		)
		if err != nil {
			return fmt.Errorf("building page: %w", err)
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAll,
		})

		// The particle stream is long-lived and must not sit behind the
		// request timeout.
		stream.NewHandler(stream.Config{
			Count: cfg.Particles.Count,
			Seed:  cfg.Particles.Seed,
			Wrap:  cfg.Particles.Wrap,
		}).RegisterRoutes(srv.Router())

		timed := srv.Timed()
		composer.RegisterRoutes(timed)
		launches.RegisterRoutes(timed, store)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "cosmic %s serving %s\n", Version, url)
		if verbose {
			n, _ := store.Count(ctx)
			fmt.Fprintf(os.Stderr, "  Database: %s (%d launches)\n", database.Path(), n)
		}
		if open {
			openBrowser(url)
		}

		return srv.Start()
	},
}

// openBrowser opens the URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (default from config, 8501)")
	serveCmd.Flags().Bool("open", false, "open the page in the default browser")
	rootCmd.AddCommand(serveCmd)
}
