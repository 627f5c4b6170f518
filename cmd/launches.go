package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cosmic-code/internal/launches"
)

var launchesCmd = &cobra.Command{
	Use:   "launches",
	Short: "List recently launched code",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		store, database, err := openLaunchStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		list, err := store.List(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("listing launches: %w", err)
		}
		if len(list) == 0 {
			fmt.Fprintln(os.Stderr, "No launches yet.")
			return nil
		}

		out := cmd.OutOrStdout()
		for _, l := range list {
			fmt.Fprintf(out, "%s  %s  %-8s %s\n", l.CreatedAt.Format("2006-01-02 15:04:05"), l.ID[:8], l.Language, firstLine(l.Code))
		}
		return nil
	},
}

// firstLine returns the first line of code, shortened for a listing.
func firstLine(code string) string {
	line, _, _ := strings.Cut(code, "\n")
	if r := []rune(line); len(r) > 60 {
		return string(r[:57]) + "..."
	}
	return line
}

func init() {
	launchesCmd.Flags().IntP("limit", "n", launches.DefaultLimit, "number of launches to show")
	rootCmd.AddCommand(launchesCmd)
}
