package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cosmic-code/internal/highlight"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [file]",
	Short: "Print highlighted HTML for a source file (or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		language := cfg.Highlight.Language
		if cmd.Flags().Changed("language") {
			language, _ = cmd.Flags().GetString("language")
		}
		hl := highlight.New(language, cfg.Highlight.Style)

		if css, _ := cmd.Flags().GetBool("css"); css {
			_, err := io.WriteString(cmd.OutOrStdout(), hl.CSS())
			return err
		}

		var src []byte
		if len(args) == 1 && args[0] != "-" {
			src, err = os.ReadFile(args[0])
		} else {
			src, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("reading source: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), hl.Highlight(string(src)))
		return err
	},
}

func init() {
	highlightCmd.Flags().Bool("css", false, "print the theme stylesheet instead")
	highlightCmd.Flags().StringP("language", "l", "", "language to highlight (default from config)")
	rootCmd.AddCommand(highlightCmd)
}
