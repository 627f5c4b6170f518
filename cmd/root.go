package cmd

import "github.com/spf13/cobra"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cosmic",
	Short: "A space-themed landing page for an interactive coding platform",
	Long: `Cosmic Code serves a dark, animated landing page: a drifting particle
field behind a gradient hero, three feature cards and a code editor that
previews highlighted Python and "launches" it. The particle field can also be
shown in a terminal or desktop window, or exported as a GIF.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".cosmic.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
