package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cosmic-code/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a Cosmic Code configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the page and writes the result to the config file (default .cosmic.yml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", cfgFile)
			}
		}
		if _, err := config.RunWizard(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s. Run `cosmic serve` to start the page.\n", cfgFile)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
