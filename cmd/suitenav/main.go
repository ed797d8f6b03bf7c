package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "suitenav",
	Short: "Suite header and cross-app URL builder",
	Long: `suitenav serves the shared application header of the suite and builds
absolute URLs for navigating between the main app and its satellites.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
