package cmd

import "github.com/spf13/cobra"

// browseCmd is a placeholder for help - actual execution is in main.go
var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Launch the graphical browser",
	Long: `Launch the GTK4 graphical browser.

The previous session is restored when session.auto_restore is enabled.
If a URL is provided it opens in a new tab on top of the restored ones.

Examples:
  tabshell browse                  # Restore the last session
  tabshell browse example.com      # Also open example.com`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, _ []string) {
		// This is handled by main.go before cobra runs
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
