// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/go-dashboard/go-dashboard/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "go-dashboard",
	Short: "go-dashboard serves the dashboard web interface",
	Long: `go-dashboard serves the dashboard web interface with its navigation sidebar
for home, invoices, customers and labs.`,
	Args:         cobra.OnlyValidArgs,
	SilenceUsage: true,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		config.DefaultPath,
		"Path to the directory holding main.toml (with trailing slash)",
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
