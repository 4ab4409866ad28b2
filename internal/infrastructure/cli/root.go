// Package cli implements the groona command tree.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:     "groona",
	Version: Version,
	Short:   "Sprint analytics over project snapshots",
	Long: `Groona computes planning metrics from a point-in-time export of
project-management records: burndown series, velocity and commitment
statistics, and per-person capacity.

It reads a snapshot from the .groona/ directory of the workspace and never
mutates the underlying records.`,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().String("workspace", ".", "workspace root containing the .groona directory")
	RootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	RootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	viper.SetEnvPrefix("GROONA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("workspace", RootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("json", RootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
