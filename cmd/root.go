package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagDemo     bool
	flagURL      string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "swiftvn",
	Short: "Read the Swift Việt Nam news feed in your terminal",
	Long:  "swiftvn loads the Swift Việt Nam RSS feed into a list and opens the item you pick in your browser.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDemo, "demo", false, "use the built-in bulletin list instead of the network")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "override the feed URL")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	_ = rootCmd.PersistentFlags().MarkHidden("url")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "swiftvn %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
