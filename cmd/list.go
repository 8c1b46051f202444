package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swiftvietnam/swiftvn/internal/feed"
	"github.com/swiftvietnam/swiftvn/internal/logging"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the feed items without starting the TUI",
	Long: `Load the feed once and print one item per line as "title<TAB>link".

A feed that cannot be loaded prints nothing and a warning on stderr; the
command still exits successfully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lg := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)

		items, err := newLoader(cfg).Load(context.Background())
		if err != nil {
			lg.WithError(err).WithField("url", cfg.FeedURL).Warn("feed load failed")
			items = nil
		}
		printItems(cmd, items)
		return nil
	},
}

func printItems(cmd *cobra.Command, items []feed.NewsItem) {
	out := cmd.OutOrStdout()
	for _, it := range items {
		fmt.Fprintf(out, "%s\t%s\n", it.Title, it.Link)
	}
}
