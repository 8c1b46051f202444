package cmd

import (
	"github.com/spf13/cobra"

	"github.com/swiftvietnam/swiftvn/internal/browser"
	"github.com/swiftvietnam/swiftvn/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lg, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	opener := browser.Opener(browser.Open)
	if !cfg.ShouldOpenBrowser() {
		opener = browser.Noop
	}

	lg.WithField("feed_url", cfg.FeedURL).WithField("demo", flagDemo).Info("starting")
	return tui.Run(tui.RunOpts{
		Loader: newLoader(cfg),
		Opener: opener,
		Logger: lg,
	})
}
