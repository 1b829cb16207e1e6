package cli

import (
	"fmt"

	"github.com/seedlib/urlkit/browser"
	"github.com/seedlib/urlkit/cliout"
	"github.com/seedlib/urlkit/logutil"
	"github.com/spf13/cobra"
)

func newOpenCommand() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Open a validated URL in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !browser.IsValid(target) {
				return fmt.Errorf("invalid target %q (valid: %s)", target, browser.FormatValidTargets())
			}

			url := args[0]
			logutil.Debug("opening url", "url", url, "target", target)
			if err := browser.Launch(browser.LaunchOptions{URL: url, Target: browser.Target(target)}); err != nil {
				return err
			}

			cliout.Success("Opened %s", cliout.URL(url))
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", string(browser.TargetDefault),
		fmt.Sprintf("Browser target (%s)", browser.FormatValidTargets()))

	return cmd
}
