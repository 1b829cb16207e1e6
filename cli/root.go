package cli

import (
	"os"

	"github.com/seedlib/urlkit/cliout"
	"github.com/seedlib/urlkit/logutil"
	"github.com/seedlib/urlkit/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// EnvOutput overrides the default output format when the --output flag is
// not given. Valid values match the flag: "default" or "json".
const EnvOutput = "URLKIT_OUTPUT"

// NewRootCommand builds the urlkit command tree.
func NewRootCommand(info *version.Info) *cobra.Command {
	var (
		outputFormat string
		noColor      bool
		debug        bool
	)

	root := &cobra.Command{
		Use:           "urlkit",
		Short:         "Parse, validate, and inspect URLs",
		Long:          "urlkit parses URL strings into their components, validates them\nagainst a pragmatic grammar, and reconstructs canonical forms.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if env := os.Getenv(EnvOutput); env != "" && !cmd.Flags().Changed("output") {
				outputFormat = env
			}
			if err := cliout.SetFormat(outputFormat); err != nil {
				return err
			}
			if noColor {
				cliout.NoColor()
			}
			logutil.SetupLogger(debug, cliout.IsJSON())
			return nil
		},
	}

	addGlobalFlags(root.PersistentFlags(), &outputFormat, &noColor, &debug)

	root.AddCommand(newParseCommand())
	root.AddCommand(newCheckCommand())
	root.AddCommand(newOpenCommand())
	root.AddCommand(version.NewCommand(info, &outputFormat))

	return root
}

// addGlobalFlags registers the flags shared by every subcommand.
func addGlobalFlags(flags *pflag.FlagSet, outputFormat *string, noColor, debug *bool) {
	flags.StringVarP(outputFormat, "output", "o", "default", "Output format (default, json)")
	flags.BoolVar(noColor, "no-color", false, "Disable color output")
	flags.BoolVar(debug, "debug", false, "Enable debug logging")
}
