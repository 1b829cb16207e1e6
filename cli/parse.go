package cli

import (
	"fmt"
	"strconv"

	"github.com/seedlib/urlkit/cliout"
	"github.com/seedlib/urlkit/logutil"
	"github.com/seedlib/urlkit/urlutil"
	"github.com/spf13/cobra"
)

// parseOutput is the JSON shape of the parse command.
type parseOutput struct {
	Input       string            `json:"input"`
	Canonical   string            `json:"canonical"`
	Scheme      string            `json:"scheme"`
	Host        string            `json:"host"`
	Port        uint16            `json:"port"`
	Path        string            `json:"path"`
	Query       string            `json:"query,omitempty"`
	Fragment    string            `json:"fragment,omitempty"`
	Secure      bool              `json:"secure"`
	QueryParams map[string]string `json:"queryParams,omitempty"`
}

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <url>",
		Short: "Parse a URL and print its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			logutil.Debug("parsing url", "input", input)

			u := urlutil.Parse(input)
			if u == nil {
				result := urlutil.Validate(input)
				return fmt.Errorf("invalid URL: %s", result.Reason)
			}

			out := parseOutput{
				Input:       input,
				Canonical:   u.String(),
				Scheme:      u.Scheme(),
				Host:        u.Host(),
				Port:        u.Port(),
				Path:        u.Path(),
				Query:       u.Query(),
				Fragment:    u.Fragment(),
				Secure:      u.IsSecure(),
				QueryParams: u.QueryParams(),
			}

			return cliout.Print(out, func() {
				cliout.Header("URL Components")
				cliout.Label("Canonical", cliout.URL(out.Canonical))
				cliout.Label("Scheme", out.Scheme)
				cliout.Label("Host", out.Host)
				cliout.Label("Port", formatPort(out.Port))
				cliout.Label("Path", out.Path)
				if out.Query != "" {
					cliout.Label("Query", out.Query)
				}
				if out.Fragment != "" {
					cliout.Label("Fragment", out.Fragment)
				}
				cliout.Label("Secure", strconv.FormatBool(out.Secure))
				if len(out.QueryParams) > 0 {
					cliout.Plain("")
					cliout.Plain("Query parameters:")
					for key, value := range out.QueryParams {
						cliout.Bullet("%s = %q", key, value)
					}
				}
			})
		},
	}
}

func formatPort(port uint16) string {
	if port == 0 {
		return "(not specified)"
	}
	return strconv.Itoa(int(port))
}
