package cli

import (
	"fmt"
	"time"

	"github.com/seedlib/urlkit/cliout"
	"github.com/seedlib/urlkit/logutil"
	"github.com/seedlib/urlkit/metrics"
	"github.com/seedlib/urlkit/urlfile"
	"github.com/seedlib/urlkit/urlutil"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	var (
		filePath      string
		reportPath    string
		enableMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "check [url...]",
		Short: "Validate one or more URLs",
		Long: "Validate URLs given as arguments and/or loaded from a file.\n" +
			"Exits with a non-zero status when any URL is invalid.",
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := args
			if filePath != "" {
				loaded, err := urlfile.LoadURLs(filePath)
				if err != nil {
					return err
				}
				logutil.Debug("loaded url list", "path", filePath, "count", len(loaded))
				urls = append(urls, loaded...)
			}
			if len(urls) == 0 {
				return fmt.Errorf("no URLs to check: pass them as arguments or via --file")
			}

			if enableMetrics {
				metrics.Enable()
			}

			report := urlfile.Report{
				Total:     len(urls),
				Generated: time.Now().UTC(),
				Results:   make([]urlfile.Entry, 0, len(urls)),
			}
			for _, raw := range urls {
				start := time.Now()
				result := urlutil.Validate(raw)
				metrics.RecordParse(result.Valid, time.Since(start))

				entry := urlfile.Entry{URL: raw, Valid: result.Valid, Reason: result.Reason}
				if result.Valid {
					report.Valid++
					if u := urlutil.Parse(raw); u != nil {
						entry.Canonical = u.String()
					}
				} else {
					report.Invalid++
				}
				report.Results = append(report.Results, entry)
			}
			metrics.RecordBatch(report.Total)

			if reportPath != "" {
				if err := urlfile.WriteReport(reportPath, report); err != nil {
					return err
				}
				logutil.Info("report written", "path", reportPath)
			}

			if err := cliout.Print(report, func() { printReport(report) }); err != nil {
				return err
			}

			if report.Invalid > 0 {
				return fmt.Errorf("%d of %d URLs are invalid", report.Invalid, report.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "File of URLs to check (.txt, .json, .yaml)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a JSON report to this path")
	cmd.Flags().BoolVar(&enableMetrics, "metrics", false, "Record Prometheus metrics for this run")

	return cmd
}

func printReport(report urlfile.Report) {
	for _, entry := range report.Results {
		if entry.Valid {
			cliout.Success("%s", entry.URL)
			if entry.Canonical != entry.URL {
				cliout.Item("canonical: %s", entry.Canonical)
			}
		} else {
			cliout.Error("%s", entry.URL)
			cliout.Item("reason: %s", entry.Reason)
		}
	}
	cliout.Plain("")
	if report.Invalid == 0 {
		cliout.Success("%d/%d URLs valid", report.Valid, report.Total)
	} else {
		cliout.Warning("%d/%d URLs valid, %d invalid", report.Valid, report.Total, report.Invalid)
	}
}
