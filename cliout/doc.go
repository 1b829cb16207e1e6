// Package cliout provides structured output formatting for the urlkit CLI
// with cross-platform terminal support and multiple output formats.
//
// # Features
//
//   - Multiple output formats (default human-readable and JSON)
//   - ANSI color support with a consistent color scheme
//   - Unicode symbol detection with ASCII fallbacks for legacy terminals
//
// # Basic Usage
//
//	import "github.com/seedlib/urlkit/cliout"
//
//	// Print success message
//	cliout.Success("%s is a valid URL", input)
//
//	// Print error message
//	cliout.Error("invalid URL: %s", reason)
//
//	// Print a component label
//	cliout.Label("Scheme", u.Scheme())
//
// # Output Formats
//
// Set the output format using SetFormat:
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    log.Fatal(err)
//	}
//
// The Print function supports hybrid output where the caller provides both
// JSON data and a formatter function:
//
//	err := cliout.Print(result, func() {
//	    cliout.Success("valid")
//	})
//
// In JSON mode the data is marshaled; in default mode the formatter runs.
//
// # Colors
//
// Color output is suppressed when NoColor is called or when the NO_COLOR
// environment variable is set.
package cliout
