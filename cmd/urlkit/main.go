package main

import (
	"fmt"
	"os"

	"github.com/seedlib/urlkit/cli"
	"github.com/seedlib/urlkit/version"
)

// Set via ldflags at build time.
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

func main() {
	info := version.New("urlkit")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	root := cli.NewRootCommand(info)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
