// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/browser"
	"github.com/seedlib/urlkit/urlutil"
)

// Target represents the browser target for launching URLs.
type Target string

const (
	// TargetDefault uses the system default browser
	TargetDefault Target = "default"
	// TargetSystem uses the system default browser (alias for TargetDefault)
	TargetSystem Target = "system"
	// TargetNone disables browser launching
	TargetNone Target = "none"
)

func init() {
	// pkg/browser writes launch noise to stdout/stderr by default; keep
	// command output clean.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// ValidTargets returns all valid browser target values.
func ValidTargets() []Target {
	return []Target{TargetDefault, TargetSystem, TargetNone}
}

// IsValid checks if a target string is valid.
func IsValid(target string) bool {
	t := Target(target)
	for _, valid := range ValidTargets() {
		if t == valid {
			return true
		}
	}
	return false
}

// FormatValidTargets returns a comma-separated list of valid targets.
func FormatValidTargets() string {
	targets := ValidTargets()
	strs := make([]string, len(targets))
	for i, t := range targets {
		strs[i] = string(t)
	}
	return strings.Join(strs, ", ")
}

// LaunchOptions contains options for launching a browser.
type LaunchOptions struct {
	// URL to open
	URL string
	// Target browser to use
	Target Target
}

// ValidateURL checks that a URL is structurally valid and uses the http or
// https scheme. This runs before any launch command.
func ValidateURL(rawURL string) error {
	u := urlutil.Parse(rawURL)
	if u == nil {
		result := urlutil.Validate(rawURL)
		return fmt.Errorf("invalid URL: %s", result.Reason)
	}
	if u.Scheme() != "http" && u.Scheme() != "https" {
		return fmt.Errorf("invalid URL scheme %q: URL must start with http:// or https://", u.Scheme())
	}
	return nil
}

// Launch opens the specified URL in the browser determined by the target.
// The URL is validated first; a launch is never attempted for an invalid or
// non-http(s) URL. TargetNone is a no-op.
func Launch(opts LaunchOptions) error {
	if err := ValidateURL(opts.URL); err != nil {
		return err
	}

	switch opts.Target {
	case TargetNone:
		return nil
	case TargetDefault, TargetSystem, "":
		if err := browser.OpenURL(opts.URL); err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported browser target %q (valid: %s)", opts.Target, FormatValidTargets())
	}
}
