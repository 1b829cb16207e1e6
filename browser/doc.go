// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package browser provides secure cross-platform utilities for launching URLs
// in web browsers.
//
// This package delegates to github.com/pkg/browser for the actual browser
// launching, while adding URL validation through the urlutil grammar and a
// consistent API for callers.
//
// # Security Considerations
//
// Only http:// and https:// URLs are launched. Everything else, including
// file://, javascript:, and structurally invalid URLs, is rejected before
// any command runs.
//
// # Example Usage
//
//	err := browser.Launch(browser.LaunchOptions{
//	    URL:    "https://example.com",
//	    Target: browser.TargetDefault,
//	})
package browser
