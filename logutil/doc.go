// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// It wraps the standard library's slog package with convenience functions and
// environment-aware configuration shared by the urlkit CLI and anything else
// embedding the toolkit.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("parsing url", "input", raw)
//	logutil.Info("batch check completed", "total", n, "invalid", bad)
//	logutil.Warn("report path overwritten", "path", reportPath)
//	logutil.Error("failed to load case file", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set URLKIT_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON;
// otherwise they use slog's human-readable text format.
package logutil
