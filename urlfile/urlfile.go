// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package urlfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Case is a single URL case from a case file. A nil Expected means the URL
// is expected to fail parsing.
type Case struct {
	URL      string      `json:"url" yaml:"url"`
	Expected *Components `json:"expected,omitempty" yaml:"expected,omitempty"`
}

// Components is the expected decomposition of a valid URL.
type Components struct {
	Scheme   string `json:"scheme" yaml:"scheme"`
	Host     string `json:"host" yaml:"host"`
	Port     uint16 `json:"port" yaml:"port"`
	Path     string `json:"path" yaml:"path"`
	Query    string `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
}

// Entry is the validation outcome for a single URL in a Report.
type Entry struct {
	URL       string `json:"url"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
	Canonical string `json:"canonical,omitempty"`
}

// Report summarizes a batch validation run.
type Report struct {
	Total     int       `json:"total"`
	Valid     int       `json:"valid"`
	Invalid   int       `json:"invalid"`
	Generated time.Time `json:"generated"`
	Results   []Entry   `json:"results"`
}

// LoadCases loads a case file. The format is chosen by extension: .json for
// JSON, .yaml or .yml for YAML.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var cases []Case
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cases); err != nil {
			return nil, fmt.Errorf("failed to parse JSON case file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cases); err != nil {
			return nil, fmt.Errorf("failed to parse YAML case file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported case file extension %q (want .json, .yaml, or .yml)", ext)
	}

	for i, c := range cases {
		if c.URL == "" {
			return nil, fmt.Errorf("case %d in %s has an empty url field", i, path)
		}
	}
	return cases, nil
}

// LoadURLs loads a flat list of URLs. JSON and YAML files must contain a
// list of strings; any other extension is read as plain text with one URL
// per line, skipping blank lines and lines starting with '#'.
func LoadURLs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read url list: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var urls []string
		if err := json.Unmarshal(data, &urls); err != nil {
			return nil, fmt.Errorf("failed to parse JSON url list %s: %w", path, err)
		}
		return urls, nil
	case ".yaml", ".yml":
		var urls []string
		if err := yaml.Unmarshal(data, &urls); err != nil {
			return nil, fmt.Errorf("failed to parse YAML url list %s: %w", path, err)
		}
		return urls, nil
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}

// WriteReport writes a validation report as indented JSON. The write is
// atomic: data goes to a temp file in the same directory first, then the
// temp file is renamed over the target.
func WriteReport(path string, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')
	return atomicWriteFile(path, data, 0o644)
}

func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close() }()

	if _, err := tmp.Write(data); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
