package urlfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCasesJSON(t *testing.T) {
	path := writeFile(t, "cases.json", `[
		{
			"url": "https://example.com:8080/path?query#fragment",
			"expected": {
				"scheme": "https",
				"host": "example.com",
				"port": 8080,
				"path": "/path",
				"query": "query",
				"fragment": "fragment"
			}
		},
		{"url": "not a url"}
	]`)

	cases, err := LoadCases(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)

	require.NotNil(t, cases[0].Expected)
	assert.Equal(t, "https", cases[0].Expected.Scheme)
	assert.Equal(t, "example.com", cases[0].Expected.Host)
	assert.Equal(t, uint16(8080), cases[0].Expected.Port)
	assert.Equal(t, "/path", cases[0].Expected.Path)

	assert.Equal(t, "not a url", cases[1].URL)
	assert.Nil(t, cases[1].Expected, "case without expected block marks a rejection")
}

func TestLoadCasesYAML(t *testing.T) {
	path := writeFile(t, "cases.yaml", `
- url: http://example.com
  expected:
    scheme: http
    host: example.com
    port: 80
    path: /
- url: "http://"
`)

	cases, err := LoadCases(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	require.NotNil(t, cases[0].Expected)
	assert.Equal(t, uint16(80), cases[0].Expected.Port)
	assert.Nil(t, cases[1].Expected)
}

func TestLoadCasesErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCases(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "cases.toml", "url = true")
		_, err := LoadCases(path)
		assert.ErrorContains(t, err, "unsupported case file extension")
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeFile(t, "cases.json", "{not json")
		_, err := LoadCases(path)
		assert.Error(t, err)
	})

	t.Run("empty url field", func(t *testing.T) {
		path := writeFile(t, "cases.json", `[{"expected": {"scheme": "http"}}]`)
		_, err := LoadCases(path)
		assert.ErrorContains(t, err, "empty url field")
	})
}

func TestLoadURLs(t *testing.T) {
	t.Run("plain text with comments", func(t *testing.T) {
		path := writeFile(t, "urls.txt", `
# staging endpoints
https://example.com

http://other.example.com:8080/x
`)
		urls, err := LoadURLs(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com", "http://other.example.com:8080/x"}, urls)
	})

	t.Run("json list", func(t *testing.T) {
		path := writeFile(t, "urls.json", `["https://a.example.com", "https://b.example.com"]`)
		urls, err := LoadURLs(path)
		require.NoError(t, err)
		assert.Len(t, urls, 2)
	})

	t.Run("yaml list", func(t *testing.T) {
		path := writeFile(t, "urls.yml", "- https://a.example.com\n- https://b.example.com\n")
		urls, err := LoadURLs(path)
		require.NoError(t, err)
		assert.Len(t, urls, 2)
	})
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	report := Report{
		Total:     2,
		Valid:     1,
		Invalid:   1,
		Generated: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Results: []Entry{
			{URL: "https://example.com", Valid: true, Canonical: "https://example.com/"},
			{URL: "not a url", Valid: false, Reason: "url is missing both scheme and authority"},
		},
	}

	require.NoError(t, WriteReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Report
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, report.Total, loaded.Total)
	require.Len(t, loaded.Results, 2)
	assert.Equal(t, "https://example.com/", loaded.Results[0].Canonical)
	assert.False(t, loaded.Results[1].Valid)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
