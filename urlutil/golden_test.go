package urlutil_test

import (
	"path/filepath"
	"testing"

	"github.com/seedlib/urlkit/urlfile"
	"github.com/seedlib/urlkit/urlutil"
)

// TestGolden checks the parser against the checked-in fixture of literal
// input/expected-component pairs. Cases without an expected block must be
// rejected by Parse and Validate alike.
func TestGolden(t *testing.T) {
	cases, err := urlfile.LoadCases(filepath.Join("testdata", "url_golden.json"))
	if err != nil {
		t.Fatalf("loading golden file: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("golden file is empty")
	}

	for _, c := range cases {
		t.Run(c.URL, func(t *testing.T) {
			u := urlutil.Parse(c.URL)
			result := urlutil.Validate(c.URL)

			if c.Expected == nil {
				if u != nil {
					t.Fatalf("Parse(%q) succeeded, want rejection", c.URL)
				}
				if result.Valid {
					t.Errorf("Validate(%q).Valid = true, want false", c.URL)
				}
				if result.Reason == "" {
					t.Errorf("Validate(%q) gave no reason for rejection", c.URL)
				}
				return
			}

			if u == nil {
				t.Fatalf("Parse(%q) = nil, want value (validate reason: %s)", c.URL, result.Reason)
			}
			if !result.Valid {
				t.Errorf("Validate(%q).Valid = false, reason %q", c.URL, result.Reason)
			}

			if u.Scheme() != c.Expected.Scheme {
				t.Errorf("Scheme() = %q, want %q", u.Scheme(), c.Expected.Scheme)
			}
			if u.Host() != c.Expected.Host {
				t.Errorf("Host() = %q, want %q", u.Host(), c.Expected.Host)
			}
			if u.Port() != c.Expected.Port {
				t.Errorf("Port() = %d, want %d", u.Port(), c.Expected.Port)
			}
			if u.Path() != c.Expected.Path {
				t.Errorf("Path() = %q, want %q", u.Path(), c.Expected.Path)
			}
			if u.Query() != c.Expected.Query {
				t.Errorf("Query() = %q, want %q", u.Query(), c.Expected.Query)
			}
			if u.Fragment() != c.Expected.Fragment {
				t.Errorf("Fragment() = %q, want %q", u.Fragment(), c.Expected.Fragment)
			}
		})
	}
}
