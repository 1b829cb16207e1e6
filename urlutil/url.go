package urlutil

import (
	"errors"
	"strconv"
	"strings"
	"sync"
)

// Mutator errors returned by SetScheme and SetPort.
var (
	// ErrInvalidScheme is returned when a scheme is empty or does not start
	// with an ASCII letter.
	ErrInvalidScheme = errors.New("invalid scheme: must start with an ASCII letter")
	// ErrZeroPort is returned when a port of 0 is set explicitly. Port 0 is
	// reserved as the "not specified" sentinel.
	ErrZeroPort = errors.New("port cannot be 0")
)

// URL is a parsed URL. Values are created exclusively through Parse; the
// zero URL is not meaningful.
//
// A URL is read-mostly: all accessors are pure, and the only permitted
// mutations are SetScheme and SetPort. The decoded query parameters are
// computed on first access and cached for the lifetime of the value; the
// cache is an internal optimization and is never shared between copies.
type URL struct {
	scheme   string
	host     string
	port     uint16
	path     string
	query    string
	fragment string

	queryOnce   sync.Once
	queryParams map[string]string
}

// Parse parses raw into a URL. It returns nil if raw is not a structurally
// valid URL; callers that need the failure reason should use Validate.
func Parse(raw string) *URL {
	u, err := parseComponents(raw)
	if err != nil {
		return nil
	}
	return u
}

// Result is the outcome of Validate. Reason is a human-readable
// explanation, empty when Valid is true. Its exact wording is not a
// contract; branch on Valid, not on the text.
type Result struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Validate runs the same grammar as Parse but reports the failure reason
// instead of yielding a value. It never panics.
func Validate(raw string) Result {
	if _, err := parseComponents(raw); err != nil {
		return Result{Valid: false, Reason: err.reason}
	}
	return Result{Valid: true}
}

// Scheme returns the lowercase scheme, or "" if the URL had none.
func (u *URL) Scheme() string { return u.scheme }

// Host returns the authority host, possibly a bracketed IPv6 literal.
// It is empty when the URL had no authority.
func (u *URL) Host() string { return u.host }

// Hostname returns the host with any IPv6 brackets stripped.
func (u *URL) Hostname() string {
	if strings.HasPrefix(u.host, "[") && strings.HasSuffix(u.host, "]") {
		return u.host[1 : len(u.host)-1]
	}
	return u.host
}

// Port returns the port. 0 means no port was specified and the scheme has
// no well-known default.
func (u *URL) Port() uint16 { return u.port }

// Path returns the path, never empty; an absent path parses as "/".
func (u *URL) Path() string { return u.path }

// Query returns the raw, still percent-encoded query string.
func (u *URL) Query() string { return u.query }

// Fragment returns the raw fragment string.
func (u *URL) Fragment() string { return u.fragment }

// QueryParams returns the decoded query parameters. Pairs are split on "&"
// and on the first "=", keys and values are independently percent-decoded,
// and a pair with no "=" maps to an empty value. Duplicate keys are
// last-write-wins.
//
// The decoded map is computed once per URL and cached; the returned map is
// a copy and may be freely mutated by the caller.
func (u *URL) QueryParams() map[string]string {
	u.queryOnce.Do(func() {
		u.queryParams = parseQueryParams(u.query)
	})
	params := make(map[string]string, len(u.queryParams))
	for k, v := range u.queryParams {
		params[k] = v
	}
	return params
}

// SetScheme replaces the scheme after lowercasing it. It fails with
// ErrInvalidScheme if the result is empty or does not start with an ASCII
// letter. The rest of the URL is not re-validated and the port is not
// recomputed.
func (u *URL) SetScheme(scheme string) error {
	scheme = strings.ToLower(scheme)
	if scheme == "" || scheme[0] < 'a' || scheme[0] > 'z' {
		return ErrInvalidScheme
	}
	u.scheme = scheme
	return nil
}

// SetPort replaces the port. It fails with ErrZeroPort for port 0, which is
// reserved to mean "not specified".
func (u *URL) SetPort(port uint16) error {
	if port == 0 {
		return ErrZeroPort
	}
	u.port = port
	return nil
}

// IsSecure reports whether the scheme is "https" or "wss".
func (u *URL) IsSecure() bool {
	return u.scheme == "https" || u.scheme == "wss"
}

// Clone returns an independent deep copy of the URL. The query-parameter
// cache is not carried over; it is recomputed on demand by the copy.
func (u *URL) Clone() *URL {
	return &URL{
		scheme:   u.scheme,
		host:     u.host,
		port:     u.port,
		path:     u.path,
		query:    u.query,
		fragment: u.fragment,
	}
}

// String reconstructs the canonical form:
//
//	[scheme:][//host[:port]]path[?query][#fragment]
//
// The port is omitted when it equals the current scheme's well-known
// default, so a URL whose scheme changed via SetScheme may serialize with
// or without its port accordingly. The canonical form is stable under
// repeated parse/serialize cycles.
func (u *URL) String() string {
	var b strings.Builder
	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}
	if u.host != "" {
		b.WriteString("//")
		b.WriteString(u.host)
		if u.port != 0 {
			if def, ok := defaultPorts[u.scheme]; !ok || def != u.port {
				b.WriteByte(':')
				b.WriteString(strconv.Itoa(int(u.port)))
			}
		}
	}
	b.WriteString(u.path)
	if u.query != "" {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}
