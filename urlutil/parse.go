package urlutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Submatch layout for urlPattern:
//
//	1: scheme (without the trailing colon)
//	2: authority marker, "//" plus the authority text; empty when absent
//	3: authority text
//	4: path
//	5: query
//	6: fragment
var urlPattern = regexp.MustCompile(
	`^(?:([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(?:\?([^#]*))?(?:#(.*))?$`,
)

// Submatch layout for authorityPattern:
//
//	1: user
//	2: password
//	3: host, either a bracketed literal or a run of plain host characters
//	4: colon plus port text; empty when no colon was present
//
// The plain-host alternative excludes brackets so that an unbalanced or
// otherwise malformed bracketed literal fails the authority match instead
// of being accepted as an opaque host token. The port text is captured
// loosely; digit and range checks happen as a separate step.
var authorityPattern = regexp.MustCompile(
	`^(?:([^@:]*)(?::([^@]*))?@)?(\[[^\]]+\]|[^:\[\]]+)(:[^:]*)?$`,
)

// defaultPorts maps well-known schemes to the port implied when a URL
// carries no explicit port.
var defaultPorts = map[string]uint16{
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
	"ftp":   21,
}

// DefaultPort returns the well-known default port for a scheme, and whether
// the scheme has one.
func DefaultPort(scheme string) (uint16, bool) {
	port, ok := defaultPorts[scheme]
	return port, ok
}

type parseErrorKind int

const (
	errMalformed parseErrorKind = iota
	errInvalidAuthority
	errInvalidPort
)

// parseError is the tagged failure produced by the grammar engine. Parse
// discards it entirely; Validate formats its reason for humans.
type parseError struct {
	kind   parseErrorKind
	reason string
}

func (e *parseError) Error() string {
	return e.reason
}

func malformedError(reason string) *parseError {
	return &parseError{kind: errMalformed, reason: reason}
}

func authorityError(reason string) *parseError {
	return &parseError{kind: errInvalidAuthority, reason: reason}
}

func portError(reason string) *parseError {
	return &parseError{kind: errInvalidPort, reason: reason}
}

// parseComponents runs the two-stage grammar match and returns the raw
// components of a URL, or a tagged parse error.
func parseComponents(raw string) (*URL, *parseError) {
	m := urlPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, malformedError("url has no recognizable structure")
	}

	u := &URL{
		scheme:   strings.ToLower(m[1]),
		path:     m[4],
		query:    m[5],
		fragment: m[6],
	}

	hasAuthority := m[2] != ""
	if u.scheme == "" && !hasAuthority {
		return nil, malformedError("url is missing both scheme and authority")
	}

	if hasAuthority {
		authority := m[3]
		if authority == "" {
			return nil, authorityError("empty authority: no usable host")
		}
		host, portText, hasPort, err := parseAuthority(authority)
		if err != nil {
			return nil, err
		}
		u.host = host
		if hasPort {
			port, err := parsePort(portText)
			if err != nil {
				return nil, err
			}
			u.port = port
		} else if def, ok := defaultPorts[u.scheme]; ok {
			u.port = def
		}
	}

	if u.path == "" {
		u.path = "/"
	}
	return u, nil
}

// parseAuthority splits an authority substring into host and port text.
// Userinfo is recognized but discarded. hasPort reports whether a port
// delimiter was present, even when the port text is empty.
func parseAuthority(authority string) (host, portText string, hasPort bool, err *parseError) {
	m := authorityPattern.FindStringSubmatch(authority)
	if m == nil {
		return "", "", false, authorityError("invalid host in authority component")
	}
	host = m[3]
	if m[4] != "" {
		hasPort = true
		portText = m[4][1:] // strip the leading colon
	}
	return host, portText, hasPort, nil
}

// parsePort validates port text captured from an authority. The grammar
// stage accepts any run of non-colon characters, so the digit and numeric
// range checks live here.
func parsePort(text string) (uint16, *parseError) {
	if text == "" {
		return 0, portError("port is empty")
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, portError(fmt.Sprintf("port %q must contain only digits", text))
		}
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil || n > 65535 {
		return 0, portError(fmt.Sprintf("port %q out of range 0-65535", text))
	}
	return uint16(n), nil
}
