// Package urlutil provides URL parsing, validation, and manipulation without
// pulling in a networking stack.
//
// This package decomposes a URL string into its standard components (scheme,
// host, port, path, query, fragment), allows controlled mutation of the scheme
// and port, and reconstructs a canonical string form. It follows a pragmatic
// permissive grammar rather than strict RFC 3986.
//
// # Usage
//
// Use Parse to obtain a URL value, which is nil if the input is not a
// structurally valid URL:
//
//	u := urlutil.Parse("https://example.com:8080/path?query#fragment")
//	if u == nil {
//		return errors.New("invalid URL")
//	}
//	fmt.Printf("%s on port %d\n", u.Host(), u.Port())
//
// Use Validate when the caller needs to know why a URL was rejected:
//
//	result := urlutil.Validate(input)
//	if !result.Valid {
//		return fmt.Errorf("invalid URL: %s", result.Reason)
//	}
//
// Parsed values serialize back to a canonical form that omits well-known
// default ports:
//
//	u := urlutil.Parse("http://example.com:80/index.html")
//	fmt.Println(u.String())
//	// Output: http://example.com/index.html
//
// # Grammar
//
// The accepted shape is, informally:
//
//	URL       := [scheme ":"] ["//" authority] path ["?" query] ["#" fragment]
//	authority := [userinfo "@"] host [":" port]
//	host      := "[" ipv6-literal "]" | 1*(any-char-except-":")
//	port      := decimal digits, numerically in 0..65535
//
// A string with neither a scheme nor an authority is rejected, as is a scheme
// followed by an empty authority (for example "http://"). When no explicit
// port is given and the scheme has a well-known default (http, https, ws,
// wss, ftp), the default is filled in at parse time.
//
// # Concurrency
//
// Distinct URL values are fully independent and safe to use from multiple
// goroutines. A single URL value supports concurrent reads, including the
// lazily computed query parameters, but mutation (SetScheme, SetPort)
// requires external synchronization.
package urlutil
