package urlutil

import "strings"

// DecodeComponent percent-decodes text. A '%' followed by two hex digits
// decodes to that byte and a '+' decodes to a space; everything else passes
// through unchanged. Malformed escapes, including a truncated trailing '%',
// are left as-is rather than rejected, so decoding never fails.
func DecodeComponent(encoded string) string {
	var b strings.Builder
	b.Grow(len(encoded))
	for i := 0; i < len(encoded); i++ {
		switch c := encoded[i]; {
		case c == '%' && i+2 < len(encoded) && isHex(encoded[i+1]) && isHex(encoded[i+2]):
			b.WriteByte(unhex(encoded[i+1])<<4 | unhex(encoded[i+2]))
			i += 2
		case c == '+':
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// parseQueryParams decodes a raw query string into a key/value map. Empty
// segments produced by runs of '&' are skipped.
func parseQueryParams(query string) map[string]string {
	params := make(map[string]string)
	for query != "" {
		var pair string
		pair, query, _ = strings.Cut(query, "&")
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found {
			params[DecodeComponent(key)] = ""
			continue
		}
		params[DecodeComponent(key)] = DecodeComponent(value)
	}
	return params
}
