package header

import (
	"strings"
)

type parseOptions struct {
	legacyMarker string
}

// Option configures header parsing.
type Option func(*parseOptions)

// WithLegacyMarker sets the prefix that is read as an array marker when it
// starts a header and is followed by a dot. An empty marker disables the alias.
func WithLegacyMarker(marker string) Option {
	return func(o *parseOptions) {
		o.legacyMarker = marker
	}
}

func buildOptions(opts []Option) parseOptions {
	o := parseOptions{legacyMarker: DefaultLegacyMarker}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Parse interprets a header string as a Path.
// Supports: "age", "address.city", "hobby[]", "family[]name", "family[].name",
// and the legacy alias "XX.name" (same as "XX[].name").
//
// Parsing never fails: tokens are cut on '.', '[' and ']' and empty tokens are
// dropped, so stray brackets or doubled dots simply disappear. A token is an
// array segment when its text is directly followed by "[]".
func Parse(raw string, opts ...Option) Path {
	o := buildOptions(opts)

	return Path{
		Raw:      raw,
		Segments: tokenize(rewriteLegacy(raw, o.legacyMarker)),
	}
}

// ParseAll parses every header of a header row.
func ParseAll(headers []string, opts ...Option) []Path {
	result := make([]Path, 0, len(headers))

	for _, h := range headers {
		result = append(result, Parse(h, opts...))
	}

	return result
}

func rewriteLegacy(raw, marker string) string {
	if marker == "" || !strings.HasPrefix(raw, marker+".") {
		return raw
	}

	return marker + "[]" + raw[len(marker):]
}

func tokenize(s string) []Segment {
	var segments []Segment

	start := 0

	for i := 0; i <= len(s); i++ {
		if i < len(s) && !isDelimiter(s[i]) {
			continue
		}

		if i > start {
			segments = append(segments, Segment{
				Name:    s[start:i],
				IsArray: strings.HasPrefix(s[i:], "[]"),
			})
		}

		start = i + 1
	}

	return segments
}

func isDelimiter(b byte) bool {
	return b == '.' || b == '[' || b == ']'
}
