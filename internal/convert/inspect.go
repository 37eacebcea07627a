package convert

import (
	"fmt"
	"strings"

	"sheet2tree/internal/common"
	"sheet2tree/internal/diagnostic"
	"sheet2tree/internal/header"
	"sheet2tree/internal/match"
	"sheet2tree/internal/table"
)

// Diagnostic codes reported by Inspect.
const (
	CodeNoData          = "NO_DATA"
	CodeEmptyHeader     = "EMPTY_HEADER"
	CodeMalformedHeader = "MALFORMED_HEADER"
	CodeDuplicateHeader = "DUPLICATE_HEADER"
	CodeShapeConflict   = "SHAPE_CONFLICT"
	CodeNoIdentity      = "NO_IDENTITY"
	CodeSimilarHeader   = "SIMILAR_HEADER"
	CodeShortRow        = "SHORT_ROW"
	CodeLongRow         = "LONG_ROW"
)

// Inspect reports findings about t that affect how it converts. It never
// changes the conversion result.
func Inspect(t table.Table, opts Options) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	if !t.HasData() {
		d.AddInfo(CodeNoData, "table has no data rows; conversion yields no result", "")
	}

	if len(t) == 0 {
		return d
	}

	headers := t.Headers()
	paths := header.ParseAll(headers, opts.Header...)

	inspectHeaders(&d, paths)
	inspectShapes(&d, paths)
	inspectSimilar(&d, paths)

	if len(IdentityColumns(headers)) == 0 && len(t.DataRows()) > 1 {
		d.AddWarning(CodeNoIdentity,
			"no column without '.' or '[]'; every row gets the same key and all rows merge into one record", "")
	}

	inspectRows(&d, t)

	return d
}

func inspectHeaders(d *diagnostic.Diagnostics, paths []header.Path) {
	seen := map[string]string{}

	for _, p := range paths {
		if p.IsEmpty() {
			d.AddWarning(CodeEmptyHeader, "header names no field; column is ignored", p.Raw)
			continue
		}

		if reason := malformed(p.Raw); reason != "" {
			d.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityWarning,
				Code:        CodeMalformedHeader,
				Message:     reason + "; read as " + p.String(),
				Header:      p.Raw,
				Suggestions: []string{p.String()},
			})
		}

		// repeated list columns are how a wide row fills several elements
		if p.HasArray() {
			continue
		}

		canonical := p.String()
		if first, ok := seen[canonical]; ok {
			d.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityWarning,
				Code:     CodeDuplicateHeader,
				Message:  fmt.Sprintf("same field as %q; the later column overwrites it", first),
				Header:   p.Raw,
			})

			continue
		}

		seen[canonical] = p.Raw
	}
}

// malformed describes header syntax that the permissive parser had to repair.
func malformed(raw string) string {
	rest := strings.ReplaceAll(raw, "[]", "")

	switch {
	case strings.ContainsAny(rest, "[]"):
		return "stray bracket"
	case strings.Contains(raw, ".."), strings.HasPrefix(raw, "."), strings.HasSuffix(raw, "."):
		return "empty path segment"
	default:
		return ""
	}
}

// inspectShapes reports a key used with two different shapes, e.g. "a" as a
// value and "a.b" making it an object.
func inspectShapes(d *diagnostic.Diagnostics, paths []header.Path) {
	type usage struct {
		shape string
		raw   string
	}

	seen := map[string]usage{}
	reported := map[string]bool{}

	for _, p := range paths {
		for i, seg := range p.Segments {
			key := prefixKey(p.Segments[:i+1])
			shape := shapeName(seg.IsArray, i == len(p.Segments)-1)

			prev, ok := seen[key]
			if !ok {
				seen[key] = usage{shape: shape, raw: p.Raw}
				continue
			}

			if prev.shape == shape || reported[key] {
				continue
			}

			reported[key] = true

			d.AddWarning(CodeShapeConflict,
				fmt.Sprintf("%q is used as %s here but as %s by %q", key, shape, prev.shape, prev.raw),
				p.Raw)
		}
	}
}

func prefixKey(segs []header.Segment) string {
	names := make([]string, len(segs))
	for i, s := range segs {
		names[i] = s.Name
	}

	return strings.Join(names, ".")
}

func shapeName(isArray, isLast bool) string {
	switch {
	case isArray && isLast:
		return "a list of values"
	case isArray:
		return "a list of objects"
	case isLast:
		return "a value"
	default:
		return "an object"
	}
}

func inspectSimilar(d *diagnostic.Diagnostics, paths []header.Path) {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		if !p.IsEmpty() {
			names = append(names, p.String())
		}
	}

	names = common.Unique(names)

	for i, name := range names {
		// short names like "a1"/"a2" are usually deliberate
		if len([]rune(name)) < 4 {
			continue
		}

		// each pair is reported once, on the later header
		for _, c := range match.Nearest(name, names[:i], 1) {
			score := match.LevenshteinNormalized(match.NormalizeHeader(name), match.NormalizeHeader(c.Name))
			msg := fmt.Sprintf("header is %.0f%% similar to another header but creates a separate field", score*100)

			d.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityInfo,
				Code:        CodeSimilarHeader,
				Message:     msg,
				Header:      name,
				Suggestions: []string{c.Name},
			})
		}
	}
}

func inspectRows(d *diagnostic.Diagnostics, t table.Table) {
	width := t.Width()
	short := 0

	for i, row := range t.DataRows() {
		switch {
		case len(row) > width:
			d.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityWarning,
				Code:     CodeLongRow,
				Message:  fmt.Sprintf("%d cells but %d headers; extra cells are ignored", len(row), width),
				Row:      i + 2,
			})
		case len(row) < width:
			short++
		}
	}

	if short > 0 {
		d.AddInfo(CodeShortRow,
			fmt.Sprintf("%d row(s) have fewer cells than headers; missing cells are read as blank", short), "")
	}
}
