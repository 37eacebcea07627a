package header

import (
	"strings"
)

// DefaultLegacyMarker is the historical array prefix: "XX.name" reads as "XX[].name".
const DefaultLegacyMarker = "XX"

// Segment is one key along a header path.
type Segment struct {
	// Name is the object key.
	Name string

	// IsArray indicates the key holds a list (e.g., "hobby[]").
	IsArray bool
}

// Path is the structural interpretation of one column header.
type Path struct {
	// Raw is the header text as it appeared in the header row.
	Raw string

	Segments []Segment
}

// String returns the canonical form of the path, e.g. "family[].name".
func (p Path) String() string {
	var sb strings.Builder

	for i, seg := range p.Segments {
		if i > 0 {
			sb.WriteString(".")
		}

		sb.WriteString(seg.Name)

		if seg.IsArray {
			sb.WriteString("[]")
		}
	}

	return sb.String()
}

// IsEmpty returns true if the header produced no tokens.
func (p Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// IsIdentity reports whether the column takes part in the row key:
// its raw text contains neither "." nor "[]".
func (p Path) IsIdentity() bool {
	return IsIdentity(p.Raw)
}

// Root returns the first segment's name.
func (p Path) Root() string {
	if len(p.Segments) == 0 {
		return ""
	}

	return p.Segments[0].Name
}

// Last returns the terminal segment. It panics on an empty path.
func (p Path) Last() Segment {
	return p.Segments[len(p.Segments)-1]
}

// IsScalarArray returns true for "name[]": a list of raw values.
func (p Path) IsScalarArray() bool {
	return len(p.Segments) > 0 && p.Last().IsArray
}

// HasArray returns true if any segment is array-typed.
func (p Path) HasArray() bool {
	for _, seg := range p.Segments {
		if seg.IsArray {
			return true
		}
	}

	return false
}

// Equals returns true if two paths have the same segments.
func (p Path) Equals(other Path) bool {
	if len(p.Segments) != len(other.Segments) {
		return false
	}

	for i, seg := range p.Segments {
		if seg != other.Segments[i] {
			return false
		}
	}

	return true
}

// IsIdentity reports whether a raw header contains neither "." nor "[]".
func IsIdentity(raw string) bool {
	return !strings.Contains(raw, ".") && !strings.Contains(raw, "[]")
}
