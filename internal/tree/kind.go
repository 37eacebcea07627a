package tree

//go:generate go tool stringer -type=ValueKind -trimprefix=Kind -output=kind_string.go

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	_ ValueKind = iota // zero value marks an absent entry

	KindString
	KindNull
	KindRecord
	KindList
)

// IsScalar returns true for leaves (strings and nulls).
func (k ValueKind) IsScalar() bool {
	return k == KindString || k == KindNull
}

// IsContainer returns true for records and lists.
func (k ValueKind) IsContainer() bool {
	return k == KindRecord || k == KindList
}
