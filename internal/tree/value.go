package tree

// Value is a tagged union over the shapes a cell can take in the output tree.
// The zero Value is invalid and stands for an absent entry.
type Value struct {
	kind ValueKind
	str  string
	rec  *Record
	list *List
}

// String returns a string leaf.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Null returns a null leaf.
func Null() Value {
	return Value{kind: KindNull}
}

// RecordValue wraps a record. A nil record yields an empty one.
func RecordValue(r *Record) Value {
	if r == nil {
		r = NewRecord()
	}

	return Value{kind: KindRecord, rec: r}
}

// ListOf returns a list holding the given items.
func ListOf(items ...Value) Value {
	return Value{kind: KindList, list: &List{items: items}}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsValid returns false for the zero Value.
func (v Value) IsValid() bool {
	return v.kind != 0
}

// IsNull returns true for a null leaf.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsString returns the string leaf and true, or "" and false for other variants.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}

	return v.str, true
}

// Record returns the wrapped record, or nil.
func (v Value) Record() *Record {
	if v.kind != KindRecord {
		return nil
	}

	return v.rec
}

// List returns the wrapped list, or nil.
func (v Value) List() *List {
	if v.kind != KindList {
		return nil
	}

	return v.list
}

// Clone returns a deep copy.
func (v Value) Clone() Value {
	switch v.kind {
	case KindRecord:
		return RecordValue(v.rec.Clone())
	case KindList:
		items := make([]Value, len(v.list.items))
		for i, item := range v.list.items {
			items[i] = item.Clone()
		}

		return ListOf(items...)
	default:
		return v
	}
}

// Equal reports deep equality, including key order of records.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindRecord:
		return v.rec.Equal(other.rec)
	case KindList:
		if v.list.Len() != other.list.Len() {
			return false
		}

		for i, item := range v.list.items {
			if !item.Equal(other.list.items[i]) {
				return false
			}
		}

		return true
	default:
		return true
	}
}

// List is an ordered, growable sequence of values.
type List struct {
	items []Value
}

// Len returns the number of items.
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.items)
}

// At returns the item at index i.
func (l *List) At(i int) Value {
	return l.items[i]
}

// Items returns the underlying items. Callers must not modify the slice.
func (l *List) Items() []Value {
	if l == nil {
		return nil
	}

	return l.items
}

// Append adds items at the end.
func (l *List) Append(items ...Value) {
	l.items = append(l.items, items...)
}

// lastRecord returns the last item when it is a record.
func (l *List) lastRecord() *Record {
	if l.Len() == 0 {
		return nil
	}

	return l.items[len(l.items)-1].Record()
}
