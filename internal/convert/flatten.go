package convert

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"sheet2tree/internal/table"
	"sheet2tree/internal/tree"
)

var (
	// ErrNestedList is returned when a list sits inside a list element; the
	// header convention cannot lay such records out one element per row.
	ErrNestedList = errors.New("list inside a list element cannot be flattened")
	// ErrMixedList is returned for a list holding both records and scalars.
	ErrMixedList = errors.New("list mixes objects and values")
	// ErrUnrepresentableKey is returned for a key containing '.', '[' or ']'.
	ErrUnrepresentableKey = errors.New("key cannot be written as a header")
)

// column describes where a header's cells come from.
type column struct {
	header string
	// list holds the keys from the record root to a list; nil for plain fields.
	list []string
	// field holds the keys from the root (plain fields) or from a list element.
	field []string
	// identity columns repeat on every row of a record so rows group again.
	identity bool
	// placeholder marks an empty list seen before any of its element columns.
	placeholder bool
}

// Flatten lays records out as a table using the header convention: nested
// fields become "a.b", lists of values "a[]", lists of objects "a[]b".
// Each record spans as many rows as its longest list; identity columns repeat
// on every row, other plain fields appear on the first row only.
//
// Converting the result under PolicyOmit reproduces records built from
// non-blank cells.
func Flatten(records []*tree.Record) (table.Table, error) {
	f := &flattener{seen: map[string]int{}}

	for i, rec := range records {
		if err := f.walk(rec, nil, nil); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	cols := f.columns()

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.header
	}

	t := table.Table{headers}

	for _, rec := range records {
		n := rowsFor(rec, cols)
		for i := range n {
			row := make([]string, len(cols))
			for j, c := range cols {
				row[j] = c.cell(rec, i)
			}

			t = append(t, row)
		}
	}

	return t, nil
}

type flattener struct {
	cols []column
	seen map[string]int // header -> index in cols
}

func (f *flattener) add(c column) {
	if idx, ok := f.seen[c.header]; ok {
		if f.cols[idx].placeholder && !c.placeholder {
			f.cols[idx] = c
		}

		return
	}

	f.seen[c.header] = len(f.cols)
	f.cols = append(f.cols, c)
}

// columns drops placeholders for lists that turned out to hold objects.
func (f *flattener) columns() []column {
	out := make([]column, 0, len(f.cols))

	for _, c := range f.cols {
		if c.placeholder && f.hasElementColumns(c.list) {
			continue
		}

		c.placeholder = false
		out = append(out, c)
	}

	return out
}

func (f *flattener) hasElementColumns(list []string) bool {
	for _, c := range f.cols {
		if !c.placeholder && len(c.field) > 0 && slices.Equal(c.list, list) {
			return true
		}
	}

	return false
}

// walk collects columns for rec. path holds the keys walked so far (from the
// root, or from the element when list is set).
func (f *flattener) walk(rec *tree.Record, path, list []string) error {
	for key, v := range rec.All() {
		if strings.ContainsAny(key, ".[]") {
			return fmt.Errorf("%w: %q", ErrUnrepresentableKey, key)
		}

		field := append(slices.Clone(path), key)

		switch v.Kind() {
		case tree.KindString, tree.KindNull:
			f.add(column{
				header:   fieldHeader(list, field),
				list:     list,
				field:    field,
				identity: list == nil && len(field) == 1,
			})

		case tree.KindRecord:
			if err := f.walk(v.Record(), field, list); err != nil {
				return err
			}

		case tree.KindList:
			if list != nil {
				return fmt.Errorf("%w: %s", ErrNestedList, fieldHeader(list, field))
			}

			if err := f.walkList(v.List(), field); err != nil {
				return err
			}
		}
	}

	return nil
}

func (f *flattener) walkList(l *tree.List, list []string) error {
	scalars, records := 0, 0

	for _, item := range l.Items() {
		switch item.Kind() {
		case tree.KindRecord:
			records++
		case tree.KindList:
			return fmt.Errorf("%w: %s[]", ErrNestedList, strings.Join(list, "."))
		default:
			scalars++
		}
	}

	if scalars > 0 && records > 0 {
		return fmt.Errorf("%w: %s[]", ErrMixedList, strings.Join(list, "."))
	}

	if records == 0 {
		f.add(column{
			header:      strings.Join(list, ".") + "[]",
			list:        list,
			placeholder: scalars == 0,
		})

		return nil
	}

	for _, item := range l.Items() {
		if err := f.walk(item.Record(), nil, list); err != nil {
			return err
		}
	}

	return nil
}

func fieldHeader(list, field []string) string {
	if list == nil {
		return strings.Join(field, ".")
	}

	return strings.Join(list, ".") + "[]" + strings.Join(field, ".")
}

// rowsFor returns how many rows rec spans: its longest list, at least one.
func rowsFor(rec *tree.Record, cols []column) int {
	n := 1

	for _, c := range cols {
		if c.list != nil {
			n = max(n, lookup(rec, c.list).List().Len())
		}
	}

	return n
}

// cell returns the text for row i of rec.
func (c column) cell(rec *tree.Record, i int) string {
	if c.list == nil {
		if i > 0 && !c.identity {
			return ""
		}

		return text(lookup(rec, c.field))
	}

	l := lookup(rec, c.list).List()
	if i >= l.Len() {
		return ""
	}

	item := l.At(i)
	if len(c.field) == 0 {
		return text(item)
	}

	return text(lookup(item.Record(), c.field))
}

// lookup follows keys through nested records; the zero Value means absent.
func lookup(rec *tree.Record, keys []string) tree.Value {
	var v tree.Value

	for _, k := range keys {
		var ok bool

		v, ok = rec.Get(k)
		if !ok {
			return tree.Value{}
		}

		rec = v.Record()
	}

	return v
}

func text(v tree.Value) string {
	s, _ := v.AsString()
	return s
}
