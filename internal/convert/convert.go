package convert

import (
	"sheet2tree/internal/header"
	"sheet2tree/internal/table"
	"sheet2tree/internal/tree"
)

// Converter holds a captured table with its parsed header row so the
// conversion can be re-run, e.g. after the empty-value policy changes.
// Every Run recomputes the output from scratch.
type Converter struct {
	table  table.Table
	paths  []header.Path
	keySep string
}

// NewConverter parses the header row of t.
func NewConverter(t table.Table, opts Options) *Converter {
	return &Converter{
		table:  t,
		paths:  header.ParseAll(t.Headers(), opts.Header...),
		keySep: opts.KeySeparator,
	}
}

// Paths returns the parsed header row.
func (c *Converter) Paths() []header.Path {
	return c.paths
}

// Table returns the captured table.
func (c *Converter) Table() table.Table {
	return c.table
}

// Run converts the table under policy. It returns false when the table has
// no data rows.
func (c *Converter) Run(policy tree.EmptyPolicy) ([]*tree.Record, bool) {
	if !c.table.HasData() {
		return nil, false
	}

	if policy == "" {
		policy = tree.DefaultPolicy
	}

	headers := c.table.Headers()
	index := newOrderedIndex()

	for _, row := range c.table.DataRows() {
		rec := c.buildRecord(row, policy)
		index.merge(RowKey(headers, row, c.keySep), rec)
	}

	return index.values(), true
}

// buildRecord writes every column of row into a fresh record.
func (c *Converter) buildRecord(row []string, policy tree.EmptyPolicy) *tree.Record {
	rec := tree.NewRecord()

	for col, path := range c.paths {
		tree.Set(rec, path, table.Cell(row, col), policy)
	}

	return rec
}

// Convert converts t in one call. It returns false when t has fewer than two
// rows (no data rows).
func Convert(t table.Table, opts Options) ([]*tree.Record, bool) {
	return NewConverter(t, opts).Run(opts.policy())
}

// orderedIndex maps row keys to records and remembers first-insertion order.
type orderedIndex struct {
	keys    []string
	records map[string]*tree.Record
}

func newOrderedIndex() *orderedIndex {
	return &orderedIndex{records: map[string]*tree.Record{}}
}

func (idx *orderedIndex) merge(key string, rec *tree.Record) {
	if existing, ok := idx.records[key]; ok {
		idx.records[key] = tree.Merge(existing, rec)
		return
	}

	idx.keys = append(idx.keys, key)
	idx.records[key] = rec
}

func (idx *orderedIndex) values() []*tree.Record {
	out := make([]*tree.Record, 0, len(idx.keys))
	for _, k := range idx.keys {
		out = append(out, idx.records[k])
	}

	return out
}
