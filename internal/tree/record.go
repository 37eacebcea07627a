package tree

import "iter"

// Record is an insertion-ordered map from keys to values.
type Record struct {
	entries []entry
	index   map[string]int // key -> position in entries
}

type entry struct {
	key   string
	value Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{
		index: map[string]int{},
	}
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return len(r.entries)
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}

	idx, ok := r.index[key]
	if !ok {
		return Value{}, false
	}

	return r.entries[idx].value, true
}

// Has returns true if key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Set stores v under key. An existing key keeps its position.
func (r *Record) Set(key string, v Value) {
	if idx, ok := r.index[key]; ok {
		r.entries[idx].value = v
		return
	}

	r.index[key] = len(r.entries)
	r.entries = append(r.entries, entry{key: key, value: v})
}

// Delete removes key if present.
func (r *Record) Delete(key string) {
	idx, ok := r.index[key]
	if !ok {
		return
	}

	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)

	delete(r.index, key)

	for i := idx; i < len(r.entries); i++ {
		r.index[r.entries[i].key] = i
	}
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	for _, e := range r.entriesOrNil() {
		keys = append(keys, e.key)
	}

	return keys
}

// All iterates over entries in insertion order.
func (r *Record) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, e := range r.entriesOrNil() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
func (r *Record) Clone() *Record {
	out := NewRecord()
	for _, e := range r.entriesOrNil() {
		out.Set(e.key, e.value.Clone())
	}

	return out
}

// Equal reports deep equality, including key order.
func (r *Record) Equal(other *Record) bool {
	if r.Len() != other.Len() {
		return false
	}

	for i, e := range r.entriesOrNil() {
		o := other.entries[i]
		if e.key != o.key || !e.value.Equal(o.value) {
			return false
		}
	}

	return true
}

func (r *Record) entriesOrNil() []entry {
	if r == nil {
		return nil
	}

	return r.entries
}

// ensureRecord returns the record under key, replacing any other shape.
func (r *Record) ensureRecord(key string) *Record {
	if v, ok := r.Get(key); ok && v.Kind() == KindRecord {
		return v.rec
	}

	child := NewRecord()
	r.Set(key, RecordValue(child))

	return child
}

// ensureList returns the list under key, replacing any other shape.
func (r *Record) ensureList(key string) *List {
	if v, ok := r.Get(key); ok && v.Kind() == KindList {
		return v.list
	}

	v := ListOf()
	r.Set(key, v)

	return v.list
}
