package tree

import (
	"sheet2tree/internal/header"
)

// Set writes one cell value into rec following path.
//
// Object segments create or descend into nested records. A non-terminal array
// segment ("family[]name") descends into the last element of its list, or
// starts a new element when the list is empty or the remaining path is already
// populated on that element; a row can therefore fill several fields of one
// element before the next element begins. A terminal array segment
// ("hobby[]") appends the value to a list of strings.
//
// A blank value follows policy. Under PolicyOmit nothing is written, not even
// the containers along the path. A blank cell in a "name[]" column adds no
// element but still makes sure the list exists.
func Set(rec *Record, path header.Path, value string, policy EmptyPolicy) {
	if path.IsEmpty() {
		return
	}

	blank, write := String(value), true
	if value == "" {
		blank, write = policy.blank()
	}

	if !write {
		return
	}

	segs := path.Segments
	cur := rec

	for i, seg := range segs[:len(segs)-1] {
		if !seg.IsArray {
			cur = cur.ensureRecord(seg.Name)
			continue
		}

		list := cur.ensureList(seg.Name)

		elem := list.lastRecord()
		if elem == nil || occupied(elem, segs[i+1:]) {
			elem = NewRecord()
			list.Append(RecordValue(elem))
		}

		cur = elem
	}

	last := path.Last()
	if !last.IsArray {
		cur.Set(last.Name, blank)
		return
	}

	list := cur.ensureList(last.Name)
	if value != "" {
		list.Append(blank)
	}
}

// occupied reports whether writing rest into r would overwrite a field that
// is already set. Array segments never collide: the list grows instead.
func occupied(r *Record, rest []header.Segment) bool {
	for i, seg := range rest {
		if seg.IsArray {
			return false
		}

		v, ok := r.Get(seg.Name)
		if !ok {
			return false
		}

		if i == len(rest)-1 {
			return true
		}

		if v.Kind() != KindRecord {
			return true
		}

		r = v.rec
	}

	return false
}
