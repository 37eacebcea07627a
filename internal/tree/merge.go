package tree

// Merge folds next into acc and returns acc. Both records come from rows that
// share a row key; next is consumed and must not be used afterwards.
//
// For every key of next, by the variant already held in acc:
//   - List: a list is concatenated, any other value is appended as one item
//   - Record: a record is merged recursively, any other value is dropped
//   - absent: next's value is adopted
//   - String or Null: the first-seen value wins
//
// Concatenation makes Merge associative for list fields.
func Merge(acc, next *Record) *Record {
	if acc == nil {
		return next
	}

	for key, nv := range next.All() {
		av, ok := acc.Get(key)
		if !ok {
			acc.Set(key, nv)
			continue
		}

		switch av.Kind() {
		case KindList:
			if nv.Kind() == KindList {
				av.list.Append(nv.list.items...)
			} else {
				av.list.Append(nv)
			}
		case KindRecord:
			if nv.Kind() == KindRecord {
				Merge(av.rec, nv.rec)
			}
		case KindString, KindNull:
			// first seen wins
		}
	}

	return acc
}
