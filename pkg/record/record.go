// Package record provides schema-free access to nested strain records.
//
// BacDive returns one JSON document per strain. The documents share a family
// of shapes but no fixed schema: a section may be missing entirely, hold a
// single keyed entry, or hold a list of keyed entries for the same trait.
// This package gives the extraction layer two primitives -- safe navigation
// and shape normalization -- so that every extractor handles the
// flat-vs-list ambiguity the same way instead of re-implementing the check.
//
// Records are read-only; nothing in this package mutates them.
package record

// Record is one strain record as decoded from JSON.
type Record map[string]any

// Navigate walks the named segments of a path, one keyed level at a time.
// It returns false as soon as a segment is missing or the current level is
// not a keyed structure. A missing path is a normal result, not an error.
func Navigate(node any, path ...string) (any, bool) {
	cur := node
	for _, seg := range path {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		next, ok := m[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Entries reduces a sub-structure to a uniform sequence of keyed entries.
// The field argument is the target field an extractor is after; its direct
// presence on a keyed structure marks that structure as a single entry
// rather than a container.
//
// Rules, in priority order:
//   - nil (absent) yields nil
//   - a keyed structure holding field directly is a one-entry sequence
//   - a sequence whose every element is a keyed structure is kept as is
//   - any other shape (scalar, mixed sequence, keyed structure without
//     the field) is treated as absent
func Entries(node any, field string) []map[string]any {
	if node == nil {
		return nil
	}

	if m, ok := asMap(node); ok {
		if _, ok := m[field]; ok {
			return []map[string]any{m}
		}
		return nil
	}

	// Already normalized sequences pass through unchanged.
	if seq, ok := node.([]map[string]any); ok {
		return seq
	}

	seq, ok := node.([]any)
	if !ok {
		return nil
	}
	res := make([]map[string]any, 0, len(seq))
	for _, el := range seq {
		m, ok := asMap(el)
		if !ok {
			return nil
		}
		res = append(res, m)
	}
	return res
}

func asMap(node any) (map[string]any, bool) {
	switch v := node.(type) {
	case Record:
		return map[string]any(v), true
	case map[string]any:
		return v, true
	default:
		return nil, false
	}
}
