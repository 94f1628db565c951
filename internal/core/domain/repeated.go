package domain

import "fmt"

// RepeatedField is the generic ordered container behind every repeated
// person field. It operates directly on the wrapper's backing model so
// mutations are reflected in the record written back to the server,
// and entry order is preserved across round-trips.
//
// W is the typed view over one entry (EmailAddress, PhoneNumber, ...).
type RepeatedField[W any] struct {
	model RawRecord
	key   string
	wrap  func(map[string]any) W
}

func newRepeatedField[W any](model RawRecord, key string, wrap func(map[string]any) W) RepeatedField[W] {
	return RepeatedField[W]{model: model, key: key, wrap: wrap}
}

// parts returns the raw entry list, nil when the field is empty.
func (r *RepeatedField[W]) parts() []any {
	return recordList(r.model, r.key)
}

// Len returns the number of entries.
func (r *RepeatedField[W]) Len() int {
	return len(r.parts())
}

// All returns typed views over all entries in order. The views share
// memory with the container; mutating a view mutates the record.
func (r *RepeatedField[W]) All() []W {
	parts := r.parts()
	out := make([]W, 0, len(parts))
	for _, p := range parts {
		if m, ok := p.(map[string]any); ok {
			out = append(out, r.wrap(m))
		}
	}
	return out
}

// First returns the first entry, if any.
func (r *RepeatedField[W]) First() (W, bool) {
	all := r.All()
	if len(all) == 0 {
		var zero W
		return zero, false
	}
	return all[0], true
}

// appendPart appends a raw entry, creating the list in the backing
// model on first use. An empty repeated field may be missing from the
// raw record entirely, so appending has to materialise the key.
func (r *RepeatedField[W]) appendPart(part map[string]any) W {
	r.model[r.key] = append(r.parts(), part)
	return r.wrap(part)
}

// RemoveAt removes the entry at the given index.
func (r *RepeatedField[W]) RemoveAt(index int) error {
	parts := r.parts()
	if index < 0 || index >= len(parts) {
		return fmt.Errorf("index %d out of range for %d entries", index, len(parts))
	}
	r.model[r.key] = append(parts[:index], parts[index+1:]...)
	return nil
}

// removeIndices removes the entries at the given ascending indices.
func (r *RepeatedField[W]) removeIndices(indices []int) {
	if len(indices) == 0 {
		return
	}
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		drop[i] = struct{}{}
	}
	parts := r.parts()
	kept := make([]any, 0, len(parts)-len(indices))
	for i, p := range parts {
		if _, gone := drop[i]; !gone {
			kept = append(kept, p)
		}
	}
	r.model[r.key] = kept
}

// matchIndices returns the indices of all entries matching the
// predicate, in order.
func (r *RepeatedField[W]) matchIndices(pred func(W) bool) []int {
	var matched []int
	for i, w := range r.All() {
		if pred(w) {
			matched = append(matched, i)
		}
	}
	return matched
}

// RemoveFunc removes every entry matching the predicate and returns
// how many were removed.
func (r *RepeatedField[W]) RemoveFunc(pred func(W) bool) int {
	matched := r.matchIndices(pred)
	r.removeIndices(matched)
	return len(matched)
}

// RemoveFirstFunc removes the first entry matching the predicate.
func (r *RepeatedField[W]) RemoveFirstFunc(pred func(W) bool) bool {
	matched := r.matchIndices(pred)
	if len(matched) == 0 {
		return false
	}
	r.removeIndices(matched[:1])
	return true
}

// KeepFirstFunc removes all entries matching the predicate except the
// first match. Useful for deduplicating values while keeping the
// preferred entry.
func (r *RepeatedField[W]) KeepFirstFunc(pred func(W) bool) int {
	matched := r.matchIndices(pred)
	if len(matched) <= 1 {
		return 0
	}
	r.removeIndices(matched[1:])
	return len(matched) - 1
}

// RemoveAll empties the container. The field stays present in the
// mask: an emptied field is written back as empty, not left unknown.
func (r *RepeatedField[W]) RemoveAll() {
	r.model[r.key] = []any{}
}
