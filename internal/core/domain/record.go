package domain

// RawRecord is the mapping-shaped representation of a resource as
// exchanged with the API transport. Keys are field identifiers;
// repeated fields are ordered lists of parts, each part again
// mapping-shaped. Values are restricted to what JSON decoding
// produces: string, float64, bool, []any, map[string]any, nil.
type RawRecord = map[string]any

// copyValue deep-copies a raw record value so wrappers never alias
// memory handed in by or handed out to the transport.
func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = copyValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}

// copyRecord deep-copies a whole raw record.
func copyRecord(r RawRecord) RawRecord {
	if r == nil {
		return nil
	}
	return copyValue(map[string]any(r)).(map[string]any)
}

// recordString reads a string-valued key from a record part, returning
// "" when the key is absent or not a string.
func recordString(part map[string]any, key string) string {
	if part == nil {
		return ""
	}
	s, _ := part[key].(string)
	return s
}

// recordList reads a list-valued key, returning nil when absent.
func recordList(r RawRecord, key string) []any {
	if r == nil {
		return nil
	}
	l, _ := r[key].([]any)
	return l
}
