package store

// Typed accessors for document fields. Documents coming back from the
// jsonb column decode numbers as float64 and lists as []any, while the
// in-memory store hands back the validated Go values unchanged; these
// helpers absorb both representations.

// String returns the string field, or fallback when absent or not a string.
func String(d Doc, field, fallback string) string {
	if s, ok := d[field].(string); ok {
		return s
	}
	return fallback
}

// Bool returns the boolean field, or fallback when absent.
func Bool(d Doc, field string, fallback bool) bool {
	if b, ok := d[field].(bool); ok {
		return b
	}
	return fallback
}

// Int returns the integer field, or fallback when absent.
func Int(d Doc, field string, fallback int) int {
	switch v := d[field].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}

// StringList returns the list-of-strings field; absent yields an empty list.
func StringList(d Doc, field string) []string {
	switch v := d[field].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}
