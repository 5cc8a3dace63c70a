package docstore

import "strings"

// Filter is a predicate evaluated against a document's decoded field map.
// Passing several filters to Find combines them with AND; Or combines
// sub-filters with OR. Together with Eq, In, IContains, and Exists this is
// the complete predicate surface the application needs.
type Filter interface {
	matches(fields map[string]any) bool
}

type filterFunc func(fields map[string]any) bool

func (f filterFunc) matches(fields map[string]any) bool { return f(fields) }

// Eq matches documents whose field equals value. A nil value matches fields
// that are stored as JSON null or absent entirely.
func Eq(field string, value any) Filter {
	return filterFunc(func(fields map[string]any) bool {
		got, ok := fields[field]
		if value == nil {
			return !ok || got == nil
		}
		if !ok {
			return false
		}
		return eqValue(got, value)
	})
}

// In matches documents whose field equals any of the given values.
func In(field string, values ...any) Filter {
	return filterFunc(func(fields map[string]any) bool {
		got, ok := fields[field]
		if !ok {
			return false
		}
		for _, v := range values {
			if eqValue(got, v) {
				return true
			}
		}
		return false
	})
}

// IContains matches documents whose string field contains substr,
// case-insensitively.
func IContains(field, substr string) Filter {
	needle := strings.ToLower(substr)
	return filterFunc(func(fields map[string]any) bool {
		got, ok := fields[field].(string)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(got), needle)
	})
}

// Exists matches documents that carry the field with a non-null value.
func Exists(field string) Filter {
	return filterFunc(func(fields map[string]any) bool {
		v, ok := fields[field]
		return ok && v != nil
	})
}

// Or matches documents satisfying at least one of the given filters.
func Or(filters ...Filter) Filter {
	return filterFunc(func(fields map[string]any) bool {
		for _, f := range filters {
			if f.matches(fields) {
				return true
			}
		}
		return false
	})
}

// eqValue compares a decoded JSON value against a caller-supplied one.
// JSON numbers always decode as float64, so numeric comparisons normalize
// both sides first.
func eqValue(got, want any) bool {
	if gn, ok := asFloat(got); ok {
		if wn, ok := asFloat(want); ok {
			return gn == wn
		}
		return false
	}
	switch w := want.(type) {
	case string:
		g, ok := got.(string)
		return ok && g == w
	case bool:
		g, ok := got.(bool)
		return ok && g == w
	default:
		return got == want
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
