package predicate

import (
	"reflect"
	"strings"
)

// Blank reports whether a value counts as empty for the or_empty exemption:
// nil, whitespace-only strings, zero-length slices, maps and arrays, and nil
// pointers (or pointers to blank values). Booleans are never blank, false is
// a legitimate stored value.
func Blank(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return Blank(rv.Elem().Interface())
	}
	return false
}
