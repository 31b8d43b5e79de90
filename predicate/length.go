package predicate

import (
	"reflect"
	"unicode/utf8"
)

// Length applies range-style bounds to the size of a value: characters for
// strings, elements for slices, arrays and maps.
type Length struct {
	Base
	bounds
}

// NewLength constructs a length predicate for attribute. It accepts the same
// above/below/range/inclusive options as the range predicate.
func NewLength(attribute string, opts Options) (*Length, error) {
	l := &Length{Base: newBase(attribute), bounds: newBounds()}
	l.install(l.bindVars, func() any { return "must be " + l.Describe() })
	if err := opts.apply(attribute, l.baseSetters(), l.boundSetters()); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate reports whether the size of value falls inside the active bound.
// Unmeasurable values fail.
func (l *Length) Validate(value any, _ Record) bool {
	n, ok := lengthOf(value)
	if !ok {
		return false
	}
	return l.check(float64(n))
}

// Describe renders the active bound, e.g. "at least 3 characters". A
// boundless length predicate cannot be described and panics.
func (l *Length) Describe() string {
	return l.phrase() + " characters"
}

func lengthOf(value any) (int, bool) {
	if value == nil {
		return 0, true
	}
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}
