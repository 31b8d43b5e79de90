package predicate

import (
	"math"
	"strconv"
	"strings"
)

// Coerce converts value to float64 for numeric checks. Accepted: Go integer,
// unsigned and float kinds, and decimal strings (surrounding whitespace
// trimmed). Booleans never coerce, and neither do NaN or infinities: "1" is a
// number, true is not.
func Coerce(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	}
	return 0, false
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Number checks that a value is numeric: a Go number or a decimal string.
type Number struct {
	Base
}

// NewNumber constructs a numeric predicate for attribute.
func NewNumber(attribute string, opts Options) (*Number, error) {
	n := &Number{Base: newBase(attribute)}
	n.install(nil, func() any { return Key("not_a_number") })
	if err := opts.apply(attribute, n.baseSetters()); err != nil {
		return nil, err
	}
	return n, nil
}

// Validate reports whether value coerces to a number.
func (n *Number) Validate(value any, _ Record) bool {
	_, ok := Coerce(value)
	return ok
}
