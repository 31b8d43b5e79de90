package predicate

import (
	"fmt"
	"strconv"
)

// Interval is a numeric interval with an inclusive or exclusive end.
// Through builds the closed form, To the half-open one.
type Interval struct {
	First       float64
	Last        float64
	ExcludesEnd bool
}

// Through returns the closed interval [first, last].
func Through(first, last float64) Interval {
	return Interval{First: first, Last: last}
}

// To returns the half-open interval [first, last).
func To(first, last float64) Interval {
	return Interval{First: first, Last: last, ExcludesEnd: true}
}

// Contains implements membership with the interval's own end semantics.
func (iv Interval) Contains(v float64) bool {
	if v < iv.First {
		return false
	}
	if iv.ExcludesEnd {
		return v < iv.Last
	}
	return v <= iv.Last
}

// bounds carries the above/below/interval configuration shared by the range
// and length predicates. The interval wins over above, above over below.
type bounds struct {
	above     *float64
	below     *float64
	rng       *Interval
	inclusive bool
}

func newBounds() bounds { return bounds{inclusive: true} }

func (bo *bounds) boundSetters() setters {
	return setters{
		"above":     bo.setAbove,
		"below":     bo.setBelow,
		"range":     bo.setRange,
		"inclusive": bo.setInclusive,
	}
}

func (bo *bounds) setAbove(v any) error {
	f, err := asFloat(v)
	if err != nil {
		return err
	}
	bo.above = &f
	return nil
}

func (bo *bounds) setBelow(v any) error {
	f, err := asFloat(v)
	if err != nil {
		return err
	}
	bo.below = &f
	return nil
}

func (bo *bounds) setRange(v any) error {
	switch vv := v.(type) {
	case Interval:
		bo.rng = &vv
	case *Interval:
		if vv == nil {
			return fmt.Errorf("%w: nil interval", ErrInvalidOptionValue)
		}
		iv := *vv
		bo.rng = &iv
	default:
		return fmt.Errorf("%w: want predicate.Interval, got %T", ErrInvalidOptionValue, v)
	}
	return nil
}

func (bo *bounds) setInclusive(v any) error {
	inc, err := asBool(v)
	if err != nil {
		return err
	}
	bo.inclusive = inc
	return nil
}

// unbounded reports that no bound has been configured; validation then
// trivially passes and describing the bound is a contract violation.
func (bo *bounds) unbounded() bool {
	return bo.rng == nil && bo.above == nil && bo.below == nil
}

func (bo *bounds) check(v float64) bool {
	switch {
	case bo.rng != nil:
		return bo.rng.Contains(v)
	case bo.above != nil:
		if bo.inclusive {
			return v >= *bo.above
		}
		return v > *bo.above
	case bo.below != nil:
		if bo.inclusive {
			return v <= *bo.below
		}
		return v < *bo.below
	}
	return true
}

// phrase renders the active bound as an English fragment for message
// templates.
func (bo *bounds) phrase() string {
	switch {
	case bo.rng != nil:
		joiner := "through"
		if bo.rng.ExcludesEnd {
			joiner = "to"
		}
		return "from " + fnum(bo.rng.First) + " " + joiner + " " + fnum(bo.rng.Last)
	case bo.above != nil:
		if bo.inclusive {
			return "at least " + fnum(*bo.above)
		}
		return "more than " + fnum(*bo.above)
	case bo.below != nil:
		if bo.inclusive {
			return "no more than " + fnum(*bo.below)
		}
		return "less than " + fnum(*bo.below)
	}
	panic("semattr: undetermined range")
}

func (bo *bounds) bindVars() map[string]any {
	switch {
	case bo.rng != nil:
		return map[string]any{"first": fnum(bo.rng.First), "last": fnum(bo.rng.Last)}
	case bo.above != nil:
		return map[string]any{"count": fnum(*bo.above)}
	case bo.below != nil:
		return map[string]any{"count": fnum(*bo.below)}
	}
	return nil
}

// fnum renders a bound without trailing zeros: 3, not 3.000000.
func fnum(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// Range checks that a value is numeric and falls within a configured bound:
// an interval, a lower bound, or an upper bound. With no bound configured it
// degenerates to the numeric check alone.
type Range struct {
	Number
	bounds
}

// NewRange constructs a range predicate for attribute.
func NewRange(attribute string, opts Options) (*Range, error) {
	r := &Range{Number: Number{Base: newBase(attribute)}, bounds: newBounds()}
	r.install(r.bindVars, func() any { return "must be " + r.Describe() })
	if err := opts.apply(attribute, r.baseSetters(), r.boundSetters()); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate reports whether value is numeric and inside the active bound.
func (r *Range) Validate(value any, _ Record) bool {
	f, ok := Coerce(value)
	if !ok {
		return false
	}
	return r.check(f)
}

// Describe renders the active bound as an English phrase, e.g. "a number
// from 1 through 10" or "at least 3". Calling it with no bound configured
// panics: a boundless range cannot be described and signals misconfiguration.
func (r *Range) Describe() string {
	if r.rng != nil {
		return "a number " + r.phrase()
	}
	return r.phrase()
}
