package predicate

import (
	"fmt"
	"reflect"
	"strings"
)

// Enumeration checks membership in a configured value set. Members compare
// by interface equality, with a numeric fallback so 5 matches 5.0.
type Enumeration struct {
	Base
	values []any
}

// NewEnumeration constructs a membership predicate for attribute. The value
// set is configured through the "in" option.
func NewEnumeration(attribute string, opts Options) (*Enumeration, error) {
	e := &Enumeration{Base: newBase(attribute)}
	e.install(e.errorBinds, func() any { return Key("inclusion") })
	if err := opts.apply(attribute, e.baseSetters(), setters{"in": e.setValues}); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate reports whether value is a member of the configured set.
func (e *Enumeration) Validate(value any, _ Record) bool {
	return memberOf(e.values, value)
}

func (e *Enumeration) setValues(v any) error {
	vs, err := asValueSlice(v)
	if err != nil {
		return err
	}
	e.values = vs
	return nil
}

func (e *Enumeration) errorBinds() map[string]any {
	return map[string]any{"values": joinValues(e.values)}
}

// Exclusion checks anti-membership: the value must not appear in the
// configured set. The set is configured through the "not_in" option.
type Exclusion struct {
	Base
	values []any
}

// NewExclusion constructs an anti-membership predicate for attribute.
func NewExclusion(attribute string, opts Options) (*Exclusion, error) {
	e := &Exclusion{Base: newBase(attribute)}
	e.install(e.errorBinds, func() any { return Key("exclusion") })
	if err := opts.apply(attribute, e.baseSetters(), setters{"not_in": e.setValues}); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate reports whether value stays outside the configured set.
func (e *Exclusion) Validate(value any, _ Record) bool {
	return !memberOf(e.values, value)
}

func (e *Exclusion) setValues(v any) error {
	vs, err := asValueSlice(v)
	if err != nil {
		return err
	}
	e.values = vs
	return nil
}

func (e *Exclusion) errorBinds() map[string]any {
	return map[string]any{"values": joinValues(e.values)}
}

func memberOf(set []any, value any) bool {
	for _, member := range set {
		if reflect.DeepEqual(member, value) {
			return true
		}
		mf, mok := Coerce(member)
		vf, vok := Coerce(value)
		if mok && vok && mf == vf {
			return true
		}
	}
	return false
}

func joinValues(set []any) string {
	parts := make([]string, len(set))
	for i, v := range set {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
