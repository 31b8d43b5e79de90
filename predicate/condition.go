package predicate

import (
	"fmt"
	"reflect"
)

// Record is the host object under validation. The framework reads nothing
// from it directly; it is handed to callable gates and used to resolve named
// zero-argument condition methods.
type Record = any

// Phase narrows a predicate to a lifecycle stage of the record.
type Phase uint8

const (
	// OnSave applies during both create and update. This is the default.
	OnSave Phase = iota
	// OnCreate applies only when the record is first persisted.
	OnCreate
	// OnUpdate applies only to already-persisted records.
	OnUpdate
)

func (p Phase) String() string {
	switch p {
	case OnSave:
		return "save"
	case OnCreate:
		return "create"
	case OnUpdate:
		return "update"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// valid reports whether p holds one of the three enum values.
func (p Phase) valid() bool {
	return p == OnSave || p == OnCreate || p == OnUpdate
}

// matches reports whether a predicate bound to p should run for a host
// validating at phase. OnSave on either side matches everything; only a
// concrete create/update mismatch gates a predicate off.
func (p Phase) matches(phase Phase) bool {
	return p == OnSave || phase == OnSave || p == phase
}

// parsePhase accepts Phase constants and the host-framework string forms
// ("save"/"both", "create", "update"). Anything else is rejected so a typo in
// a rule declaration fails setup instead of silently widening the phase.
func parsePhase(v any) (Phase, error) {
	switch t := v.(type) {
	case Phase:
		if t.valid() {
			return t, nil
		}
		return 0, fmt.Errorf("%w: %s", ErrUnknownPhase, t)
	case string:
		switch t {
		case "save", "both":
			return OnSave, nil
		case "create":
			return OnCreate, nil
		case "update":
			return OnUpdate, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownPhase, t)
	}
	return 0, fmt.Errorf("%w: %T", ErrUnknownPhase, v)
}

// Condition defers a boolean check against the record until validation time.
// It is either inline logic or the name of a zero-argument method the record
// exposes; both forms are resolved uniformly by Evaluate. The zero value is
// "no gate".
type Condition struct {
	fn     func(Record) bool
	method string
}

// If wraps an inline check into a Condition.
func If(fn func(Record) bool) Condition { return Condition{fn: fn} }

// IfMethod names a method with signature func() bool on the record.
func IfMethod(name string) Condition { return Condition{method: name} }

// IsZero reports whether no gate is configured.
func (c Condition) IsZero() bool { return c.fn == nil && c.method == "" }

// Evaluate runs the gate against rec. A missing or ill-typed condition method
// is a configuration error and is surfaced, never swallowed.
func (c Condition) Evaluate(rec Record) (bool, error) {
	switch {
	case c.fn != nil:
		return c.fn(rec), nil
	case c.method != "":
		if rec == nil {
			return false, fmt.Errorf("%w: %q on nil record", ErrBadCondition, c.method)
		}
		m := reflect.ValueOf(rec).MethodByName(c.method)
		if !m.IsValid() {
			return false, fmt.Errorf("%w: %q", ErrBadCondition, c.method)
		}
		check, ok := m.Interface().(func() bool)
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrBadCondition, c.method)
		}
		return check(), nil
	}
	return true, nil
}

// parseCondition accepts a Condition, an inline func, or a method name.
func parseCondition(v any) (Condition, error) {
	switch t := v.(type) {
	case Condition:
		return t, nil
	case func(Record) bool:
		return If(t), nil
	case string:
		if t == "" {
			return Condition{}, fmt.Errorf("%w: empty method name", ErrInvalidOptionValue)
		}
		return IfMethod(t), nil
	}
	return Condition{}, fmt.Errorf("%w: want predicate.Condition, func(Record) bool or method name, got %T", ErrInvalidOptionValue, v)
}
