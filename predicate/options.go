package predicate

import (
	"fmt"
	"math"
	"sort"
)

// Options is the keyword configuration mapping accepted by every predicate
// constructor. Keys are recognized per predicate; aliases like "message" for
// "error_message" resolve to the same setter.
type Options map[string]any

// setters maps recognized option names to typed assignment functions. Each
// concrete predicate composes the shared base table with its own.
type setters map[string]func(any) error

// apply walks the options in lexical order so construction failures are
// deterministic. An unknown key fails construction outright: a typo in a rule
// declaration must not pass silently.
func (o Options) apply(attribute string, tables ...setters) error {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		set := lookupSetter(tables, k)
		if set == nil {
			return &OptionError{Attribute: attribute, Option: k, Err: ErrUnknownOption}
		}
		if err := set(o[k]); err != nil {
			return &OptionError{Attribute: attribute, Option: k, Err: err}
		}
	}
	return nil
}

func lookupSetter(tables []setters, key string) func(any) error {
	for _, t := range tables {
		if set, ok := t[key]; ok {
			return set
		}
	}
	return nil
}

// baseSetters is the allow-list shared by every predicate.
func (b *Base) baseSetters() setters {
	return setters{
		"error_message": b.SetMessage,
		"message":       b.SetMessage,
		"validate_if":   b.setConditionOption,
		"if":            b.setConditionOption,
		"validate_on":   b.setPhaseOption,
		"on":            b.setPhaseOption,
		"or_empty":      b.setAllowEmptyOption,
	}
}

func (b *Base) setConditionOption(v any) error {
	c, err := parseCondition(v)
	if err != nil {
		return err
	}
	b.SetCondition(c)
	return nil
}

func (b *Base) setPhaseOption(v any) error {
	p, err := parsePhase(v)
	if err != nil {
		return err
	}
	return b.SetPhase(p)
}

func (b *Base) setAllowEmptyOption(v any) error {
	allow, err := asBool(v)
	if err != nil {
		return err
	}
	b.SetAllowEmpty(allow)
	return nil
}

func asBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: want bool, got %T", ErrInvalidOptionValue, v)
	}
	return b, nil
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: want string, got %T", ErrInvalidOptionValue, v)
	}
	return s, nil
}

// asStringSlice accepts a single string, []string, or []any of strings.
func asStringSlice(v any) ([]string, error) {
	switch vv := v.(type) {
	case string:
		return []string{vv}, nil
	case []string:
		return append([]string(nil), vv...), nil
	case []any:
		out := make([]string, len(vv))
		for i, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: want string element, got %T", ErrInvalidOptionValue, e)
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: want string or string slice, got %T", ErrInvalidOptionValue, v)
}

func asFloat(v any) (float64, error) {
	f, ok := Coerce(v)
	if !ok {
		return 0, fmt.Errorf("%w: want a number, got %T", ErrInvalidOptionValue, v)
	}
	return f, nil
}

// asPortList accepts a port number, nil (meaning "no port present"), or a
// slice mixing both. Nil elements map to NoPort.
func asPortList(v any) ([]int, error) {
	switch vv := v.(type) {
	case nil:
		return []int{NoPort}, nil
	case []int:
		return append([]int(nil), vv...), nil
	case []any:
		out := make([]int, 0, len(vv))
		for _, e := range vv {
			if e == nil {
				out = append(out, NoPort)
				continue
			}
			n, ok := portNumber(e)
			if !ok {
				return nil, fmt.Errorf("%w: want port number or nil element, got %v", ErrInvalidOptionValue, e)
			}
			out = append(out, n)
		}
		return out, nil
	}
	if n, ok := portNumber(v); ok {
		return []int{n}, nil
	}
	return nil, fmt.Errorf("%w: want port number, nil, or a slice of those, got %T", ErrInvalidOptionValue, v)
}

func portNumber(v any) (int, bool) {
	f, ok := Coerce(v)
	if !ok || f != math.Trunc(f) || f < 0 || f > 65535 {
		return 0, false
	}
	return int(f), true
}

// asValueSlice accepts any slice (or a single scalar) as a membership set.
func asValueSlice(v any) ([]any, error) {
	switch vv := v.(type) {
	case []any:
		return append([]any(nil), vv...), nil
	case []string:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = e
		}
		return out, nil
	case []int:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = e
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("%w: want a non-nil value set", ErrInvalidOptionValue)
	}
	return []any{v}, nil
}
