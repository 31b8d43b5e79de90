package predicate

import (
	"errors"
	"fmt"
)

// Configuration mistakes surface as errors at construction or gate-evaluation
// time; they are never demoted to validation failures.
var (
	// ErrUnknownOption is returned when an options mapping carries a key no
	// setter is registered for.
	ErrUnknownOption = errors.New("unknown option")

	// ErrInvalidOptionValue is returned when an option value has the wrong
	// type or an out-of-enum value.
	ErrInvalidOptionValue = errors.New("invalid option value")

	// ErrUnknownPhase is returned when validate_on is assigned anything other
	// than the three lifecycle phases.
	ErrUnknownPhase = errors.New("unknown validation phase")

	// ErrBadCondition is returned when a conditional gate names a method the
	// record does not expose as a zero-argument func() bool.
	ErrBadCondition = errors.New("condition method is missing or not a func() bool")
)

// OptionError reports which option of which predicate was rejected.
type OptionError struct {
	Attribute string
	Option    string
	Err       error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("predicate for %q: option %q: %v", e.Attribute, e.Option, e.Err)
}

func (e *OptionError) Unwrap() error { return e.Err }

// Must panics when the construction of a predicate failed. It enables
// declaration-site rule setup where a configuration error is a programming
// error:
//
//	age := predicate.Must(predicate.NewRange("age", predicate.Options{"above": 18}))
func Must[P Predicate](p P, err error) P {
	if err != nil {
		panic(err)
	}
	return p
}
