// Package predicate provides the core contract of the semattr validation
// framework: a predicate is a single, reusable validation rule bound to one
// attribute of a host object (the "record").
//
// Every predicate carries the same base configuration: a failure message
// (literal or a symbolic lookup key), an optional conditional gate, a
// lifecycle phase, and an empty-value exemption. On top of that sit three
// extension points: Validate checks a value, Normalize canonicalizes raw
// human input before validation or storage, and ToHuman renders a stored
// value for display.
//
// # Construction
//
// Predicates are constructed once per declared rule from an attribute name
// and an options mapping. Option keys are checked against an explicit
// allow-list; an unknown key or an ill-typed value fails construction with a
// *OptionError rather than being silently ignored:
//
//	price, err := predicate.NewRange("price", predicate.Options{
//	    "above":     0,
//	    "inclusive": false,
//	    "on":        "create",
//	})
//	if err != nil {
//	    // a typo or an unsupported option
//	}
//
// The Must helper panics on construction errors for declaration-site use:
//
//	website := predicate.Must(predicate.NewURL("website", predicate.Options{
//	    "schemes": []string{"https"},
//	}))
//
// # Validation
//
// Validate reports failure as a plain boolean; the user-facing message is
// read separately through Error. Validation failures are expected outcomes,
// never Go errors. Configuration mistakes, by contrast, surface immediately:
// at construction, or from Applies when a conditional gate names a method the
// record does not expose.
//
//	if !website.Validate(value, record) {
//	    msg := website.Error() // "must be a valid URL"
//	}
//
// # Messages
//
// A message is either a literal string, returned as-is, or a Key resolved
// through the configured Resolver under the fixed Scope namespace together
// with the predicate's interpolation binds. The package default resolver is
// the builtin English catalog from the messages package; SetResolver swaps in
// another backend. A pre-rendered full message, when set, bypasses resolution
// entirely.
//
// # Concurrency
//
// Predicates are configured during setup and are then safe to share across
// goroutines: Validate, Normalize and ToHuman read only the predicate's
// configuration and their arguments. Mutating configuration concurrently
// with validation is a usage-contract violation, not something the package
// guards against.
package predicate
