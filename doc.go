// Package semattr is a pluggable attribute-validation framework built around
// predicates: single, reusable validation rules bound to one attribute of a
// host object.
//
// The predicate subpackage defines the core contract (configuration options,
// conditional gating, lifecycle phases, empty-value exemption, symbolic
// error messages) and the concrete rules: Range, URL, Required, Email,
// Phone, Length, Enumeration, Exclusion, UUID and Number. The messages
// subpackage resolves symbolic message keys through per-language catalogs.
// This root package supplies the host-side glue: running predicates through
// the normalize/exempt/validate pipeline and collecting failures per
// attribute.
//
// Basic Usage:
//
//	age := predicate.Must(predicate.NewRange("age", predicate.Options{
//	    "range": predicate.Through(18, 120),
//	}))
//	website := predicate.Must(predicate.NewURL("website", predicate.Options{
//	    "or_empty": true,
//	}))
//
//	errs, err := semattr.Apply(map[string]any{
//	    "age":     "17",
//	    "website": "example.com",
//	}, user, predicate.OnCreate, age, website)
//	if err != nil {
//	    // a misconfigured predicate, not a validation failure
//	    log.Fatal(err)
//	}
//	if !errs.IsEmpty() {
//	    fmt.Println(errs.Get("age")) // "must be a number from 18 through 120"
//	}
//
// Validation failures are ordinary outcomes reported through Errors;
// configuration mistakes (unknown options, broken conditional gates) surface
// as Go errors and are never demoted to user-facing messages.
package semattr
