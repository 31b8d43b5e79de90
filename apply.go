package semattr

import (
	"github.com/dmitrymomot/semattr/predicate"
)

// Run executes one predicate against one value the way a host framework
// would: gates first, then normalization, then the empty-value exemption,
// then the check itself. The normalized value is returned so callers can
// store it. ok reports the net outcome; a gated-off or exempt check counts
// as success. err reports configuration trouble such as a broken method
// gate, never a validation failure.
func Run(p predicate.Predicate, value any, rec predicate.Record, phase predicate.Phase) (normalized any, ok bool, err error) {
	applies, err := p.Applies(rec, phase)
	if err != nil {
		return value, false, err
	}
	if !applies {
		return value, true, nil
	}
	normalized = p.Normalize(value)
	if p.ExemptsEmpty(normalized) {
		return normalized, true, nil
	}
	return normalized, p.Validate(normalized, rec), nil
}

// Apply runs every predicate against the attribute values of one record and
// collects the failure messages. values maps attribute names to raw input;
// a predicate whose attribute is absent from the map sees nil. The returned
// Errors is empty on success. A non-nil error means a predicate is
// misconfigured and validation could not complete.
func Apply(values map[string]any, rec predicate.Record, phase predicate.Phase, preds ...predicate.Predicate) (Errors, error) {
	errs := NewErrors()
	for _, p := range preds {
		_, ok, err := Run(p, values[p.Attribute()], rec, phase)
		if err != nil {
			return nil, err
		}
		if !ok {
			errs.Add(p.Attribute(), p.Error())
		}
	}
	return errs, nil
}
