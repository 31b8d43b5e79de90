package predicate

// Required rejects blank values: nil, whitespace-only strings, and empty
// collections. Construction flips the empty-value exemption off, since an
// exemption for empties would defeat the rule.
type Required struct {
	Base
}

// NewRequired constructs a presence predicate for attribute.
func NewRequired(attribute string, opts Options) (*Required, error) {
	r := &Required{Base: newBase(attribute)}
	r.SetAllowEmpty(false)
	r.install(nil, func() any { return Key("blank") })
	if err := opts.apply(attribute, r.baseSetters()); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate reports whether value is present.
func (r *Required) Validate(value any, _ Record) bool {
	return !Blank(value)
}
