package predicate

import (
	"strings"

	"github.com/google/uuid"
)

// UUID checks the canonical 36-character UUID form. A uuid.UUID value passes
// when non-nil.
type UUID struct {
	Base
}

// NewUUID constructs a UUID predicate for attribute.
func NewUUID(attribute string, opts Options) (*UUID, error) {
	u := &UUID{Base: newBase(attribute)}
	u.install(nil, func() any { return Key("uuid") })
	if err := opts.apply(attribute, u.baseSetters()); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate reports whether value is a canonical UUID. Length and hyphen
// positions are checked before the full parse.
func (u *UUID) Validate(value any, _ Record) bool {
	switch v := value.(type) {
	case uuid.UUID:
		return v != uuid.Nil
	case string:
		if len(v) != 36 {
			return false
		}
		if v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return false
		}
		_, err := uuid.Parse(v)
		return err == nil
	}
	return false
}

// Normalize lowercases canonical UUID strings; anything else passes through
// unchanged.
func (u *UUID) Normalize(value any) any {
	s, ok := value.(string)
	if !ok || len(s) != 36 {
		return value
	}
	if _, err := uuid.Parse(s); err != nil {
		return value
	}
	return strings.ToLower(s)
}
