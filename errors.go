package semattr

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Errors collects validation failures per attribute. It is based on
// url.Values to leverage built-in string slice handling.
type Errors url.Values

// NewErrors creates an empty collection.
func NewErrors() Errors {
	return make(Errors)
}

// Add appends a failure message for an attribute.
func (e Errors) Add(attribute, message string) {
	url.Values(e).Add(attribute, message)
}

// Get returns the first failure message for an attribute.
func (e Errors) Get(attribute string) string {
	return url.Values(e).Get(attribute)
}

// All returns every failure message recorded for an attribute.
func (e Errors) All(attribute string) []string {
	return e[attribute]
}

// Has checks if an attribute has any failures.
func (e Errors) Has(attribute string) bool {
	return len(e[attribute]) > 0
}

// Fields lists the attributes with failures in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// IsEmpty reports whether no failures were collected.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Error implements the error interface, summarizing the first message per
// attribute in sorted order.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Get(f)))
	}
	return "validation error: " + strings.Join(parts, ", ")
}

// AsErrors extracts an Errors collection from err, unwrapping as needed.
// It returns nil when err carries no validation failures.
func AsErrors(err error) Errors {
	if err == nil {
		return nil
	}
	var errs Errors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}
