package predicate

import (
	"net/mail"
	"regexp"
	"strings"
)

var consecutiveDotsRe = regexp.MustCompile(`\.{2,}`)

// Email checks RFC 5322 address syntax plus the pragmatic rules typical web
// signups expect: a single @, a dotted domain, no empty labels.
type Email struct {
	Base
}

// NewEmail constructs an email predicate for attribute.
func NewEmail(attribute string, opts Options) (*Email, error) {
	e := &Email{Base: newBase(attribute)}
	e.install(nil, func() any { return Key("email") })
	if err := opts.apply(attribute, e.baseSetters()); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate reports whether value is a well-formed email address.
func (e *Email) Validate(value any, _ Record) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}
	local, domain := parts[0], parts[1]
	if local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// Normalize lowercases and trims the address and consolidates consecutive
// dots in the local part. Input without exactly one @ passes through with
// only the trim and lowercase applied.
func (e *Email) Normalize(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	s = strings.ToLower(strings.TrimSpace(s))
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return s
	}
	local := consecutiveDotsRe.ReplaceAllString(parts[0], ".")
	local = strings.Trim(local, ".")
	return local + "@" + parts[1]
}
