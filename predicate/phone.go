package predicate

import (
	"regexp"
	"strings"
)

var (
	// International format with optional leading + and country code.
	phoneRe    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	phoneSepRe = regexp.MustCompile(`[\s().-]`)
	nonDigitRe = regexp.MustCompile(`[^0-9]`)
)

// Phone checks E.164-style phone numbers: an optional +, then 2 to 15
// digits not starting with zero. Common separators are tolerated.
type Phone struct {
	Base
}

// NewPhone constructs a phone predicate for attribute.
func NewPhone(attribute string, opts Options) (*Phone, error) {
	p := &Phone{Base: newBase(attribute)}
	p.install(nil, func() any { return Key("phone") })
	if err := opts.apply(attribute, p.baseSetters()); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate reports whether value is a plausible phone number in
// international format.
func (p *Phone) Validate(value any, _ Record) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	cleaned := phoneSepRe.ReplaceAllString(s, "")
	if len(strings.TrimPrefix(cleaned, "+")) < 7 {
		return false
	}
	return phoneRe.MatchString(cleaned)
}

// Normalize strips separators down to bare digits, preserving a leading +,
// so "+1 (555) 123-4567" becomes "+15551234567".
func (p *Phone) Normalize(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	s = strings.TrimSpace(s)
	digits := nonDigitRe.ReplaceAllString(s, "")
	if digits != "" && strings.HasPrefix(s, "+") {
		return "+" + digits
	}
	return digits
}

// ToHuman renders ten-digit numbers in the familiar US notation,
// "(555) 123-4567". Anything else is returned as stored to avoid mangling
// international numbers.
func (p *Phone) ToHuman(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	digits := strings.TrimPrefix(s, "+")
	if len(digits) != 10 || !allDigits(digits) {
		return value
	}
	return "(" + digits[0:3] + ") " + digits[3:6] + "-" + digits[6:10]
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
