package predicate

import "fmt"

// Predicate is a single validation rule bound to one attribute. Concrete
// rules embed Base and implement Validate; Normalize and ToHuman default to
// identity and are overridden where a rule canonicalizes input or renders
// stored values for display.
type Predicate interface {
	// Attribute returns the identifier of the field being validated. It is
	// set once at construction and never changes.
	Attribute() string

	// Validate reports whether value satisfies the rule. Failures are
	// ordinary outcomes surfaced through Error, never Go errors.
	Validate(value any, rec Record) bool

	// Normalize canonicalizes raw human input before validation or storage.
	Normalize(value any) any

	// ToHuman renders a stored value for display.
	ToHuman(value any) any

	// Error resolves the user-facing failure message.
	Error() string

	// ErrorBinds supplies the interpolation variables consumed when a
	// symbolic message is resolved.
	ErrorBinds() map[string]any

	// Applies evaluates the phase and conditional gates for a validation
	// pass. A false result means the check is skipped (treated as success).
	Applies(rec Record, phase Phase) (bool, error)

	// ExemptsEmpty reports whether value is exempt from this rule because it
	// is blank and the rule allows empty values.
	ExemptsEmpty(value any) bool
}

// Base carries the configuration shared by every predicate and provides the
// default behavior of the three extension points. It is not a usable
// predicate on its own: Validate on Base is a loud programming error.
type Base struct {
	attribute   string
	message     any // string literal or Key; nil means "use the default"
	fullMessage string
	condition   Condition
	phase       Phase
	allowEmpty  bool

	// Lazy hooks installed by the concrete predicate so defaults and binds
	// reflect setter mutation that happens after construction.
	binds          func() map[string]any
	defaultMessage func() any
	resolver       Resolver
}

// newBase seeds the construction-time defaults: phase OnSave, empty values
// allowed.
func newBase(attribute string) Base {
	return Base{attribute: attribute, allowEmpty: true}
}

// install wires the concrete predicate's lazy pieces into the embedded Base.
func (b *Base) install(binds func() map[string]any, defaultMessage func() any) {
	b.binds = binds
	b.defaultMessage = defaultMessage
}

// Attribute returns the identifier of the field being validated.
func (b *Base) Attribute() string { return b.attribute }

// Validate on the abstract base signals an unimplemented predicate. Concrete
// rules must provide their own.
func (b *Base) Validate(value any, rec Record) bool {
	panic(fmt.Sprintf("semattr: predicate for %q does not implement Validate", b.attribute))
}

// Normalize returns value unchanged.
func (b *Base) Normalize(value any) any { return value }

// ToHuman returns value unchanged.
func (b *Base) ToHuman(value any) any { return value }

// SetMessage configures the failure message: a literal string or a symbolic
// Key.
func (b *Base) SetMessage(msg any) error {
	switch msg.(type) {
	case string, Key:
		b.message = msg
		return nil
	}
	return fmt.Errorf("%w: want string or predicate.Key, got %T", ErrInvalidOptionValue, msg)
}

// SetFullMessage configures a pre-rendered message that bypasses resolution
// entirely; when set it always wins. An empty string clears it.
func (b *Base) SetFullMessage(msg string) { b.fullMessage = msg }

// SetCondition configures the conditional gate.
func (b *Base) SetCondition(c Condition) { b.condition = c }

// Condition returns the configured gate; its zero value means "no gate".
func (b *Base) Condition() Condition { return b.condition }

// SetPhase configures the lifecycle phase. Assigning anything other than
// OnSave, OnCreate or OnUpdate fails immediately.
func (b *Base) SetPhase(p Phase) error {
	if !p.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownPhase, p)
	}
	b.phase = p
	return nil
}

// Phase returns the configured lifecycle phase.
func (b *Base) Phase() Phase { return b.phase }

// SetAllowEmpty configures the empty-value exemption.
func (b *Base) SetAllowEmpty(allow bool) { b.allowEmpty = allow }

// AllowsEmpty reports whether blank values short-circuit to success.
func (b *Base) AllowsEmpty() bool { return b.allowEmpty }

// SetResolver overrides the package-wide resolver for this predicate only.
// Nil restores the package default.
func (b *Base) SetResolver(r Resolver) { b.resolver = r }

// ErrorBinds returns the interpolation variables for symbolic message
// resolution; nil when the concrete predicate supplies none.
func (b *Base) ErrorBinds() map[string]any {
	if b.binds == nil {
		return nil
	}
	return b.binds()
}

// Error resolves the user-facing failure message. A pre-rendered full
// message always wins. Otherwise the configured message applies, falling
// back to the predicate's lazy default and ultimately to the generic
// "invalid" key. A Key goes through the resolver under Scope with the
// predicate's binds; a literal string is returned as-is.
func (b *Base) Error() string {
	if b.fullMessage != "" {
		return b.fullMessage
	}
	msg := b.message
	if msg == nil {
		if b.defaultMessage != nil {
			msg = b.defaultMessage()
		} else {
			msg = Key("invalid")
		}
	}
	switch m := msg.(type) {
	case Key:
		return b.resolveKey(m)
	case string:
		return m
	}
	return fmt.Sprintf("%v", msg)
}

func (b *Base) resolveKey(k Key) string {
	r := b.resolver
	if r == nil {
		r = defaultResolver
	}
	return r.Resolve(string(k), Scope, b.ErrorBinds())
}

// Applies evaluates the phase gate, then the conditional gate. A broken
// method gate is a configuration error and is returned, not swallowed.
func (b *Base) Applies(rec Record, phase Phase) (bool, error) {
	if !b.phase.matches(phase) {
		return false, nil
	}
	if b.condition.IsZero() {
		return true, nil
	}
	return b.condition.Evaluate(rec)
}

// ExemptsEmpty reports whether value is blank and this rule allows empties.
func (b *Base) ExemptsEmpty(value any) bool {
	return b.allowEmpty && Blank(value)
}
