package predicate

import (
	"github.com/dmitrymomot/semattr/messages"
)

// Key marks an error message as symbolic: a lookup key resolved through the
// configured Resolver rather than shown literally.
type Key string

// Scope is the fixed namespace every symbolic predicate message resolves
// under.
const Scope = "semantic-attributes.errors.messages"

// Resolver turns a symbolic key plus interpolation binds into a user-facing
// message. The messages package provides the catalog-backed implementation;
// hosts may wire any localization backend that satisfies the interface.
type Resolver interface {
	Resolve(key, scope string, binds map[string]any) string
}

// ResolverFunc adapts a plain lookup function to the Resolver interface.
type ResolverFunc func(key, scope string, binds map[string]any) string

func (f ResolverFunc) Resolve(key, scope string, binds map[string]any) string {
	return f(key, scope, binds)
}

// defaultResolver backs every predicate that has no per-predicate override.
// Swapped during setup only.
var defaultResolver Resolver = messages.Builtin()

// SetResolver replaces the package-wide resolver. Passing nil restores the
// builtin English catalog. Call during setup, not concurrently with
// validation.
func SetResolver(r Resolver) {
	if r == nil {
		r = messages.Builtin()
	}
	defaultResolver = r
}
