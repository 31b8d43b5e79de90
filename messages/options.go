package messages

import (
	"io"
	"log/slog"
)

// Option configures a Resolver at construction time.
type Option func(*Resolver)

// WithDefaultLanguage sets the language consulted when the requested one has
// no catalog or no matching key.
func WithDefaultLanguage(lang string) Option {
	return func(r *Resolver) {
		if lang != "" {
			r.state.defaultLang = lang
		}
	}
}

// WithFallbackToKey determines whether an unresolved key is returned as the
// message itself. Default is true; with false, a miss yields an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(r *Resolver) {
		r.state.fallbackToKey = fallback
	}
}

// WithLogger provides the logger used for missing-key reporting. If not
// specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.state.logger = logger
		}
	}
}

// WithMissingKeyLogging controls whether unresolved keys are logged. Default
// is false to avoid noisy logs from intentionally key-less setups.
func WithMissingKeyLogging(log bool) Option {
	return func(r *Resolver) {
		r.state.logMissing = log
	}
}

// WithNoLogging disables all logging.
func WithNoLogging() Option {
	return func(r *Resolver) {
		r.state.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		r.state.logMissing = false
	}
}
