package messages

import (
	"io"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when none is requested explicitly.
const DefaultLanguage = "en"

// Resolver resolves symbolic message keys against per-language catalogs.
// Lookup order: the resolver's active language, then the default language,
// then the built-in English floor; what happens on a final miss is governed
// by the fallback-to-key setting.
//
// A Resolver view is cheap to derive per language with Lang and safe for
// concurrent use; catalog loading locks out readers for its duration.
type Resolver struct {
	state *state
	lang  string
}

// state is shared between every language view of one resolver.
type state struct {
	mu            sync.RWMutex
	catalogs      map[string]Catalog
	langs         []string // parallel to the matcher's tag list
	matcher       language.Matcher
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// New creates a resolver with no catalogs loaded; the built-in English
// defaults still resolve. Catalogs are added with Add, LoadYAML or LoadFS.
func New(opts ...Option) *Resolver {
	r := &Resolver{state: &state{
		catalogs:      make(map[string]Catalog),
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}}
	for _, opt := range opts {
		opt(r)
	}
	r.lang = r.state.defaultLang
	return r
}

// Builtin returns a resolver carrying only the built-in English defaults.
func Builtin() *Resolver {
	return New()
}

// Resolve looks up key under scope, walks the language fallback chain and
// interpolates binds into the first template found. On a miss it returns the
// bare key (interpolated) or, with fallback-to-key disabled, an empty string.
func (r *Resolver) Resolve(key, scope string, binds map[string]any) string {
	path := key
	if scope != "" {
		path = scope + "." + key
	}

	s := r.state
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, lang := range r.chain() {
		c, ok := s.catalogs[lang]
		if !ok {
			continue
		}
		if tmpl, ok := c.Lookup(path); ok {
			return Interpolate(tmpl, binds)
		}
	}
	if tmpl, ok := builtinCatalog.Lookup(path); ok {
		return Interpolate(tmpl, binds)
	}

	if s.logMissing {
		s.logger.Warn("message key not found", "key", key, "scope", scope, "lang", r.lang)
	}
	if s.fallbackToKey {
		return Interpolate(key, binds)
	}
	return ""
}

// chain lists the languages to consult, active first. Caller holds the lock.
func (r *Resolver) chain() []string {
	if r.lang == "" || r.lang == r.state.defaultLang {
		return []string{r.state.defaultLang}
	}
	return []string{r.lang, r.state.defaultLang}
}

// Lang derives a view of the resolver for the given BCP 47 tag, so "uk-UA"
// selects a loaded "uk" catalog when no exact match exists. Unknown or
// unsupported tags fall back to the default language. Views share catalogs
// with their parent.
func (r *Resolver) Lang(lang string) *Resolver {
	s := r.state
	s.mu.RLock()
	defer s.mu.RUnlock()

	desired, err := language.Parse(lang)
	if err != nil || s.matcher == nil {
		return &Resolver{state: s, lang: s.defaultLang}
	}
	_, idx, conf := s.matcher.Match(desired)
	if conf == language.No || idx >= len(s.langs) {
		return &Resolver{state: s, lang: s.defaultLang}
	}
	return &Resolver{state: s, lang: s.langs[idx]}
}

// Language reports the active language of this view.
func (r *Resolver) Language() string { return r.lang }

// SupportedLanguages lists the languages with a loaded catalog.
func (r *Resolver) SupportedLanguages() []string {
	s := r.state
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.catalogs))
	for lang := range s.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Add merges a catalog for the given language. Keys already present are
// replaced; everything else is kept.
func (r *Resolver) Add(lang string, c Catalog) {
	s := r.state
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalogs[lang] = Catalog(merge(s.catalogs[lang], c))
	s.rebuildMatcher()
}

// rebuildMatcher recomputes the BCP 47 matcher over the loaded catalog
// languages, default language first so ties prefer it. Caller holds the
// write lock. Languages that do not parse as tags stay loadable by exact
// name but are invisible to matching.
func (s *state) rebuildMatcher() {
	all := make([]string, 0, len(s.catalogs))
	for lang := range s.catalogs {
		all = append(all, lang)
	}
	sort.Strings(all)
	if i := slices.Index(all, s.defaultLang); i > 0 {
		all = slices.Delete(all, i, i+1)
		all = append([]string{s.defaultLang}, all...)
	}

	langs := make([]string, 0, len(all))
	tags := make([]language.Tag, 0, len(all))
	for _, lang := range all {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		langs = append(langs, lang)
		tags = append(tags, tag)
	}
	s.langs = langs
	if len(tags) == 0 {
		s.matcher = nil
		return
	}
	s.matcher = language.NewMatcher(tags)
}
