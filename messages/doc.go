// Package messages resolves symbolic validation-message keys into user-facing
// strings. It is the concrete lookup service behind the predicate package's
// Resolver contract: a (key, scope, binds) triple becomes a dot-path into a
// per-language catalog, and %{name} placeholders in the template are filled
// from the binds.
//
// A resolver with no catalogs loaded still works: a built-in English catalog
// backs the framework's default message keys. Hosts layer their own catalogs
// on top, from YAML or from literal Catalog values:
//
//	r := messages.New(messages.WithDefaultLanguage("en"))
//	if err := r.LoadFS(localesFS, "locales"); err != nil {
//	    log.Fatal(err)
//	}
//	msg := r.Lang("uk-UA").Resolve("blank", "semantic-attributes.errors.messages", nil)
//
// Language selection follows BCP 47 matching, so a "uk-UA" request finds a
// "uk" catalog; a tag with no usable match falls back to the default
// language, and individual keys missing from a language fall through the
// chain down to the built-in defaults. Unresolved keys come back as the key
// itself unless WithFallbackToKey(false) asks for an empty string instead.
package messages
