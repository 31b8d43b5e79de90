package messages

import (
	"fmt"
	"regexp"
	"strings"
)

// Catalog is a nested message tree. Leaves are message templates; interior
// nodes group them, so the key "errors.messages.blank" traverses
// c["errors"]["messages"]["blank"].
type Catalog map[string]any

// Lookup traverses dot-separated key segments and returns the template found
// at the leaf. Missing segments and non-string leaves report false.
func (c Catalog) Lookup(key string) (string, bool) {
	parts := strings.Split(key, ".")
	current := map[string]any(c)

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			switch v := val.(type) {
			case string:
				return v, true
			case fmt.Stringer:
				return v.String(), true
			}
			return "", false
		}
		current, ok = nested(val)
		if !ok {
			return "", false
		}
	}
	return "", false
}

// nested widens interior nodes, accepting map[any]any for catalogs built by
// hand or by older YAML decoders.
func nested(val any) (map[string]any, bool) {
	switch m := val.(type) {
	case map[string]any:
		return m, true
	case Catalog:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out, true
	}
	return nil, false
}

// merge overlays src onto dst, recursing into shared interior nodes so
// loading a second catalog only replaces the keys it carries.
func merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		sv, sok := nested(v)
		dv, dok := nested(dst[k])
		if sok && dok {
			dst[k] = merge(dv, sv)
			continue
		}
		dst[k] = v
	}
	return dst
}

// placeholderRe finds named parameters in the form %{name}.
var placeholderRe = regexp.MustCompile(`%\{([^}]+)\}`)

// Interpolate substitutes %{name} placeholders in tmpl from binds. Unknown
// placeholders are kept verbatim so a missing bind is visible, not silently
// blanked.
func Interpolate(tmpl string, binds map[string]any) string {
	if len(binds) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := binds[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
