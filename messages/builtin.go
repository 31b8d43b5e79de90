package messages

// builtinCatalog is the English floor every resolver falls back to. It is
// keyed under the scope predicates resolve with, so default messages work
// without any catalog loaded.
var builtinCatalog = Catalog{
	"semantic-attributes": map[string]any{
		"errors": map[string]any{
			"messages": map[string]any{
				"invalid":      "is invalid",
				"blank":        "can't be blank",
				"not_a_number": "must be a number",
				"email":        "must be a valid email address",
				"phone":        "must be a valid phone number",
				"url":          "must be a valid URL",
				"uuid":         "must be a valid UUID",
				"inclusion":    "must be one of: %{values}",
				"exclusion":    "must not be one of: %{values}",
			},
		},
	},
}
