package messages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/semattr/messages"
)

const scope = "semantic-attributes.errors.messages"

// scoped nests msgs under the standard error-message scope.
func scoped(msgs map[string]any) messages.Catalog {
	return messages.Catalog{
		"semantic-attributes": map[string]any{
			"errors": map[string]any{
				"messages": msgs,
			},
		},
	}
}

func TestResolverBuiltinFloor(t *testing.T) {
	r := messages.Builtin()

	assert.Equal(t, "can't be blank", r.Resolve("blank", scope, nil))
	assert.Equal(t,
		"must be one of: free, pro",
		r.Resolve("inclusion", scope, map[string]any{"values": "free, pro"}),
	)
}

func TestResolverFallbackChain(t *testing.T) {
	r := messages.New()
	r.Add("en", scoped(map[string]any{"blank": "required field"}))
	r.Add("uk", scoped(map[string]any{"blank": "не може бути порожнім"}))

	uk := r.Lang("uk")

	t.Run("active language wins", func(t *testing.T) {
		assert.Equal(t, "не може бути порожнім", uk.Resolve("blank", scope, nil))
	})

	t.Run("missing key falls through to default language", func(t *testing.T) {
		r.Add("en", scoped(map[string]any{"taken": "already in use"}))
		assert.Equal(t, "already in use", uk.Resolve("taken", scope, nil))
	})

	t.Run("missing everywhere falls through to builtin", func(t *testing.T) {
		assert.Equal(t, "must be a valid URL", uk.Resolve("url", scope, nil))
	})

	t.Run("loaded default language overrides builtin", func(t *testing.T) {
		assert.Equal(t, "required field", r.Resolve("blank", scope, nil))
	})

	t.Run("unknown key resolves to itself", func(t *testing.T) {
		assert.Equal(t, "totally_custom", r.Resolve("totally_custom", scope, nil))
	})
}

func TestResolverFallbackToKeyDisabled(t *testing.T) {
	r := messages.New(messages.WithFallbackToKey(false))

	assert.Equal(t, "", r.Resolve("no_such_key", scope, nil))
	assert.Equal(t, "can't be blank", r.Resolve("blank", scope, nil))
}

func TestResolverLanguageMatching(t *testing.T) {
	r := messages.New()
	r.Add("en", scoped(map[string]any{"blank": "required"}))
	r.Add("uk", scoped(map[string]any{"blank": "порожнє"}))

	assert.Equal(t, "en", r.Language())
	assert.Equal(t, "uk", r.Lang("uk-UA").Language())
	assert.Equal(t, "en", r.Lang("fr").Language())
	assert.Equal(t, "en", r.Lang("!!!").Language())
	assert.Equal(t, []string{"en", "uk"}, r.SupportedLanguages())
}

func TestResolverDefaultLanguage(t *testing.T) {
	r := messages.New(messages.WithDefaultLanguage("uk"))
	r.Add("uk", scoped(map[string]any{"blank": "порожнє"}))

	assert.Equal(t, "uk", r.Language())
	assert.Equal(t, "порожнє", r.Resolve("blank", scope, nil))
}

func TestResolverAddMerges(t *testing.T) {
	r := messages.New()
	r.Add("en", scoped(map[string]any{"blank": "required"}))
	r.Add("en", scoped(map[string]any{"taken": "already in use"}))

	assert.Equal(t, "required", r.Resolve("blank", scope, nil))
	assert.Equal(t, "already in use", r.Resolve("taken", scope, nil))

	r.Add("en", scoped(map[string]any{"blank": "cannot be empty"}))
	assert.Equal(t, "cannot be empty", r.Resolve("blank", scope, nil))
}
