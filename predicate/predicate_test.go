package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/semattr/predicate"
)

type account struct {
	active bool
	tier   string
}

func (a account) Active() bool { return a.active }

func (a account) Tier() string { return a.tier }

func TestBaseDefaults(t *testing.T) {
	n, err := predicate.NewNumber("age", nil)
	require.NoError(t, err)

	assert.Equal(t, "age", n.Attribute())
	assert.Equal(t, predicate.OnSave, n.Phase())
	assert.True(t, n.AllowsEmpty())
}

func TestBaseErrorResolution(t *testing.T) {
	t.Run("default message resolves through the builtin catalog", func(t *testing.T) {
		n, err := predicate.NewNumber("age", nil)
		require.NoError(t, err)
		assert.Equal(t, "must be a number", n.Error())
	})

	t.Run("literal message returned as-is", func(t *testing.T) {
		n, err := predicate.NewNumber("age", predicate.Options{"message": "enter your age"})
		require.NoError(t, err)
		assert.Equal(t, "enter your age", n.Error())
	})

	t.Run("symbolic message resolves through the resolver", func(t *testing.T) {
		n, err := predicate.NewNumber("age", predicate.Options{"error_message": predicate.Key("blank")})
		require.NoError(t, err)
		assert.Equal(t, "can't be blank", n.Error())
	})

	t.Run("full message bypasses resolution", func(t *testing.T) {
		n, err := predicate.NewNumber("age", predicate.Options{"message": predicate.Key("blank")})
		require.NoError(t, err)
		n.SetFullMessage("Age is not a number")
		assert.Equal(t, "Age is not a number", n.Error())

		n.SetFullMessage("")
		assert.Equal(t, "can't be blank", n.Error())
	})

	t.Run("per-predicate resolver override", func(t *testing.T) {
		n, err := predicate.NewNumber("age", predicate.Options{"message": predicate.Key("blank")})
		require.NoError(t, err)
		n.SetResolver(predicate.ResolverFunc(func(key, scope string, binds map[string]any) string {
			return scope + "/" + key
		}))
		assert.Equal(t, "semantic-attributes.errors.messages/blank", n.Error())

		n.SetResolver(nil)
		assert.Equal(t, "can't be blank", n.Error())
	})

	t.Run("package resolver override", func(t *testing.T) {
		predicate.SetResolver(predicate.ResolverFunc(func(key, scope string, binds map[string]any) string {
			return "custom:" + key
		}))
		defer predicate.SetResolver(nil)

		n, err := predicate.NewNumber("age", nil)
		require.NoError(t, err)
		assert.Equal(t, "custom:not_a_number", n.Error())
	})

	t.Run("unknown key falls back to the key itself", func(t *testing.T) {
		n, err := predicate.NewNumber("age", predicate.Options{"message": predicate.Key("no_such_key")})
		require.NoError(t, err)
		assert.Equal(t, "no_such_key", n.Error())
	})
}

func TestBaseSetMessage(t *testing.T) {
	n, err := predicate.NewNumber("age", nil)
	require.NoError(t, err)

	require.NoError(t, n.SetMessage("too big"))
	assert.Equal(t, "too big", n.Error())

	require.ErrorIs(t, n.SetMessage(42), predicate.ErrInvalidOptionValue)
}

func TestBaseApplies(t *testing.T) {
	t.Run("default phase applies everywhere", func(t *testing.T) {
		n, err := predicate.NewNumber("age", nil)
		require.NoError(t, err)
		for _, phase := range []predicate.Phase{predicate.OnSave, predicate.OnCreate, predicate.OnUpdate} {
			ok, err := n.Applies(nil, phase)
			require.NoError(t, err)
			assert.True(t, ok, "phase %s", phase)
		}
	})

	t.Run("create-only predicate skips updates", func(t *testing.T) {
		n, err := predicate.NewNumber("age", predicate.Options{"on": "create"})
		require.NoError(t, err)

		ok, err := n.Applies(nil, predicate.OnUpdate)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = n.Applies(nil, predicate.OnCreate)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = n.Applies(nil, predicate.OnSave)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("callable gate sees the record", func(t *testing.T) {
		n, err := predicate.NewNumber("age", predicate.Options{
			"if": func(rec predicate.Record) bool { return rec.(account).active },
		})
		require.NoError(t, err)

		ok, err := n.Applies(account{active: true}, predicate.OnSave)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = n.Applies(account{active: false}, predicate.OnSave)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("method gate resolves by name", func(t *testing.T) {
		n, err := predicate.NewNumber("age", predicate.Options{"validate_if": "Active"})
		require.NoError(t, err)

		ok, err := n.Applies(account{active: true}, predicate.OnSave)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = n.Applies(account{active: false}, predicate.OnSave)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing method is a configuration error", func(t *testing.T) {
		n, err := predicate.NewNumber("age", predicate.Options{"validate_if": "Missing"})
		require.NoError(t, err)

		_, err = n.Applies(account{}, predicate.OnSave)
		require.ErrorIs(t, err, predicate.ErrBadCondition)
	})

	t.Run("ill-typed method is a configuration error", func(t *testing.T) {
		n, err := predicate.NewNumber("age", predicate.Options{"validate_if": "Tier"})
		require.NoError(t, err)

		_, err = n.Applies(account{}, predicate.OnSave)
		require.ErrorIs(t, err, predicate.ErrBadCondition)
	})

	t.Run("method gate on nil record is a configuration error", func(t *testing.T) {
		n, err := predicate.NewNumber("age", predicate.Options{"validate_if": "Active"})
		require.NoError(t, err)

		_, err = n.Applies(nil, predicate.OnSave)
		require.ErrorIs(t, err, predicate.ErrBadCondition)
	})
}

func TestBaseExemptsEmpty(t *testing.T) {
	n, err := predicate.NewNumber("age", nil)
	require.NoError(t, err)

	assert.True(t, n.ExemptsEmpty(nil))
	assert.True(t, n.ExemptsEmpty("   "))
	assert.False(t, n.ExemptsEmpty("17"))

	n.SetAllowEmpty(false)
	assert.False(t, n.ExemptsEmpty(nil))
}

func TestUnimplementedValidatePanics(t *testing.T) {
	var base predicate.Base
	assert.Panics(t, func() { base.Validate("anything", nil) })
}
