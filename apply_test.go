package semattr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/semattr"
	"github.com/dmitrymomot/semattr/predicate"
)

type user struct {
	persisted bool
}

func (u user) Persisted() bool { return u.persisted }

func TestRun(t *testing.T) {
	t.Run("returns the normalized value", func(t *testing.T) {
		p := predicate.Must(predicate.NewURL("website", nil))

		normalized, ok, err := semattr.Run(p, "example.com", nil, predicate.OnSave)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "http://example.com", normalized)
	})

	t.Run("phase gating skips the check", func(t *testing.T) {
		p := predicate.Must(predicate.NewRange("age", predicate.Options{"above": 18, "on": "create"}))

		normalized, ok, err := semattr.Run(p, "not even a number", nil, predicate.OnUpdate)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "not even a number", normalized)
	})

	t.Run("empty values are exempt by default", func(t *testing.T) {
		p := predicate.Must(predicate.NewEmail("email", nil))

		_, ok, err := semattr.Run(p, "", nil, predicate.OnSave)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("or_empty false checks empty values", func(t *testing.T) {
		p := predicate.Must(predicate.NewEmail("email", predicate.Options{"or_empty": false}))

		_, ok, err := semattr.Run(p, "", nil, predicate.OnSave)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("method gate consults the record", func(t *testing.T) {
		p := predicate.Must(predicate.NewRange("age", predicate.Options{"above": 18, "if": "Persisted"}))

		_, ok, err := semattr.Run(p, 3, user{persisted: false}, predicate.OnSave)
		require.NoError(t, err)
		assert.True(t, ok)

		_, ok, err = semattr.Run(p, 3, user{persisted: true}, predicate.OnSave)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("broken gate reports a configuration error", func(t *testing.T) {
		p := predicate.Must(predicate.NewRange("age", predicate.Options{"above": 18, "if": "Nope"}))

		normalized, ok, err := semattr.Run(p, 3, user{}, predicate.OnSave)
		assert.ErrorIs(t, err, predicate.ErrBadCondition)
		assert.False(t, ok)
		assert.Equal(t, 3, normalized)
	})
}

func TestApply(t *testing.T) {
	preds := []predicate.Predicate{
		predicate.Must(predicate.NewRange("age", predicate.Options{"range": predicate.Through(18, 120)})),
		predicate.Must(predicate.NewEmail("email", predicate.Options{"or_empty": false})),
		predicate.Must(predicate.NewURL("website", nil)),
	}

	t.Run("collects a message per failing attribute", func(t *testing.T) {
		values := map[string]any{
			"age":     "17",
			"email":   "not-an-email",
			"website": "https://example.com",
		}
		errs, err := semattr.Apply(values, nil, predicate.OnSave, preds...)
		require.NoError(t, err)

		assert.Equal(t, []string{"age", "email"}, errs.Fields())
		assert.Equal(t, "must be a number from 18 through 120", errs.Get("age"))
		assert.Equal(t, "must be a valid email address", errs.Get("email"))
		assert.False(t, errs.Has("website"))
	})

	t.Run("clean record yields no failures", func(t *testing.T) {
		values := map[string]any{
			"age":     "42",
			"email":   "user@example.com",
			"website": "",
		}
		errs, err := semattr.Apply(values, nil, predicate.OnSave, preds...)
		require.NoError(t, err)
		assert.True(t, errs.IsEmpty())
	})

	t.Run("absent attribute fails a non-exempt predicate", func(t *testing.T) {
		errs, err := semattr.Apply(map[string]any{"age": 30}, nil, predicate.OnSave, preds...)
		require.NoError(t, err)

		assert.Equal(t, []string{"email"}, errs.Fields())
	})

	t.Run("misconfiguration aborts the pass", func(t *testing.T) {
		broken := predicate.Must(predicate.NewRange("age", predicate.Options{"above": 18, "if": "Nope"}))

		errs, err := semattr.Apply(map[string]any{"age": 30}, user{}, predicate.OnSave, broken)
		assert.ErrorIs(t, err, predicate.ErrBadCondition)
		assert.Nil(t, errs)
	})
}
