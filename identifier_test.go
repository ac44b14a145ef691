package formkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
)

func TestNewIdentifier(t *testing.T) {
	t.Parallel()

	t.Run("generates a uuid id by default", func(t *testing.T) {
		t.Parallel()
		a := formkit.NewIdentifier("firstName")
		b := formkit.NewIdentifier("firstName")

		assert.NotEmpty(t, a.ID())
		assert.NotEqual(t, a.ID(), b.ID())
		assert.Equal(t, "firstName", a.Name())
	})

	t.Run("honors explicit id and payload", func(t *testing.T) {
		t.Parallel()
		ident := formkit.NewIdentifier("firstName",
			formkit.WithID("f1"),
			formkit.WithPayload(map[string]string{"column": "first_name"}),
		)

		assert.Equal(t, "f1", ident.ID())
		assert.Equal(t, map[string]string{"column": "first_name"}, ident.Payload())
	})

	t.Run("key is the canonical projection", func(t *testing.T) {
		t.Parallel()
		ident := formkit.NewIdentifier("firstName", formkit.WithID("f1"))

		assert.Equal(t, "firstName#f1", ident.Key())
		assert.Equal(t, ident.Key(), ident.String())
	})
}

func TestIdentifierLookup(t *testing.T) {
	t.Parallel()

	t.Run("resolves by instance, key, id, and display name", func(t *testing.T) {
		t.Parallel()
		ident := formkit.NewIdentifier("firstName", formkit.WithID("f1"))
		f := formkit.New()
		f.AddID(ident, "Mary")

		assert.Equal(t, "Mary", f.ValueOf(ident))
		assert.Equal(t, "Mary", f.Value(ident.Key()))
		assert.Equal(t, "Mary", f.Value("f1"))
		assert.Equal(t, "Mary", f.Value("firstName"))
	})

	t.Run("every reference shares one canonical name", func(t *testing.T) {
		t.Parallel()
		ident := formkit.NewIdentifier("firstName", formkit.WithID("f1"))
		f := formkit.New()
		f.AddID(ident, "")

		for _, ref := range []string{ident.Key(), "f1", "firstName"} {
			canonical, ok := f.Canonical(ref)
			require.True(t, ok, ref)
			assert.Equal(t, ident.Key(), canonical)
		}

		_, ok := f.Canonical("unknown")
		assert.False(t, ok)
	})

	t.Run("writes resolve aliases too", func(t *testing.T) {
		t.Parallel()
		ident := formkit.NewIdentifier("firstName", formkit.WithID("f1"))
		f := formkit.New()
		f.AddID(ident, "")

		f.Set("firstName", "Mary")

		assert.Equal(t, "Mary", f.ValueOf(ident))
		assert.True(t, f.FieldDirty("f1"))
	})

	t.Run("collection identifiers", func(t *testing.T) {
		t.Parallel()
		foods := formkit.NewIdentifier("foods", formkit.WithID("f2"))
		options := formkit.NewIdentifier("foodOptions", formkit.WithID("f3"))
		f := formkit.New()
		f.AddSetID(foods, []any{"bbq"})
		f.AddListID(options, []any{"bbq", "veggie"}, formkit.SkipCommit())

		assert.Equal(t, formkit.KindSet, f.Kind("foods"))
		assert.Equal(t, formkit.KindList, f.Kind("f3"))
		assert.Equal(t, []any{"bbq"}, f.ValueOf(foods))
	})

	t.Run("alias collision with an existing field panics", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("firstName", "")

		ident := formkit.NewIdentifier("firstName", formkit.WithID("f1"))
		assert.Panics(t, func() { f.AddID(ident, "") })
	})

	t.Run("alias collision between identifiers panics", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.AddID(formkit.NewIdentifier("firstName", formkit.WithID("shared")), "")

		assert.Panics(t, func() {
			f.AddID(formkit.NewIdentifier("lastName", formkit.WithID("shared")), "")
		})
	})

	t.Run("registering the same identifier twice panics", func(t *testing.T) {
		t.Parallel()
		ident := formkit.NewIdentifier("firstName", formkit.WithID("f1"))
		f := formkit.New()
		f.AddID(ident, "")

		assert.Panics(t, func() { f.AddID(ident, "") })
	})
}
