package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/binder"
)

type profile struct {
	FirstName string   `form:"firstName" label:"First name"`
	Age       int      `form:"age"`
	Score     float64  `form:"score"`
	Active    bool     `form:"active"`
	Nick      string   // untagged, binds as "nick"
	Tags      []string `form:"tags"`
	Roles     []string `form:"roles,set"`
	Options   []string `form:"options,skip"`
	Website   *string  `form:"website"`
	Internal  string   `form:"-"` // Should be skipped
}

func TestLoad(t *testing.T) {
	t.Run("registers and seeds fields", func(t *testing.T) {
		p := profile{
			FirstName: "Mary",
			Age:       30,
			Score:     7.5,
			Active:    true,
			Nick:      "mry",
			Tags:      []string{"go", "web"},
			Internal:  "secret",
		}

		f := formkit.New()
		require.NoError(t, binder.Load(f, &p))

		assert.Equal(t, "Mary", f.Value("firstName"))
		assert.Equal(t, "Mary", f.Committed("firstName"))
		assert.Equal(t, 30, f.Value("age"))
		assert.Equal(t, 7.5, f.Value("score"))
		assert.Equal(t, true, f.Value("active"))
		assert.Equal(t, "mry", f.Value("nick"))
		assert.Equal(t, []any{"go", "web"}, f.Value("tags"))
		assert.False(t, f.Has("internal"))
	})

	t.Run("slices become list fields", func(t *testing.T) {
		f := formkit.New()
		require.NoError(t, binder.Load(f, &profile{Tags: []string{"a", "b"}}))

		assert.Equal(t, formkit.KindList, f.Kind("tags"))
	})

	t.Run("set option makes set fields", func(t *testing.T) {
		f := formkit.New()
		require.NoError(t, binder.Load(f, &profile{Roles: []string{"admin", "admin", "user"}}))

		assert.Equal(t, formkit.KindSet, f.Kind("roles"))
		assert.Equal(t, []any{"admin", "user"}, f.Value("roles"))
	})

	t.Run("skip option exempts from commit", func(t *testing.T) {
		f := formkit.New()
		require.NoError(t, binder.Load(f, &profile{Options: []string{"a"}}))

		f.SetItems("options", "a", "b")
		assert.False(t, f.Dirty())
	})

	t.Run("label tag sets the display label", func(t *testing.T) {
		f := formkit.New()
		require.NoError(t, binder.Load(f, &profile{}))

		assert.Equal(t, "First name", f.Label("firstName"))
	})

	t.Run("nil pointer loads as nil", func(t *testing.T) {
		f := formkit.New()
		require.NoError(t, binder.Load(f, &profile{}))

		assert.Nil(t, f.Value("website"))
	})

	t.Run("non-nil pointer loads its element", func(t *testing.T) {
		site := "https://example.com"
		f := formkit.New()
		require.NoError(t, binder.Load(f, &profile{Website: &site}))

		assert.Equal(t, "https://example.com", f.Value("website"))
	})

	t.Run("rejects non-struct targets", func(t *testing.T) {
		f := formkit.New()

		require.ErrorIs(t, binder.Load(f, profile{}), binder.ErrNotStructPointer)
		require.ErrorIs(t, binder.Load(f, nil), binder.ErrNotStructPointer)

		var p *profile
		require.ErrorIs(t, binder.Load(f, p), binder.ErrNotStructPointer)

		n := 42
		require.ErrorIs(t, binder.Load(f, &n), binder.ErrNotStructPointer)
	})

	t.Run("rejects unsupported field types", func(t *testing.T) {
		type withMap struct {
			Meta map[string]string `form:"meta"`
		}
		type withStructSlice struct {
			Rows []struct{ N int } `form:"rows"`
		}

		require.ErrorIs(t, binder.Load(formkit.New(), &withMap{}), binder.ErrUnsupportedType)
		require.ErrorIs(t, binder.Load(formkit.New(), &withStructSlice{}), binder.ErrUnsupportedType)
	})
}
