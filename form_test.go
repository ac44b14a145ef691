package formkit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/observe"
)

func TestFieldRegistration(t *testing.T) {
	t.Parallel()

	t.Run("seeds both layers", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("firstName", "Mary")

		assert.Equal(t, "Mary", f.Value("firstName"))
		assert.Equal(t, "Mary", f.Committed("firstName"))
		assert.False(t, f.Dirty())
	})

	t.Run("duplicate name panics", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("firstName", "")
		assert.PanicsWithValue(t, `formkit: field "firstName" already registered`, func() {
			f.Add("firstName", "")
		})
	})

	t.Run("empty name panics", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		assert.Panics(t, func() { f.Add("", "x") })
	})

	t.Run("keeps registration order", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("b", "")
		f.AddList("a", nil)
		f.AddSet("c", nil)

		assert.Equal(t, []string{"b", "a", "c"}, f.Fields())
	})

	t.Run("reports kinds", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("name", "")
		f.AddList("tags", nil)
		f.AddSet("foods", nil)

		assert.Equal(t, formkit.KindSingle, f.Kind("name"))
		assert.Equal(t, formkit.KindList, f.Kind("tags"))
		assert.Equal(t, formkit.KindSet, f.Kind("foods"))
		assert.Panics(t, func() { f.Kind("missing") })
	})

	t.Run("reads of unknown fields are nil", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		assert.Nil(t, f.Value("missing"))
		assert.Nil(t, f.Committed("missing"))
		assert.False(t, f.Has("missing"))
	})

	t.Run("set field deduplicates initial items", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.AddSet("foods", []any{"bbq", "chips", "bbq"})

		assert.Equal(t, []any{"bbq", "chips"}, f.Value("foods"))
		assert.Equal(t, []any{"bbq", "chips"}, f.Committed("foods"))
	})
}

func TestSetAndSetItems(t *testing.T) {
	t.Parallel()

	t.Run("set updates the editable layer only", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("firstName", "")

		f.Set("firstName", "Mary")

		assert.Equal(t, "Mary", f.Value("firstName"))
		assert.Equal(t, "", f.Committed("firstName"))
		assert.True(t, f.Dirty())
	})

	t.Run("set on unknown field panics", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		assert.PanicsWithValue(t, `formkit: unknown field "missing"`, func() {
			f.Set("missing", "x")
		})
	})

	t.Run("set on a list field panics", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.AddList("tags", nil)
		assert.PanicsWithValue(t, `formkit: field "tags" is a list field, use SetItems`, func() {
			f.Set("tags", "x")
		})
	})

	t.Run("set items replaces collection contents", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.AddList("tags", []any{"old"})

		f.SetItems("tags", "a", "b")

		assert.Equal(t, []any{"a", "b"}, f.Value("tags"))
		assert.Equal(t, []any{"old"}, f.Committed("tags"))
	})

	t.Run("set items on a single field panics", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("name", "")
		assert.PanicsWithValue(t, `formkit: field "name" is a single field, use Set`, func() {
			f.SetItems("name", "x")
		})
	})

	t.Run("normalizers run on the way in", func(t *testing.T) {
		t.Parallel()
		trim := func(v any) any {
			if s, ok := v.(string); ok {
				return strings.TrimSpace(s)
			}
			return v
		}
		f := formkit.New()
		f.Add("name", "  seed  ", formkit.WithNormalizers(trim))
		f.AddList("tags", []any{" a "}, formkit.WithNormalizers(trim))

		assert.Equal(t, "seed", f.Value("name"))
		assert.Equal(t, []any{"a"}, f.Value("tags"))

		f.Set("name", "  Mary  ")
		f.SetItems("tags", " b ", " c ")

		assert.Equal(t, "Mary", f.Value("name"))
		assert.Equal(t, []any{"b", "c"}, f.Value("tags"))
	})
}

func TestCommitRevert(t *testing.T) {
	t.Parallel()

	t.Run("commit copies edits to the committed layer", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("firstName", "")
		f.AddList("tags", []any{"a"})

		f.Set("firstName", "Mary")
		f.SetItems("tags", "a", "b")
		f.Commit()

		assert.Equal(t, "Mary", f.Committed("firstName"))
		assert.Equal(t, []any{"a", "b"}, f.Committed("tags"))
		assert.False(t, f.Dirty())
	})

	t.Run("revert discards edits", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("firstName", "Mary")
		f.Set("firstName", "Anne")

		f.Revert()

		assert.Equal(t, "Mary", f.Value("firstName"))
		assert.False(t, f.Dirty())
	})

	t.Run("revert then commit is a no-op on committed values", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("firstName", "Mary")
		f.AddList("tags", []any{"a", "b"})
		f.Set("firstName", "Anne")
		f.SetItems("tags", "c")

		f.Revert()
		f.Commit()

		assert.Equal(t, "Mary", f.Committed("firstName"))
		assert.Equal(t, []any{"a", "b"}, f.Committed("tags"))
	})

	t.Run("skip fields are excluded from commit and revert", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.AddSet("foods", []any{"bbq"})
		f.AddList("foodOptions", []any{"bbq", "veggie"}, formkit.SkipCommit())

		f.SetItems("foodOptions", "bbq", "veggie", "vegan")
		f.Commit()
		assert.Equal(t, []any{"bbq", "veggie"}, f.Committed("foodOptions"))

		f.Revert()
		assert.Equal(t, []any{"bbq", "veggie", "vegan"}, f.Value("foodOptions"))
	})

	t.Run("committed collections are defensive copies", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.AddList("tags", []any{"a"})

		got := f.Committed("tags").([]any)
		got[0] = "mutated"

		assert.Equal(t, []any{"a"}, f.Committed("tags"))
	})

	t.Run("revert repopulates collections with granular events", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.AddList("tags", []any{"a", "b"})
		f.SetItems("tags", "c")

		var ops []string
		f.ListHandle("tags").Subscribe(func(c observe.Change[any]) {
			ops = append(ops, c.Op.String())
		})

		f.Revert()

		assert.Equal(t, []string{"remove", "insert", "insert"}, ops)
		assert.Equal(t, []any{"a", "b"}, f.Value("tags"))
	})

	t.Run("clean revert emits nothing", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.AddList("tags", []any{"a"})

		events := 0
		f.ListHandle("tags").Subscribe(func(observe.Change[any]) { events++ })

		f.Revert()

		assert.Zero(t, events)
	})
}

func TestDirty(t *testing.T) {
	t.Parallel()

	t.Run("aggregate ignores skip fields", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("firstName", "")
		f.AddList("foodOptions", nil, formkit.SkipCommit())

		f.SetItems("foodOptions", "bbq")

		assert.False(t, f.Dirty())
		assert.True(t, f.FieldDirty("foodOptions"))
	})

	t.Run("field dirty tracks single values", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("firstName", "Mary")

		assert.False(t, f.FieldDirty("firstName"))
		f.Set("firstName", "Anne")
		assert.True(t, f.FieldDirty("firstName"))
		f.Set("firstName", "Mary")
		assert.False(t, f.FieldDirty("firstName"))
	})

	t.Run("unknown field reports clean", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		assert.False(t, f.FieldDirty("missing"))
	})
}

func TestHandles(t *testing.T) {
	t.Parallel()

	t.Run("handle writes reach the editable layer", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("firstName", "")

		f.Handle("firstName").Set("Mary")

		assert.Equal(t, "Mary", f.Value("firstName"))
		assert.Equal(t, "", f.Committed("firstName"))
	})

	t.Run("handle notifies on form writes", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("firstName", "")

		var got any
		f.Handle("firstName").Subscribe(func(_, new any) { got = new })
		f.Set("firstName", "Mary")

		assert.Equal(t, "Mary", got)
	})

	t.Run("kind mismatch panics with the actual kind", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.AddSet("foods", nil)
		assert.PanicsWithValue(t, `formkit: field "foods" is a set field, not single`, func() {
			f.Handle("foods")
		})
		assert.PanicsWithValue(t, `formkit: field "foods" is a set field, not list`, func() {
			f.ListHandle("foods")
		})
	})

	t.Run("set handle enforces uniqueness", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.AddSet("foods", []any{"bbq"})

		h := f.SetHandle("foods")
		assert.False(t, h.Add("bbq"))
		require.True(t, h.Add("chips"))
		assert.Equal(t, []any{"bbq", "chips"}, f.Value("foods"))
	})
}

func TestTypedAccessors(t *testing.T) {
	t.Parallel()

	t.Run("value as", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("age", 42)

		age, ok := formkit.ValueAs[int](f, "age")
		require.True(t, ok)
		assert.Equal(t, 42, age)

		_, ok = formkit.ValueAs[string](f, "age")
		assert.False(t, ok)

		_, ok = formkit.ValueAs[int](f, "missing")
		assert.False(t, ok)
	})

	t.Run("committed as", func(t *testing.T) {
		t.Parallel()
		f := formkit.New()
		f.Add("age", 42)
		f.Set("age", 43)

		age, ok := formkit.CommittedAs[int](f, "age")
		require.True(t, ok)
		assert.Equal(t, 42, age)
	})
}

func TestForceSave(t *testing.T) {
	t.Parallel()

	f := formkit.New()
	f.Add("firstName", "")
	f.AddValidator("firstName", "First name", requiredString())

	f.ForceSave()

	assert.Equal(t, "", f.Committed("firstName"))
	assert.True(t, f.Messages().IsEmpty())
}
