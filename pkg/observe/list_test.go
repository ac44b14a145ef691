package observe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/observe"
)

func TestList(t *testing.T) {
	t.Parallel()

	t.Run("seeds from constructor copy", func(t *testing.T) {
		t.Parallel()
		seed := []string{"a", "b"}
		l := observe.NewList(seed...)
		seed[0] = "mutated"
		assert.Equal(t, []string{"a", "b"}, l.Items())
	})

	t.Run("append and at", func(t *testing.T) {
		t.Parallel()
		l := observe.NewList[int]()
		l.Append(1, 2, 3)
		require.Equal(t, 3, l.Len())
		assert.Equal(t, 2, l.At(1))
	})

	t.Run("insert shifts elements", func(t *testing.T) {
		t.Parallel()
		l := observe.NewList("a", "c")
		l.Insert(1, "b")
		assert.Equal(t, []string{"a", "b", "c"}, l.Items())
	})

	t.Run("insert out of range panics", func(t *testing.T) {
		t.Parallel()
		l := observe.NewList("a")
		assert.Panics(t, func() { l.Insert(5, "b") })
	})

	t.Run("set emits replace with previous item", func(t *testing.T) {
		t.Parallel()
		l := observe.NewList("a", "b")
		var got observe.Change[string]
		l.Subscribe(func(c observe.Change[string]) { got = c })
		l.Set(1, "z")
		assert.Equal(t, observe.OpReplace, got.Op)
		assert.Equal(t, 1, got.Index)
		assert.Equal(t, "z", got.Item)
		assert.Equal(t, "b", got.Prev)
	})

	t.Run("remove returns the removed element", func(t *testing.T) {
		t.Parallel()
		l := observe.NewList(10, 20, 30)
		assert.Equal(t, 20, l.RemoveAt(1))
		assert.Equal(t, []int{10, 30}, l.Items())
	})

	t.Run("replace emits granular events", func(t *testing.T) {
		t.Parallel()
		l := observe.NewList("a", "b")
		var events []observe.Change[string]
		l.Subscribe(func(c observe.Change[string]) { events = append(events, c) })

		l.Replace("x", "y", "z")

		require.Len(t, events, 5)
		// Removals run from the tail down, then inserts in order.
		assert.Equal(t, observe.OpRemove, events[0].Op)
		assert.Equal(t, "b", events[0].Item)
		assert.Equal(t, observe.OpRemove, events[1].Op)
		assert.Equal(t, "a", events[1].Item)
		assert.Equal(t, observe.OpInsert, events[2].Op)
		assert.Equal(t, "x", events[2].Item)
		assert.Equal(t, observe.OpInsert, events[4].Op)
		assert.Equal(t, "z", events[4].Item)
		assert.Equal(t, []string{"x", "y", "z"}, l.Items())
	})

	t.Run("items is a defensive copy", func(t *testing.T) {
		t.Parallel()
		l := observe.NewList(1, 2)
		items := l.Items()
		items[0] = 99
		assert.Equal(t, 1, l.At(0))
	})

	t.Run("cancel stops events", func(t *testing.T) {
		t.Parallel()
		l := observe.NewList[int]()
		calls := 0
		cancel := l.Subscribe(func(observe.Change[int]) { calls++ })
		l.Append(1)
		cancel()
		l.Append(2)
		assert.Equal(t, 1, calls)
	})
}

func TestOpString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "insert", observe.OpInsert.String())
	assert.Equal(t, "remove", observe.OpRemove.String())
	assert.Equal(t, "replace", observe.OpReplace.String())
}
