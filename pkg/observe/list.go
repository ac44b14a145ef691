package observe

import "fmt"

// Op identifies the kind of change applied to a collection.
type Op uint8

const (
	// OpInsert reports an element added at Change.Index.
	OpInsert Op = iota
	// OpRemove reports the element previously at Change.Index.
	OpRemove
	// OpReplace reports the element at Change.Index being swapped.
	OpReplace
)

// String returns the op name.
func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpReplace:
		return "replace"
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// Change describes a single mutation of a List. Item is the inserted,
// removed, or new element; Prev is the displaced element for OpReplace.
type Change[T any] struct {
	Op    Op
	Index int
	Item  T
	Prev  T
}

// List is an observable ordered collection.
type List[T any] struct {
	items  []T
	subs   []listSub[T]
	nextID int
}

type listSub[T any] struct {
	id int
	fn func(Change[T])
}

// NewList creates a list seeded with items. The input slice is copied.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{items: make([]T, len(items))}
	copy(l.items, items)
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i. It panics when i is out of range.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Items returns a copy of the elements in order. The copy is never nil.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Append adds items to the end, one insert event per element.
func (l *List[T]) Append(items ...T) {
	for _, item := range items {
		l.Insert(len(l.items), item)
	}
}

// Insert adds item at index i, shifting later elements right.
func (l *List[T]) Insert(i int, item T) {
	if i < 0 || i > len(l.items) {
		panic(fmt.Sprintf("observe: insert index %d out of range [0,%d]", i, len(l.items)))
	}
	l.items = append(l.items, item)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	l.notify(Change[T]{Op: OpInsert, Index: i, Item: item})
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, item T) {
	prev := l.items[i]
	l.items[i] = item
	l.notify(Change[T]{Op: OpReplace, Index: i, Item: item, Prev: prev})
}

// RemoveAt removes and returns the element at index i.
func (l *List[T]) RemoveAt(i int) T {
	item := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.notify(Change[T]{Op: OpRemove, Index: i, Item: item})
	return item
}

// Clear removes every element, emitting remove events from the tail down so
// indices in each event are valid at delivery time.
func (l *List[T]) Clear() {
	for i := len(l.items) - 1; i >= 0; i-- {
		l.RemoveAt(i)
	}
}

// Replace swaps the whole content for items by clearing and re-adding, so
// subscribers observe granular remove and insert events rather than a single
// opaque swap.
func (l *List[T]) Replace(items ...T) {
	l.Clear()
	l.Append(items...)
}

// Subscribe registers fn for every change. The returned cancel function
// removes the subscription; cancelling during a notification takes effect
// from the next one.
func (l *List[T]) Subscribe(fn func(Change[T])) (cancel func()) {
	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, listSub[T]{id: id, fn: fn})
	return func() {
		for i, s := range l.subs {
			if s.id == id {
				l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

func (l *List[T]) notify(c Change[T]) {
	subs := l.subs
	for _, s := range subs {
		s.fn(c)
	}
}
