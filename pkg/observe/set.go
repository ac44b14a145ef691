package observe

// SetChange describes a single mutation of a Set.
type SetChange[T comparable] struct {
	Op   Op
	Item T
}

// Set is an observable collection of unique elements that preserves
// insertion order. Comparable dynamic types are required of the elements;
// adding an uncomparable value (a slice, a map) panics at runtime when T is
// an interface type.
type Set[T comparable] struct {
	order  []T
	index  map[T]struct{}
	subs   []setSub[T]
	nextID int
}

type setSub[T comparable] struct {
	id int
	fn func(SetChange[T])
}

// NewSet creates a set seeded with items; duplicates keep their first
// position.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]struct{}, len(items))}
	for _, item := range items {
		if _, ok := s.index[item]; ok {
			continue
		}
		s.index[item] = struct{}{}
		s.order = append(s.order, item)
	}
	return s
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.order)
}

// Has reports whether item is present.
func (s *Set[T]) Has(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Items returns a copy of the elements in insertion order. The copy is
// never nil.
func (s *Set[T]) Items() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

// Add appends item when absent and reports whether the set changed.
func (s *Set[T]) Add(item T) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.order = append(s.order, item)
	s.notify(SetChange[T]{Op: OpInsert, Item: item})
	return true
}

// Remove deletes item when present and reports whether the set changed.
func (s *Set[T]) Remove(item T) bool {
	if _, ok := s.index[item]; !ok {
		return false
	}
	delete(s.index, item)
	for i, existing := range s.order {
		if existing == item {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.notify(SetChange[T]{Op: OpRemove, Item: item})
	return true
}

// Clear removes every element, emitting remove events in reverse insertion
// order.
func (s *Set[T]) Clear() {
	for i := len(s.order) - 1; i >= 0; i-- {
		s.Remove(s.order[i])
	}
}

// Replace swaps the whole content for items (deduplicated, first occurrence
// wins) by clearing and re-adding, so subscribers observe granular events.
func (s *Set[T]) Replace(items ...T) {
	s.Clear()
	for _, item := range items {
		s.Add(item)
	}
}

// Subscribe registers fn for every change. The returned cancel function
// removes the subscription; cancelling during a notification takes effect
// from the next one.
func (s *Set[T]) Subscribe(fn func(SetChange[T])) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, setSub[T]{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Set[T]) notify(c SetChange[T]) {
	subs := s.subs
	for _, sub := range subs {
		sub.fn(c)
	}
}
