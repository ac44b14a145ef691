package observe

import "reflect"

// Value is an observable single-value cell.
type Value[T any] struct {
	current T
	subs    []valueSub[T]
	nextID  int
}

type valueSub[T any] struct {
	id int
	fn func(old, new T)
}

// NewValue creates a cell holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{current: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.current
}

// Set replaces the current value and notifies subscribers. Subscribers are
// not notified when the new value is deep-equal to the old one, which keeps
// two-way bindings from echoing writes back and forth.
func (v *Value[T]) Set(next T) {
	if reflect.DeepEqual(v.current, next) {
		return
	}
	old := v.current
	v.current = next

	// Snapshot the subscriber list so callbacks may subscribe or cancel
	// without corrupting this iteration.
	subs := v.subs
	for _, s := range subs {
		s.fn(old, next)
	}
}

// Subscribe registers fn to run after every effective Set. The returned
// cancel function removes the subscription; cancelling during a notification
// takes effect from the next one.
func (v *Value[T]) Subscribe(fn func(old, new T)) (cancel func()) {
	v.nextID++
	id := v.nextID
	v.subs = append(v.subs, valueSub[T]{id: id, fn: fn})
	return func() {
		for i, s := range v.subs {
			if s.id == id {
				v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
				return
			}
		}
	}
}
