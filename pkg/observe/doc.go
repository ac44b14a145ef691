// Package observe provides small observable containers: a single-value cell,
// an ordered list, and an insertion-ordered set, each notifying subscribers
// synchronously about changes.
//
// The containers are the binding surface between a form's editable layer and
// whatever renders it: a UI layer subscribes to a handle and mirrors changes
// into widgets, and writes user input back through the same handle. Collection
// changes are reported as granular insert/remove/replace events rather than
// wholesale swaps, so a bound view can apply minimal updates.
//
// # Usage
//
//	name := observe.NewValue("Mary")
//	cancel := name.Subscribe(func(old, new string) {
//	    render(new)
//	})
//	defer cancel()
//	name.Set("Joan") // subscriber fires
//
// # Concurrency
//
// None of the types in this package are safe for concurrent use. They are
// designed for the single-threaded event model of UI toolkits: confine each
// container to one logical thread or synchronize externally. Subscribers run
// synchronously on the calling goroutine, in subscription order.
package observe
