package formkit

import (
	"reflect"

	"github.com/dmitrymomot/formkit/pkg/observe"
)

// FieldKind discriminates the shape of a field's value.
type FieldKind int

const (
	KindSingle FieldKind = iota
	KindList
	KindSet
)

func (k FieldKind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	default:
		return "unknown"
	}
}

// FieldOption configures a field at registration time.
type FieldOption func(*field)

// SkipCommit excludes the field from Commit and Revert. Skip fields hold
// UI-only state such as choice lists and selection scratch; they never reach
// the committed layer and never roll back.
func SkipCommit() FieldOption {
	return func(f *field) {
		f.skip = true
	}
}

// WithNormalizers installs normalizers run, in order, on every value entering
// the editable layer through Add, Set, or SetItems. Writes through handles
// bypass them.
func WithNormalizers(normalizers ...Normalizer) FieldOption {
	return func(f *field) {
		f.normalizers = append(f.normalizers, normalizers...)
	}
}

// field pairs an editable slot with its committed snapshot and carries the
// checks bound to it.
type field struct {
	name        string
	skip        bool
	normalizers []Normalizer
	checks      []BatchValidator
	slot        slot
}

func (f *field) normalize(v any) any {
	for _, n := range f.normalizers {
		v = n(v)
	}
	return v
}

func (f *field) normalizeAll(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = f.normalize(item)
	}
	return out
}

// slot is the closed set of field shapes. Layer operations dispatch through
// it so the form core never branches on kind; only the shape-specific entry
// points (Set, SetItems, the handle accessors) assert a concrete type.
type slot interface {
	kind() FieldKind
	value() any
	committedValue() any
	commit()
	revert()
	dirty() bool
	watch(fn func()) (cancel func())
}

// collectionSlot is implemented by the list and set shapes.
type collectionSlot interface {
	replaceAll(items []any)
}

func snapshot(items []any) []any {
	out := make([]any, len(items))
	copy(out, items)
	return out
}

type singleSlot struct {
	editable  *observe.Value[any]
	persisted any
}

func newSingleSlot(initial any) *singleSlot {
	return &singleSlot{
		editable:  observe.NewValue[any](initial),
		persisted: initial,
	}
}

func (s *singleSlot) kind() FieldKind     { return KindSingle }
func (s *singleSlot) value() any          { return s.editable.Get() }
func (s *singleSlot) committedValue() any { return s.persisted }
func (s *singleSlot) commit()             { s.persisted = s.editable.Get() }
func (s *singleSlot) revert()             { s.editable.Set(s.persisted) }

func (s *singleSlot) dirty() bool {
	return !reflect.DeepEqual(s.editable.Get(), s.persisted)
}

func (s *singleSlot) watch(fn func()) func() {
	return s.editable.Subscribe(func(any, any) { fn() })
}

type listSlot struct {
	editable  *observe.List[any]
	persisted []any
}

func newListSlot(initial []any) *listSlot {
	return &listSlot{
		editable:  observe.NewList(initial...),
		persisted: snapshot(initial),
	}
}

func (s *listSlot) kind() FieldKind     { return KindList }
func (s *listSlot) value() any          { return s.editable.Items() }
func (s *listSlot) committedValue() any { return snapshot(s.persisted) }
func (s *listSlot) commit()             { s.persisted = s.editable.Items() }

// revert repopulates the editable list in place so bound handles observe
// granular removes and inserts rather than a wholesale swap. A clean slot
// stays silent.
func (s *listSlot) revert() {
	if !s.dirty() {
		return
	}
	s.editable.Replace(s.persisted...)
}

func (s *listSlot) dirty() bool {
	return !reflect.DeepEqual(s.editable.Items(), s.persisted)
}

func (s *listSlot) watch(fn func()) func() {
	return s.editable.Subscribe(func(observe.Change[any]) { fn() })
}

func (s *listSlot) replaceAll(items []any) {
	s.editable.Replace(items...)
}

type setSlot struct {
	editable  *observe.Set[any]
	persisted []any
}

func newSetSlot(initial []any) *setSlot {
	s := &setSlot{editable: observe.NewSet(initial...)}
	s.persisted = s.editable.Items()
	return s
}

func (s *setSlot) kind() FieldKind     { return KindSet }
func (s *setSlot) value() any          { return s.editable.Items() }
func (s *setSlot) committedValue() any { return snapshot(s.persisted) }
func (s *setSlot) commit()             { s.persisted = s.editable.Items() }

func (s *setSlot) revert() {
	if !s.dirty() {
		return
	}
	s.editable.Replace(s.persisted...)
}

func (s *setSlot) dirty() bool {
	return !reflect.DeepEqual(s.editable.Items(), s.persisted)
}

func (s *setSlot) watch(fn func()) func() {
	return s.editable.Subscribe(func(observe.SetChange[any]) { fn() })
}

func (s *setSlot) replaceAll(items []any) {
	s.editable.Replace(items...)
}
