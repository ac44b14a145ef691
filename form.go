package formkit

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/observe"
)

// Normalizer adjusts a value on its way into the editable layer.
type Normalizer func(any) any

// Dispatcher delivers change-validation callbacks. The default dispatcher
// invokes the callback inline; UI hosts supply one that hops onto their
// event loop.
type Dispatcher func(func())

// Form is a two-layer value store for view models. Each field pairs an
// editable value, which backs widgets and observable handles, with a
// committed value, which business code reads. The layers never synchronize
// implicitly: Commit, Save, and ForceSave move edits into the committed
// layer, Revert moves the committed layer back over the edits.
//
// A Form is not safe for concurrent use. Confine each instance to a single
// goroutine, typically the UI loop; ValidateOnChange callbacks can be routed
// elsewhere through WithDispatcher.
type Form struct {
	fields  map[string]*field
	order   []string
	aliases map[string]string

	formValidators []FormValidator
	messages       Messages

	labels        map[string]string
	labelFallback func(string) string

	dispatch Dispatcher
	log      *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithLogger installs a structured logger for debug-level tracing of
// validation and commit activity. The default logger discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(f *Form) {
		if log != nil {
			f.log = log
		}
	}
}

// WithDispatcher routes ValidateOnChange callbacks through the given
// dispatcher.
func WithDispatcher(d Dispatcher) Option {
	return func(f *Form) {
		if d != nil {
			f.dispatch = d
		}
	}
}

// WithLabels seeds the friendly-name map used by Label and Format.
func WithLabels(labels map[string]string) Option {
	return func(f *Form) {
		for name, label := range labels {
			f.labels[name] = label
		}
	}
}

// WithLabelFallback supplies a label derivation for fields without an
// explicit entry, e.g. labels.Humanize. Without one, Label falls back to the
// raw field name.
func WithLabelFallback(fn func(string) string) Option {
	return func(f *Form) {
		f.labelFallback = fn
	}
}

// New constructs an empty form.
func New(opts ...Option) *Form {
	f := &Form{
		fields:   make(map[string]*field),
		aliases:  make(map[string]string),
		labels:   make(map[string]string),
		dispatch: func(fn func()) { fn() },
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Add registers a single-value field seeded into both layers. Reusing a name
// already taken by a field or an alias panics.
func (f *Form) Add(name string, initial any, opts ...FieldOption) {
	fld := f.register(name, opts)
	fld.slot = newSingleSlot(fld.normalize(initial))
}

// AddList registers a list field seeded into both layers.
func (f *Form) AddList(name string, initial []any, opts ...FieldOption) {
	fld := f.register(name, opts)
	fld.slot = newListSlot(fld.normalizeAll(initial))
}

// AddSet registers a set field seeded into both layers. Duplicate initial
// items collapse to their first occurrence.
func (f *Form) AddSet(name string, initial []any, opts ...FieldOption) {
	fld := f.register(name, opts)
	fld.slot = newSetSlot(fld.normalizeAll(initial))
}

// AddID registers a single-value field under the identifier's canonical key
// and indexes the raw id and the display name as aliases of it.
func (f *Form) AddID(ident Identifier, initial any, opts ...FieldOption) {
	f.Add(ident.Key(), initial, opts...)
	f.alias(ident)
}

// AddListID registers a list field under the identifier's canonical key.
func (f *Form) AddListID(ident Identifier, initial []any, opts ...FieldOption) {
	f.AddList(ident.Key(), initial, opts...)
	f.alias(ident)
}

// AddSetID registers a set field under the identifier's canonical key.
func (f *Form) AddSetID(ident Identifier, initial []any, opts ...FieldOption) {
	f.AddSet(ident.Key(), initial, opts...)
	f.alias(ident)
}

func (f *Form) register(name string, opts []FieldOption) *field {
	if name == "" {
		panic("formkit: empty field name")
	}
	f.ensureFree(name)
	fld := &field{name: name}
	for _, opt := range opts {
		opt(fld)
	}
	f.fields[name] = fld
	f.order = append(f.order, name)
	return fld
}

func (f *Form) ensureFree(name string) {
	if _, exists := f.fields[name]; exists {
		panic(fmt.Sprintf("formkit: field %q already registered", name))
	}
	if canonical, exists := f.aliases[name]; exists {
		panic(fmt.Sprintf("formkit: name %q already aliases field %q", name, canonical))
	}
}

// alias indexes the identifier's id and display name onto its canonical key.
// The key itself lives in the field table, so every lookup form resolves
// through a single table.
func (f *Form) alias(ident Identifier) {
	f.addAlias(ident.ID(), ident.Key())
	f.addAlias(ident.Name(), ident.Key())
}

func (f *Form) addAlias(alias, canonical string) {
	if alias == "" || alias == canonical {
		return
	}
	f.ensureFree(alias)
	f.aliases[alias] = canonical
}

// resolve maps any accepted reference (canonical name, identifier key, raw
// id, display name) to the registered field, or nil.
func (f *Form) resolve(name string) *field {
	if fld, ok := f.fields[name]; ok {
		return fld
	}
	if canonical, ok := f.aliases[name]; ok {
		return f.fields[canonical]
	}
	return nil
}

func (f *Form) mustField(name string) *field {
	fld := f.resolve(name)
	if fld == nil {
		panic(fmt.Sprintf("formkit: unknown field %q", name))
	}
	return fld
}

// Canonical resolves a field reference to its canonical name. The boolean
// reports whether the reference names a registered field.
func (f *Form) Canonical(ref string) (string, bool) {
	fld := f.resolve(ref)
	if fld == nil {
		return "", false
	}
	return fld.name, true
}

// Set replaces the editable value of a single-value field after running the
// field's normalizers. Unknown references and collection fields panic.
func (f *Form) Set(name string, value any) {
	fld := f.mustField(name)
	s, ok := fld.slot.(*singleSlot)
	if !ok {
		panic(fmt.Sprintf("formkit: field %q is a %s field, use SetItems", fld.name, fld.slot.kind()))
	}
	s.editable.Set(fld.normalize(value))
}

// SetItems replaces the editable contents of a list or set field after
// running the field's normalizers per item. Unknown references and
// single-value fields panic.
func (f *Form) SetItems(name string, items ...any) {
	fld := f.mustField(name)
	c, ok := fld.slot.(collectionSlot)
	if !ok {
		panic(fmt.Sprintf("formkit: field %q is a single field, use Set", fld.name))
	}
	c.replaceAll(fld.normalizeAll(items))
}

// Value returns the editable value, or nil when the reference is not
// registered. Collection fields return a copied []any snapshot.
func (f *Form) Value(name string) any {
	fld := f.resolve(name)
	if fld == nil {
		return nil
	}
	return fld.slot.value()
}

// Committed returns the committed value, or nil when the reference is not
// registered. Collection fields return a copied []any snapshot.
func (f *Form) Committed(name string) any {
	fld := f.resolve(name)
	if fld == nil {
		return nil
	}
	return fld.slot.committedValue()
}

// ValueOf reads the editable value through an identifier instance.
func (f *Form) ValueOf(ident Identifier) any { return f.Value(ident.Key()) }

// CommittedOf reads the committed value through an identifier instance.
func (f *Form) CommittedOf(ident Identifier) any { return f.Committed(ident.Key()) }

// ValueAs returns the editable value of name as T. ok is false when the
// field is absent or holds a different type.
func ValueAs[T any](f *Form, name string) (T, bool) {
	v, ok := f.Value(name).(T)
	return v, ok
}

// CommittedAs returns the committed value of name as T.
func CommittedAs[T any](f *Form, name string) (T, bool) {
	v, ok := f.Committed(name).(T)
	return v, ok
}

// Handle returns the observable cell backing a single-value field, for
// bidirectional binding. Writes through the handle bypass normalizers.
// Unknown references and other field shapes panic.
func (f *Form) Handle(name string) *observe.Value[any] {
	fld := f.mustField(name)
	s, ok := fld.slot.(*singleSlot)
	if !ok {
		panic(fmt.Sprintf("formkit: field %q is a %s field, not single", fld.name, fld.slot.kind()))
	}
	return s.editable
}

// ListHandle returns the observable list backing a list field.
func (f *Form) ListHandle(name string) *observe.List[any] {
	fld := f.mustField(name)
	s, ok := fld.slot.(*listSlot)
	if !ok {
		panic(fmt.Sprintf("formkit: field %q is a %s field, not list", fld.name, fld.slot.kind()))
	}
	return s.editable
}

// SetHandle returns the observable set backing a set field.
func (f *Form) SetHandle(name string) *observe.Set[any] {
	fld := f.mustField(name)
	s, ok := fld.slot.(*setSlot)
	if !ok {
		panic(fmt.Sprintf("formkit: field %q is a %s field, not set", fld.name, fld.slot.kind()))
	}
	return s.editable
}

// Commit copies the editable layer onto the committed layer for every field
// not marked SkipCommit. Collection snapshots are fresh copies.
func (f *Form) Commit() {
	for _, name := range f.order {
		fld := f.fields[name]
		if fld.skip {
			continue
		}
		fld.slot.commit()
	}
	f.log.Debug("form committed", "fields", len(f.order))
}

// Revert copies the committed layer back onto the editable layer for every
// field not marked SkipCommit. Collections are repopulated in place so bound
// handles observe granular removes and inserts rather than a swap; clean
// fields stay silent.
func (f *Form) Revert() {
	for _, name := range f.order {
		fld := f.fields[name]
		if fld.skip {
			continue
		}
		fld.slot.revert()
	}
	f.log.Debug("form reverted", "fields", len(f.order))
}

// Save validates the whole form and commits only when the result carries no
// error-severity message. It reports whether the commit happened; warnings
// and infos do not block.
func (f *Form) Save() bool {
	if f.Validate().HasErrors() {
		f.log.Debug("save blocked", "errors", len(f.messages.Filter(SeverityError)))
		return false
	}
	f.Commit()
	return true
}

// ForceSave commits without validating. Accumulated messages are left
// untouched.
func (f *Form) ForceSave() {
	f.Commit()
}

// Dirty reports whether any committable field differs between the editable
// and committed layers. SkipCommit fields are ignored: they can never hold
// unsaved state.
func (f *Form) Dirty() bool {
	for _, name := range f.order {
		fld := f.fields[name]
		if fld.skip {
			continue
		}
		if fld.slot.dirty() {
			return true
		}
	}
	return false
}

// FieldDirty reports whether the named field differs between layers. It
// answers for skip fields too; unknown references report false.
func (f *Form) FieldDirty(name string) bool {
	fld := f.resolve(name)
	return fld != nil && fld.slot.dirty()
}

// Fields returns the canonical field names in registration order.
func (f *Form) Fields() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Has reports whether the reference resolves to a registered field.
func (f *Form) Has(name string) bool {
	return f.resolve(name) != nil
}

// Kind returns the field's shape. Unknown references panic.
func (f *Form) Kind(name string) FieldKind {
	return f.mustField(name).slot.kind()
}
