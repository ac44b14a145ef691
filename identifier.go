package formkit

import "github.com/google/uuid"

// Identifier names a field with a stable machine id, a display name, and an
// optional payload for host-toolkit metadata. Key is the canonical string
// projection; the form indexes the id and the display name as aliases of it,
// so a field registered through an identifier resolves by the instance, the
// key, the raw id, or the display name alike.
type Identifier struct {
	id      string
	name    string
	payload any
}

// IdentifierOption configures NewIdentifier.
type IdentifierOption func(*Identifier)

// WithID overrides the generated id.
func WithID(id string) IdentifierOption {
	return func(ident *Identifier) {
		ident.id = id
	}
}

// WithPayload attaches arbitrary caller data, retrievable via Payload.
func WithPayload(payload any) IdentifierOption {
	return func(ident *Identifier) {
		ident.payload = payload
	}
}

// NewIdentifier builds an identifier with the given display name. The id
// defaults to a random UUID unless WithID overrides it.
func NewIdentifier(name string, opts ...IdentifierOption) Identifier {
	ident := Identifier{
		id:   uuid.NewString(),
		name: name,
	}
	for _, opt := range opts {
		opt(&ident)
	}
	return ident
}

// ID returns the machine id.
func (i Identifier) ID() string { return i.id }

// Name returns the display name.
func (i Identifier) Name() string { return i.name }

// Payload returns the attached payload, nil when none was set.
func (i Identifier) Payload() any { return i.payload }

// Key returns the canonical projection used as the field name in the form.
func (i Identifier) Key() string { return i.name + "#" + i.id }

func (i Identifier) String() string { return i.Key() }
