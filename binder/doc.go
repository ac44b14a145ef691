// Package binder maps between model structs, web submissions, and a
// formkit.Form using reflection over struct tags.
//
// Load registers one form field per tagged struct field and seeds it from the
// struct's current values. Store writes the committed layer back into a
// struct. ApplyValues pushes a url.Values submission into the editable layer,
// converting strings to the registered field's type.
//
// # Struct tags
//
// Fields are declared with the form tag, plus an optional label tag:
//
//	type Profile struct {
//		FirstName string   `form:"firstName" label:"First name"`
//		Age       int      `form:"age"`
//		Tags      []string `form:"tags"`
//		Roles     []string `form:"roles,set"`
//		Options   []string `form:"options,skip"`
//		Website   *string  `form:"website"`
//		Internal  string   `form:"-"`
//	}
//
//   - `form:"name"` sets the field name; untagged fields use the lowercased
//     struct field name.
//   - `form:"-"` leaves the field out entirely.
//   - `,skip` registers the field as commit-exempt UI state.
//   - `,set` registers a slice as a set field instead of a list field.
//   - `label:"..."` sets the field's display label.
//
// Slices become list fields, one element per item. Pointers mark optional
// values: nil loads as a nil value and stores back as a nil pointer.
//
// # Usage
//
//	p := Profile{FirstName: "Mary", Age: 30, Tags: []string{"go"}}
//	f := formkit.New()
//	if err := binder.Load(f, &p); err != nil {
//		return err
//	}
//
//	// ... edits, validation ...
//
//	if f.Save() {
//		if err := binder.Store(f, &p); err != nil {
//			return err
//		}
//	}
//
// Supported element types are the basic kinds: string, bool, signed and
// unsigned integers, and floats. Anything else fails with ErrUnsupportedType.
package binder
