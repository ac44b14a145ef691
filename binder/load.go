package binder

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/formkit"
)

// Load registers one form field per tagged struct field, seeded from the
// struct's current values. Slices become list fields (or set fields with the
// set option), nil pointers load as nil values, and label tags become display
// labels. Field names already registered on the form make the form panic, so
// Load belongs on a freshly constructed Form.
func Load(f *formkit.Form, src any) error {
	rv, err := structValue(src)
	if err != nil {
		return err
	}
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		sf := rt.Field(i)

		if !sf.IsExported() {
			continue
		}
		name, skipField, skipCommit, asSet := parseTag(sf)
		if skipField {
			continue
		}

		var opts []formkit.FieldOption
		if skipCommit {
			opts = append(opts, formkit.SkipCommit())
		}

		ft := sf.Type
		switch {
		case ft.Kind() == reflect.Slice:
			if !isBasicKind(ft.Elem().Kind()) {
				return fmt.Errorf("%w: field %s has type %s", ErrUnsupportedType, sf.Name, ft)
			}
			items := make([]any, field.Len())
			for j := 0; j < field.Len(); j++ {
				items[j] = field.Index(j).Interface()
			}
			if asSet {
				f.AddSet(name, items, opts...)
			} else {
				f.AddList(name, items, opts...)
			}

		case ft.Kind() == reflect.Pointer && isBasicKind(ft.Elem().Kind()):
			var initial any
			if !field.IsNil() {
				initial = field.Elem().Interface()
			}
			f.Add(name, initial, opts...)

		case isBasicKind(ft.Kind()):
			f.Add(name, field.Interface(), opts...)

		default:
			return fmt.Errorf("%w: field %s has type %s", ErrUnsupportedType, sf.Name, ft)
		}

		if label := sf.Tag.Get("label"); label != "" {
			f.SetLabel(name, label)
		}
	}

	return nil
}
