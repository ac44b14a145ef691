package binder

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/formkit"
)

// Store writes the committed layer back into a struct. Every tagged struct
// field must resolve to a registered form field; commit-exempt fields are
// written too when present, since skip only shields them from Commit, not
// from reads.
func Store(f *formkit.Form, dst any) error {
	rv, err := structValue(dst)
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
		name, skipField, _, _ := parseTag(sf)
		if skipField {
			continue
		}
		if !f.Has(name) {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}

		switch f.Kind(name) {
		case formkit.KindSingle:
			if err := assign(field, f.Committed(name)); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrTypeMismatch, sf.Name, err)
			}

		default:
			if sf.Type.Kind() != reflect.Slice {
				return fmt.Errorf("%w: field %s is not a slice", ErrTypeMismatch, sf.Name)
			}
			items, _ := f.Committed(name).([]any)
			slice := reflect.MakeSlice(sf.Type, len(items), len(items))
			for j, item := range items {
				if err := assign(slice.Index(j), item); err != nil {
					return fmt.Errorf("%w: field %s: %v", ErrTypeMismatch, sf.Name, err)
				}
			}
			field.Set(slice)
		}
	}

	return nil
}

// assign sets a struct field from a committed value, allocating through
// pointers and converting between numeric kinds.
func assign(field reflect.Value, v any) error {
	t := field.Type()

	if t.Kind() == reflect.Pointer {
		if v == nil {
			field.Set(reflect.Zero(t))
			return nil
		}
		p := reflect.New(t.Elem())
		if err := assign(p.Elem(), v); err != nil {
			return err
		}
		field.Set(p)
		return nil
	}

	if v == nil {
		field.Set(reflect.Zero(t))
		return nil
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Type().AssignableTo(t):
		field.Set(rv)
	case isNumericKind(rv.Kind()) && isNumericKind(t.Kind()) && rv.Type().ConvertibleTo(t):
		field.Set(rv.Convert(t))
	default:
		return fmt.Errorf("cannot assign %T to %s", v, t)
	}
	return nil
}
