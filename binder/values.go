package binder

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit"
)

// ApplyValues pushes a web submission into the editable layer. Each key must
// resolve to a registered field (by name, key, or id); strip transport-only
// keys such as CSRF tokens before applying. String values are converted to
// the type of the field's current editable value, so a field seeded with an
// int keeps receiving ints. Fields holding nil take the raw string.
//
// List and set fields consume every value posted under the key, with
// comma-separated values split and trimmed the way multi-select widgets
// submit them.
func ApplyValues(f *formkit.Form, vals url.Values) error {
	for name, values := range vals {
		canonical, ok := f.Canonical(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		if len(values) == 0 {
			continue
		}

		if f.Kind(canonical) == formkit.KindSingle {
			converted, err := convert(values[0], f.Value(canonical))
			if err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
			f.Set(canonical, converted)
			continue
		}

		items, _ := f.Value(canonical).([]any)
		var template any
		if len(items) > 0 {
			template = items[0]
		}
		expanded := expandCSV(values)
		converted := make([]any, len(expanded))
		for i, raw := range expanded {
			item, err := convert(raw, template)
			if err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
			converted[i] = item
		}
		f.SetItems(canonical, converted...)
	}

	return nil
}

// convert parses raw into the type of template. A nil template means the
// field carries untyped values and the raw string passes through.
func convert(raw string, template any) (any, error) {
	if template == nil {
		return raw, nil
	}

	t := reflect.TypeOf(template)
	out := reflect.New(t).Elem()
	if err := setScalar(out, t, raw); err != nil {
		return nil, err
	}
	return out.Interface(), nil
}

func setScalar(field reflect.Value, t reflect.Type, raw string) error {
	switch t.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, t.Bits())
		if err != nil {
			return fmt.Errorf("%w: invalid int value %q", ErrInvalidValue, raw)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, t.Bits())
		if err != nil {
			return fmt.Errorf("%w: invalid uint value %q", ErrInvalidValue, raw)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return fmt.Errorf("%w: invalid float value %q", ErrInvalidValue, raw)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			// Be lenient with boolean values
			switch strings.ToLower(raw) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return fmt.Errorf("%w: invalid bool value %q", ErrInvalidValue, raw)
			}
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}

	return nil
}

// expandCSV flattens repeated values, splitting comma-separated entries the
// way multi-select widgets post them.
func expandCSV(values []string) []string {
	var all []string
	for _, v := range values {
		if strings.Contains(v, ",") {
			for _, part := range strings.Split(v, ",") {
				all = append(all, strings.TrimSpace(part))
			}
		} else {
			all = append(all, v)
		}
	}
	return all
}
