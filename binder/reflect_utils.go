package binder

import (
	"fmt"
	"reflect"
	"strings"
)

// parseTag reads the form tag of a struct field and returns the field name
// plus the registration options it encodes.
func parseTag(sf reflect.StructField) (name string, skipField, skipCommit, asSet bool) {
	tag := sf.Tag.Get("form")
	if tag == "" {
		// No tag, use field name in lowercase
		return strings.ToLower(sf.Name), false, false, false
	}
	if tag == "-" {
		return "", true, false, false
	}

	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = strings.ToLower(sf.Name)
	}
	for _, opt := range parts[1:] {
		switch strings.TrimSpace(opt) {
		case "skip":
			skipCommit = true
		case "set":
			asSet = true
		}
	}
	return name, false, skipCommit, asSet
}

func isBasicKind(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// structValue unwraps a target into its addressable struct value.
func structValue(target any) (reflect.Value, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: got %T", ErrNotStructPointer, target)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: got %T", ErrNotStructPointer, target)
	}
	return rv, nil
}
