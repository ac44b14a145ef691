package rules

import "github.com/dmitrymomot/formkit"

// Collection rules bind to list and set fields, whose values present as
// []any snapshots.

// RequiredItems fails when the collection is empty.
func RequiredItems() formkit.Validator {
	return formkit.Typed(func(items []any, _ *formkit.Form) *formkit.Message {
		if len(items) == 0 {
			return formkit.NewError("%{field} must not be empty").
				WithCode("validation.required")
		}
		return nil
	})
}

// MinItems fails when the collection holds fewer than min items.
func MinItems(min int) formkit.Validator {
	return formkit.Typed(func(items []any, _ *formkit.Form) *formkit.Message {
		if len(items) < min {
			return formkit.NewError("%{field} must have at least %{min} items").
				WithCode("validation.min_items").
				WithValues(map[string]any{"min": min})
		}
		return nil
	})
}

// MaxItems fails when the collection holds more than max items.
func MaxItems(max int) formkit.Validator {
	return formkit.Typed(func(items []any, _ *formkit.Form) *formkit.Message {
		if len(items) > max {
			return formkit.NewError("%{field} must have at most %{max} items").
				WithCode("validation.max_items").
				WithValues(map[string]any{"max": max})
		}
		return nil
	})
}

// UniqueItems fails when the collection repeats an item. Set fields cannot
// repeat by construction; the rule exists for list fields.
func UniqueItems() formkit.Validator {
	return formkit.Typed(func(items []any, _ *formkit.Form) *formkit.Message {
		seen := make(map[any]bool, len(items))
		for _, item := range items {
			if seen[item] {
				return formkit.NewError("%{field} must not contain duplicates").
					WithCode("validation.unique_items").
					WithValues(map[string]any{"duplicate": item})
			}
			seen[item] = true
		}
		return nil
	})
}
