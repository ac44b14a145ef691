// Package flow drives wizard-style progression over a single formkit.Form.
//
// A Flow partitions a form's fields into ordered steps. Moving forward
// validates the current step's fields and consults its guard; moving back is
// always allowed; jumping is allowed only to steps already visited. Finishing
// validates the whole form and commits it.
//
// Validation findings below error severity never block navigation, matching
// the form's own Save semantics.
//
// # Usage
//
//	w, err := flow.New(f,
//		flow.Step{Name: "account", Fields: []string{"email", "password"}},
//		flow.Step{Name: "profile", Fields: []string{"firstName", "lastName"}},
//		flow.Step{Name: "confirm", Guard: func(f *formkit.Form) bool {
//			return f.Value("terms") == true
//		}},
//	)
//	if err != nil {
//		return err
//	}
//
//	if err := w.Next(); err != nil {
//		var blocked *flow.ErrStepBlocked
//		if errors.As(err, &blocked) {
//			showMessages(blocked.Messages)
//		}
//	}
//
//	// ... on the last step ...
//	if err := w.Finish(); err == nil {
//		// form is committed
//	}
//
// Like the form it wraps, a Flow is confined to a single goroutine.
package flow
