// Package formkit provides a headless two-layer value store for form view
// models: widgets bind to an editable layer, business code reads a committed
// layer, and validation gates the transfer between the two.
//
// Key Features:
//
//   - Paired editable/committed values per field, synchronized only by
//     explicit Commit, Save, ForceSave, and Revert calls
//   - Single, list, and set field shapes with observable handles emitting
//     granular change events for bidirectional UI binding
//   - Direct and accumulating validator styles with Info, Warning, and Error
//     severities; only errors block Save
//   - Identifier registration with alias lookup by key, raw id, or display
//     name
//   - Query-time message formatting with %{name} placeholders and friendly
//     field labels
//   - No widgets, no transport, no persistence: any UI toolkit or handler
//     layer can sit on top
//
// Basic Usage:
//
//	f := formkit.New()
//	f.Add("firstName", "")
//	f.Add("lastName", "")
//	f.AddValidator("firstName", "First name", rules.Required())
//
//	// Widgets write into the editable layer.
//	f.Set("firstName", "Mary")
//
//	// Save validates and commits only when no error was found.
//	if f.Save() {
//		first, _ := formkit.CommittedAs[string](f, "firstName")
//		// persist first ...
//	} else {
//		for _, m := range f.Messages() {
//			fmt.Println(f.Format(m))
//		}
//	}
//
// Binding:
//
// Each field exposes an observable handle. UI code subscribes for changes
// and writes user input back through the same handle:
//
//	name := f.Handle("firstName")
//	cancel := name.Subscribe(func(old, new any) {
//		entry.SetText(new.(string))
//	})
//	defer cancel()
//
// Skip Fields:
//
// Fields registered with SkipCommit hold UI-only state, such as the choice
// list behind a select widget. Commit and Revert leave them untouched:
//
//	f.AddList("foodOptions", []any{"bbq", "veggie"}, formkit.SkipCommit())
//
// Concurrency:
//
// A Form is not safe for concurrent use. Confine each instance to one
// goroutine, typically the UI loop. ValidateOnChange callbacks can be routed
// onto a host event loop through WithDispatcher.
package formkit
