// Package labels loads friendly-name catalogs for formkit fields and derives
// labels for fields that have none.
//
// Catalogs are flat maps from field reference to display text. Sources load
// them from memory, single files, directories, or an fs.FS; YAML and JSON
// documents are supported, with nested documents flattened to dotted keys:
//
//	profile:
//	  firstName: First name
//	  lastName: Last name
//
// becomes {"profile.firstName": "First name", "profile.lastName": "Last name"}.
//
// # Usage
//
//	catalog, err := labels.Load(ctx,
//		labels.Dir("testdata/labels"),
//		labels.Map{"firstName": "Given name"},
//	)
//	if err != nil {
//		return err
//	}
//	f := formkit.New(
//		formkit.WithLabels(catalog),
//		formkit.WithLabelFallback(labels.Humanize),
//	)
//
// Later sources win on conflicting keys, so in-memory overrides come last.
//
// Humanize turns raw field names (camelCase, snake_case, kebab-case) into
// spaced Title Case and pairs naturally with formkit.WithLabelFallback.
package labels
