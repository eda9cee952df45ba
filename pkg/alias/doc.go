// Package alias decides whether a TypeScript import specifier inside the
// route zone must be rewritten to its canonical path-mapping alias.
//
// A Classifier is built once from an immutable Config and is safe for
// concurrent use:
//
//	c := alias.NewClassifier(alias.Config{
//		Zone:     alias.DefaultZone,
//		Mappings: alias.ParseMappings([]string{"@core", "@shared/*"}),
//	})
//	canonical, ok := c.Classify("src/app/routes/foo/bar.ts", "'../../core/index.ts'")
//	// canonical == "@core", ok == true
//
// The package only looks at the textual shape of a specifier. It does not
// resolve modules or check that the target exists.
package alias
