// Package resumy builds themed PDF resumes from YAML descriptions.
//
// A resume is a generic YAML document in either the legacy resumy dialect
// or the JSON Resume dialect. The pipeline loads the document, optionally
// validates it against a JSON Schema, converts legacy documents to the
// JSON Resume shape, renders an HTML theme against the document, and
// prints the result to PDF with headless Chrome.
//
// Basic usage:
//
//	doc, err := resumy.LoadDocument("myconfig.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if resumy.IsLegacy(doc) {
//		doc, err = resumy.Transform(doc)
//		if err != nil {
//			log.Fatal(err)
//		}
//	}
//
//	svc := resumy.New(resumy.WithTimeout(60 * time.Second))
//	defer svc.Close()
//
//	pdf, err := svc.Build(ctx, resumy.BuildInput{
//		Document: doc,
//		Theme:    resumy.NewTheme(os.DirFS("/path/to/theme")),
//	})
//
// The resumy command in cmd/resumy wraps this package into a CLI with
// build, validate, init, theme and normalize subcommands.
package resumy
