package main

import (
	"io"
	"time"

	flag "github.com/spf13/pflag"

	resumy "github.com/resumy/go-resumy"
)

// defaultBuildTimeout bounds the browser render for the build command.
const defaultBuildTimeout = 60 * time.Second

// buildFlags holds all flags for the build command.
type buildFlags struct {
	title             string
	author            string
	keywords          []string
	createdDate       string
	modifiedDate      string
	autoMetadata      bool
	output            string
	theme             string
	schema            string
	disableValidation bool
	timeout           time.Duration
}

// parseBuildFlags parses build command flags and returns positional args.
// Parse errors and usage go to stderr, the caller's injected writer.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &buildFlags{}

	fs.StringVar(&f.title, "title", "", "metadata: document title")
	fs.StringVar(&f.author, "author", "", "metadata: document author")
	fs.StringArrayVar(&f.keywords, "keyword", nil, "metadata: keyword (repeatable)")
	fs.StringVar(&f.createdDate, "created-date", "", "metadata: date of creation YYYY-MM-DD")
	fs.StringVar(&f.modifiedDate, "modified-date", "", "metadata: date of modification YYYY-MM-DD")
	fs.BoolVar(&f.autoMetadata, "auto-metadata", false, "auto fill metadata with proper dates, title and keywords")
	fs.StringVarP(&f.output, "output", "o", defaultOutputPDF, "output file name")
	fs.StringVarP(&f.theme, "theme", "t", defaultThemeName, "theme name (bundled) or absolute path to a theme directory")
	fs.StringVarP(&f.schema, "schema", "s", resumy.SchemaJSONResume, "schema name (bundled) or absolute path to a schema file")
	fs.BoolVar(&f.disableValidation, "disable-validation", false, "disable schema validation, in case you want your own customization")
	fs.DurationVar(&f.timeout, "timeout", defaultBuildTimeout, "PDF generation timeout (e.g., 30s, 2m)")

	fs.Usage = func() { printBuildUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// validateFlags holds all flags for the validate command.
type validateFlags struct {
	schema string
}

// parseValidateFlags parses validate command flags and returns positional args.
func parseValidateFlags(args []string, stderr io.Writer) (*validateFlags, []string, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &validateFlags{}

	fs.StringVarP(&f.schema, "schema", "s", resumy.SchemaJSONResume, "schema name (bundled) or absolute path to a schema file")

	fs.Usage = func() { printValidateUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// outputFlags holds the single output flag shared by init, theme and
// normalize.
type outputFlags struct {
	output string
}

// parseOutputFlags parses a command with only an output flag.
func parseOutputFlags(name, defaultOutput string, stderr io.Writer, usage func(), args []string) (*outputFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &outputFlags{}

	fs.StringVarP(&f.output, "output", "o", defaultOutput, "output name")

	fs.Usage = usage

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
