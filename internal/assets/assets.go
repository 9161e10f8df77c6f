// Package assets bundles the schemas, themes and example configuration
// that ship inside the binary. Everything is served from an embedded
// filesystem; user-supplied absolute paths bypass this package entirely.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed schemas/*
var schemas embed.FS

//go:embed themes/*
var themes embed.FS

//go:embed config.example.yaml
var exampleConfig []byte

// DefaultThemeName is the theme used when none is requested.
const DefaultThemeName = "prairie"

// LoadSchema returns the raw bytes of an embedded schema by file name
// (e.g. "jsonresume.yaml"). Returns ErrSchemaNotFound if no such schema
// is bundled.
func LoadSchema(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := schemas.ReadFile("schemas/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	return content, nil
}

// ThemeFS returns a filesystem rooted at the named embedded theme
// directory. Returns ErrThemeNotFound if no such theme is bundled.
func ThemeFS(name string) (fs.FS, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	sub, err := fs.Sub(themes, "themes/"+name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	// fs.Sub succeeds for any syntactically valid path; probe the
	// directory so a missing theme surfaces here, not at render time.
	if _, err := fs.ReadDir(sub, "."); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return sub, nil
}

// DefaultThemeFS returns the bundled default theme.
func DefaultThemeFS() fs.FS {
	sub, err := ThemeFS(DefaultThemeName)
	if err != nil {
		// The default theme is embedded at build time; failing to find it
		// means a broken binary.
		panic("assets: default theme missing: " + err.Error())
	}
	return sub
}

// ExampleConfig returns the bundled example configuration file.
func ExampleConfig() []byte {
	return exampleConfig
}
