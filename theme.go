package resumy

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// TemplateFilename is the HTML template every theme must provide.
const TemplateFilename = "theme.html"

// cssExtension identifies stylesheet files inside a theme directory.
const cssExtension = ".css"

// Theme is a directory holding a theme.html template and zero or more CSS
// files. The directory is abstracted as an fs.FS so themes can come from
// the embedded defaults or from an arbitrary path via os.DirFS.
type Theme struct {
	fsys fs.FS
}

// NewTheme wraps a filesystem rooted at a theme directory.
func NewTheme(fsys fs.FS) *Theme {
	return &Theme{fsys: fsys}
}

// Template returns the theme's HTML template source.
// Returns ErrTemplateNotFound when theme.html is absent.
func (t *Theme) Template() (string, error) {
	content, err := fs.ReadFile(t.fsys, TemplateFilename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, TemplateFilename)
		}
		return "", fmt.Errorf("reading theme template: %w", err)
	}
	return string(content), nil
}

// Stylesheets returns the contents of every .css file in the theme
// directory, non-recursively, in directory-listing order. Files without
// the .css extension are silently skipped; that is not an error
// condition.
func (t *Theme) Stylesheets() ([]string, error) {
	entries, err := fs.ReadDir(t.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing theme directory: %w", err)
	}

	var sheets []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != cssExtension {
			continue
		}
		content, err := fs.ReadFile(t.fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading stylesheet %s: %w", entry.Name(), err)
		}
		sheets = append(sheets, string(content))
	}
	return sheets, nil
}
