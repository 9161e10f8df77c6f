package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	resumy "github.com/resumy/go-resumy"
	"github.com/resumy/go-resumy/internal/assets"
	"github.com/resumy/go-resumy/internal/fileutil"
	"github.com/resumy/go-resumy/internal/schema"
)

// runBuild loads a config, validates it, converts legacy documents to the
// JSON Resume shape, and renders the themed PDF.
func runBuild(args []string, env *Environment) error {
	flags, pos, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(pos) != 1 {
		printBuildUsage(env.Stderr)
		return ErrMissingConfigPath
	}

	doc, err := resumy.LoadDocument(pos[0])
	if err != nil {
		return err
	}

	if !flags.disableValidation {
		if err := validateDocument(doc, flags.schema); err != nil {
			return err
		}
	}

	// Metadata defaults derive from the original document (the author
	// falls back to the legacy profile name), so normalize before the
	// dialect transformation.
	meta := resumy.Metadata{
		Title:    flags.title,
		Author:   flags.author,
		Keywords: flags.keywords,
		Created:  flags.createdDate,
		Modified: flags.modifiedDate,
	}
	meta = resumy.NormalizeMetadata(meta, flags.autoMetadata, flags.output, doc, env.Now())

	if resumy.IsLegacy(doc) {
		doc, err = resumy.Transform(doc)
		if err != nil {
			return err
		}
	}

	themeFS, err := resolveTheme(flags.theme)
	if err != nil {
		return err
	}

	svc := env.NewBuilder(flags.timeout)
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), flags.timeout)
	defer cancel()

	pdf, err := svc.Build(ctx, resumy.BuildInput{
		Document: doc,
		Theme:    resumy.NewTheme(themeFS),
		Metadata: meta,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(flags.output, pdf, fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWritePDF, err)
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	return nil
}

// validateDocument checks doc against a bundled schema name or an
// absolute schema path.
func validateDocument(doc resumy.Document, ref string) error {
	schemaDoc, err := resumy.LoadSchema(ref)
	if err != nil {
		return err
	}
	return schema.Validate(doc, schemaDoc)
}

// resolveTheme maps a theme reference to a theme filesystem: absolute
// paths are used verbatim, anything else names a bundled theme.
func resolveTheme(nameOrPath string) (fs.FS, error) {
	if !filepath.IsAbs(nameOrPath) {
		return assets.ThemeFS(nameOrPath)
	}

	info, err := os.Stat(nameOrPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w", assets.ErrThemeNotFound, err)
		}
		return nil, fmt.Errorf("reading theme directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", assets.ErrThemeNotFound, nameOrPath)
	}
	return os.DirFS(nameOrPath), nil
}
