package main

import (
	"fmt"
	"os"

	"github.com/resumy/go-resumy/internal/assets"
)

// runTheme materializes the bundled default theme as a new directory,
// scaffolding for a custom theme.
func runTheme(args []string, env *Environment) error {
	flags, _, err := parseOutputFlags("theme", defaultThemeOutput, env.Stderr, func() { printThemeUsage(env.Stderr) }, args)
	if err != nil {
		return err
	}

	if err := os.CopyFS(flags.output, assets.DefaultThemeFS()); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyTheme, err)
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	return nil
}
