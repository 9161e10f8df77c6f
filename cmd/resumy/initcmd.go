package main

import (
	"fmt"
	"os"

	"github.com/resumy/go-resumy/internal/assets"
	"github.com/resumy/go-resumy/internal/fileutil"
)

// runInit copies the bundled example config to the requested path.
func runInit(args []string, env *Environment) error {
	flags, _, err := parseOutputFlags("init", defaultConfigOutput, env.Stderr, func() { printInitUsage(env.Stderr) }, args)
	if err != nil {
		return err
	}

	if err := os.WriteFile(flags.output, assets.ExampleConfig(), fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteConfig, err)
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	return nil
}
