package main

import (
	"fmt"
	"os"

	resumy "github.com/resumy/go-resumy"
	"github.com/resumy/go-resumy/internal/fileutil"
	"github.com/resumy/go-resumy/internal/yamlutil"
)

// runNormalize validates a legacy config and writes its JSON Resume
// equivalent as YAML.
func runNormalize(args []string, env *Environment) error {
	flags, pos, err := parseOutputFlags("normalize", defaultConfigOutput, env.Stderr, func() { printNormalizeUsage(env.Stderr) }, args)
	if err != nil {
		return err
	}
	if len(pos) != 1 {
		printNormalizeUsage(env.Stderr)
		return ErrMissingConfigPath
	}

	doc, err := resumy.LoadDocument(pos[0])
	if err != nil {
		return err
	}

	if err := validateDocument(doc, resumy.SchemaLegacy); err != nil {
		return err
	}

	normalized, err := resumy.Transform(doc)
	if err != nil {
		return err
	}

	data, err := yamlutil.Marshal(map[string]any(normalized))
	if err != nil {
		return err
	}

	if err := os.WriteFile(flags.output, data, fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteConfig, err)
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	return nil
}
