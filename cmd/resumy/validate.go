package main

import (
	"fmt"

	resumy "github.com/resumy/go-resumy"
)

// runValidate checks a config file against a schema and reports the
// outcome.
func runValidate(args []string, env *Environment) error {
	flags, pos, err := parseValidateFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(pos) != 1 {
		printValidateUsage(env.Stderr)
		return ErrMissingConfigPath
	}

	doc, err := resumy.LoadDocument(pos[0])
	if err != nil {
		return err
	}

	if err := validateDocument(doc, flags.schema); err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, "Your config file is valid ✔")
	return nil
}
