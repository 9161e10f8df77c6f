package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/resumy/go-resumy/internal/assets"
)

// Default file names for CLI operations.
const (
	defaultOutputPDF    = "out.pdf"
	defaultConfigOutput = "myconfig.yaml"
	defaultThemeOutput  = "mytheme"
	defaultThemeName    = assets.DefaultThemeName
)

// Sentinel errors for CLI argument handling.
var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrMissingConfigPath = errors.New("missing CONFIG_PATH argument")
	ErrWritePDF          = errors.New("failed to write PDF file")
	ErrWriteConfig       = errors.New("failed to write config file")
	ErrCopyTheme         = errors.New("failed to copy theme directory")
)

// run dispatches to the requested subcommand and returns a process exit
// code. Every error is reported on env.Stderr here, at the command
// boundary, and converted to an exit code; nothing deeper in the pipeline
// prints or retries.
func run(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch args[0] {
	case "build":
		err = runBuild(args[1:], env)
	case "validate":
		err = runValidate(args[1:], env)
	case "init":
		err = runInit(args[1:], env)
	case "theme":
		err = runTheme(args[1:], env)
	case "normalize":
		err = runNormalize(args[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "resumy %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args[1:], env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "%v: %q\n\n", ErrUnknownCommand, args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		// pflag returns ErrHelp after printing usage for -h/--help.
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
