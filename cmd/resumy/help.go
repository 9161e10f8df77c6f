package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumy <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build a resume PDF from a config file")
	fmt.Fprintln(w, "  validate   Check that a config file is valid")
	fmt.Fprintln(w, "  init       Create a config file from the bundled example")
	fmt.Fprintln(w, "  theme      Create a new theme from the bundled default")
	fmt.Fprintln(w, "  normalize  Transform a legacy config to the JSON Resume format")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'resumy help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumy build CONFIG_PATH [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a resume PDF from a YAML config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>        Output file name (default out.pdf)")
	fmt.Fprintln(w, "  -t, --theme <s>            Theme name or absolute path to a theme directory (default prairie)")
	fmt.Fprintln(w, "  -s, --schema <s>           Schema name or absolute path to a schema file (default jsonresume.yaml)")
	fmt.Fprintln(w, "      --disable-validation   Disable schema validation")
	fmt.Fprintln(w, "      --timeout <d>          PDF generation timeout (default 60s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Metadata:")
	fmt.Fprintln(w, "      --title <s>            Document title")
	fmt.Fprintln(w, "      --author <s>           Document author")
	fmt.Fprintln(w, "      --keyword <s>          Keyword, repeatable")
	fmt.Fprintln(w, "      --created-date <s>     Date of creation YYYY-MM-DD")
	fmt.Fprintln(w, "      --modified-date <s>    Date of modification YYYY-MM-DD")
	fmt.Fprintln(w, "      --auto-metadata        Auto fill metadata with dates, title and keywords")
}

// printValidateUsage prints usage for the validate command.
func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumy validate CONFIG_PATH [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that a config file conforms to a schema.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --schema <s>   Schema name or absolute path to a schema file (default jsonresume.yaml)")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumy init [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create a config file from the bundled example.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>   Output config filename (default myconfig.yaml)")
}

// printThemeUsage prints usage for the theme command.
func printThemeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumy theme [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create a new theme directory from the bundled default.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>   Output theme directory (default mytheme)")
}

// printNormalizeUsage prints usage for the normalize command.
func printNormalizeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumy normalize CONFIG_PATH [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Validate a legacy config and write its JSON Resume equivalent.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>   Output config filename (default myconfig.yaml)")
}

// runHelp shows help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}
	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "validate":
		printValidateUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "theme":
		printThemeUsage(env.Stdout)
	case "normalize":
		printNormalizeUsage(env.Stdout)
	default:
		printUsage(env.Stdout)
	}
}
