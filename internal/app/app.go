package app

import (
	"fmt"
	"os"
	"strings"
)

// Run executes the CLI command and returns a process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "help", "--help", "-h":
		printUsage()
		return 0
	case "providers":
		return runProviders(args[1:])
	case "languages":
		return runLanguages(args[1:])
	case "translate":
		return runTranslate(args[1:])
	case "file":
		return runFile(args[1:])
	case "batch":
		return runBatch(args[1:])
	case "detect":
		return runDetect(args[1:])
	case "serve":
		return runServe(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "polyglot CLI")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  polyglot <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  providers  List registered translation backends")
	fmt.Fprintln(os.Stderr, "  languages  Show the language table of one backend")
	fmt.Fprintln(os.Stderr, "  translate  Translate texts given as arguments")
	fmt.Fprintln(os.Stderr, "  file       Translate a txt, docx, pdf or html file")
	fmt.Fprintln(os.Stderr, "  batch      Run a JSON job file")
	fmt.Fprintln(os.Stderr, "  detect     Detect the language of texts")
	fmt.Fprintln(os.Stderr, "  serve      Start the Echo API server")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Use \"polyglot <command> -h\" for command-specific flags.")
}
