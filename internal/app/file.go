package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"horse.fit/polyglot/internal/document"
)

func runFile(args []string) int {
	fs := flag.NewFlagSet("file", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	flags := addProviderFlags(fs)
	out := fs.String("out", "", "Write the translation to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "file requires exactly one path argument")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  polyglot file --target <lang> [--provider google] [--out out.txt] <path>")
		return 2
	}
	if strings.TrimSpace(*flags.target) == "" {
		fmt.Fprintln(os.Stderr, "--target is required")
		return 2
	}

	flags.loadEnv()

	translator, err := flags.build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	path := strings.TrimSpace(fs.Arg(0))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	translated, err := document.TranslateFile(ctx, translator, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Translate file failed: %v\n", err)
		return 1
	}

	if target := strings.TrimSpace(*out); target != "" {
		if err := os.WriteFile(target, []byte(translated+"\n"), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Write output failed: %v\n", err)
			return 1
		}
		fmt.Printf("Translated %s -> %s\n", path, target)
		return 0
	}

	fmt.Println(translated)
	return 0
}
