package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

func runTranslate(args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	flags := addProviderFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "translate requires at least one text argument")
		printTranslateUsage()
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

	// One round trip per text, so the command budget scales with the batch.
	ctx, cancel := context.WithTimeout(context.Background(), *flags.timeout*time.Duration(fs.NArg()))
	defer cancel()

	translations, err := translator.TranslateBatch(ctx, fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Translate failed: %v\n", err)
		return 1
	}

	for _, translated := range translations {
		fmt.Println(translated)
	}
	return 0
}

func printTranslateUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  polyglot translate --target <lang> [--provider google] [--source auto] <text> [text ...]")
}
