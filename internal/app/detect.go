package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"horse.fit/polyglot/internal/cli"
	"horse.fit/polyglot/internal/langdetect"
)

func runDetect(args []string) int {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	engine := fs.String("engine", "offline", "Detection engine: offline or api")
	timeout := fs.Duration("timeout", 15*time.Second, "Per-request timeout for the api engine")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "detect requires at least one text argument")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  polyglot detect [--engine offline|api] <text> [text ...]")
		return 2
	}

	texts := fs.Args()

	switch strings.ToLower(strings.TrimSpace(*engine)) {
	case "offline":
		for i, code := range langdetect.DetectBatchISO6391(texts) {
			if code == "" {
				code = "und"
			}
			fmt.Printf("%s\t%s\n", code, texts[i])
		}
		return 0
	case "api":
		if envLoader != nil {
			_, _ = envLoader.Load()
		}

		client, err := langdetect.NewClient(langdetect.Options{Timeout: *timeout})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		ctx, cancel := context.WithTimeout(context.Background(), *timeout*time.Duration(len(texts)))
		defer cancel()

		codes, err := client.DetectBatch(ctx, texts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Detect failed: %v\n", err)
			return 1
		}
		for i, code := range codes {
			fmt.Printf("%s\t%s\n", code, texts[i])
		}
		return 0
	default:
		fmt.Fprintln(os.Stderr, "--engine must be offline or api")
		return 2
	}
}
