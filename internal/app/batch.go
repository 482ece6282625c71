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
	"horse.fit/polyglot/internal/document"
	"horse.fit/polyglot/internal/jobfile"
	"horse.fit/polyglot/internal/translation"
)

func runBatch(args []string) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 10*time.Minute, "Job timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "batch requires exactly one job file argument")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  polyglot batch [--timeout 10m] <job.json>")
		return 2
	}

	if envLoader != nil {
		_, _ = envLoader.Load()
	}

	job, err := jobfile.Load(strings.TrimSpace(fs.Arg(0)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Load job failed: %v\n", err)
		return 1
	}

	translator, err := translation.New(job.Provider, translation.Config{
		Source: job.Source,
		Target: job.Target,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var output []string

	if len(job.Texts) > 0 {
		translations, err := translator.TranslateBatch(ctx, job.Texts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Translate texts failed: %v\n", err)
			return 1
		}
		output = append(output, translations...)
	}

	for _, path := range job.Files {
		translated, err := document.TranslateFile(ctx, translator, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Translate file failed: %v\n", err)
			return 1
		}
		output = append(output, translated)
	}

	joined := strings.Join(output, "\n")
	if job.Output != nil {
		if err := os.WriteFile(*job.Output, []byte(joined+"\n"), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Write output failed: %v\n", err)
			return 1
		}
		fmt.Printf("batch provider=%s target=%s texts=%d files=%d out=%s\n",
			translator.Name(), translator.Target(), len(job.Texts), len(job.Files), *job.Output)
		return 0
	}

	fmt.Println(joined)
	return 0
}
