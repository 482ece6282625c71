package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"horse.fit/polyglot/internal/translation"
)

func runProviders(args []string) int {
	fs := flag.NewFlagSet("providers", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	defaultName := translation.DefaultProvider()
	for _, name := range translation.Names() {
		if name == defaultName {
			fmt.Printf("%s (default)\n", name)
			continue
		}
		fmt.Println(name)
	}
	return 0
}

func runLanguages(args []string) int {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	provider := fs.String("provider", "", "Translation backend name (default: TRANSLATION_PROVIDER)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	name := strings.TrimSpace(*provider)
	if name == "" && fs.NArg() == 1 {
		name = strings.TrimSpace(fs.Arg(0))
	}
	if name == "" {
		name = translation.DefaultProvider()
	}

	languages, err := translation.Languages(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	names := make([]string, 0, len(languages))
	for langName := range languages {
		names = append(names, langName)
	}
	sort.Strings(names)

	for _, langName := range names {
		fmt.Printf("%s\t%s\n", langName, languages[langName])
	}
	return 0
}
