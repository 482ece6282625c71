package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	docx "github.com/fumiama/go-docx"
)

type upperCaseTranslator struct {
	calls int
}

func (u *upperCaseTranslator) Translate(_ context.Context, text string) (string, error) {
	return strings.ToUpper(text), nil
}

func (u *upperCaseTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	u.calls++
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		translated, err := u.Translate(ctx, text)
		if err != nil {
			return nil, err
		}
		out = append(out, translated)
	}
	return out, nil
}

func (u *upperCaseTranslator) Name() string                 { return "uppercase" }
func (u *upperCaseTranslator) Source() string               { return "en" }
func (u *upperCaseTranslator) Target() string               { return "en" }
func (u *upperCaseTranslator) SetSource(string) error       { return nil }
func (u *upperCaseTranslator) SetTarget(string) error       { return nil }
func (u *upperCaseTranslator) SupportedLanguages() []string { return []string{"english"} }
func (u *upperCaseTranslator) SupportedLanguagesMap() map[string]string {
	return map[string]string{"english": "en"}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestExtractTxtParagraphs(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "letter.txt", "Dear reader,\n\nthe second paragraph.\n\n\n\nthe third one.\n")

	extracted, err := Extract(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"Dear reader,", "the second paragraph.", "the third one."}
	if len(extracted.Units) != len(want) {
		t.Fatalf("unexpected unit count: %v", extracted.Units)
	}
	for i, unit := range want {
		if extracted.Units[i] != unit {
			t.Fatalf("unit %d: got %q, want %q", i, extracted.Units[i], unit)
		}
	}
}

func TestTranslateFilePreservesUnitsAndOrder(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "letter.txt", "first\n\nsecond\n\nthird")
	translator := &upperCaseTranslator{}

	got, err := TranslateFile(context.Background(), translator, path)
	if err != nil {
		t.Fatalf("translate file: %v", err)
	}
	if got != "FIRST\n\nSECOND\n\nTHIRD" {
		t.Fatalf("unexpected output: %q", got)
	}
	if translator.calls != 1 {
		t.Fatalf("expected one batch call, got %d", translator.calls)
	}
}

func writeTempDocx(t *testing.T, paragraphs ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "letter.docx")

	w := docx.New().WithDefaultTheme()
	for _, paragraph := range paragraphs {
		w.AddParagraph().AddText(paragraph)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	defer f.Close()
	if _, err := w.WriteTo(f); err != nil {
		t.Fatalf("write docx: %v", err)
	}
	return path
}

func TestExtractDocxParagraphs(t *testing.T) {
	t.Parallel()

	path := writeTempDocx(t, "first", "second", "third")

	extracted, err := Extract(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(extracted.Units) != len(want) {
		t.Fatalf("unexpected unit count: %v", extracted.Units)
	}
	for i, unit := range want {
		if extracted.Units[i] != unit {
			t.Fatalf("unit %d: got %q, want %q", i, extracted.Units[i], unit)
		}
	}
}

func TestTranslateFileDocx(t *testing.T) {
	t.Parallel()

	path := writeTempDocx(t, "first", "second", "third")
	translator := &upperCaseTranslator{}

	got, err := TranslateFile(context.Background(), translator, path)
	if err != nil {
		t.Fatalf("translate file: %v", err)
	}
	if got != "FIRST\n\nSECOND\n\nTHIRD" {
		t.Fatalf("unexpected output: %q", got)
	}
	if translator.calls != 1 {
		t.Fatalf("expected one batch call, got %d", translator.calls)
	}
}

func TestTranslateFileCarriageReturns(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "windows.txt", "one\r\n\r\ntwo")

	got, err := TranslateFile(context.Background(), &upperCaseTranslator{}, path)
	if err != nil {
		t.Fatalf("translate file: %v", err)
	}
	if got != "ONE\n\nTWO" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestExtractUnknownExtension(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "notes.xyz", "irrelevant")

	if _, err := Extract(path); err == nil || !strings.Contains(err.Error(), ".xyz") {
		t.Fatalf("expected unsupported format error naming the extension, got %v", err)
	}
}

func TestTranslateFileEmptyDocument(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "empty.txt", "   \n\n  \n")

	_, err := TranslateFile(context.Background(), &upperCaseTranslator{}, path)
	if err == nil {
		t.Fatal("expected error for a document without translatable content")
	}
}

func TestTranslateFileMissingFile(t *testing.T) {
	t.Parallel()

	_, err := TranslateFile(context.Background(), &upperCaseTranslator{}, filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
