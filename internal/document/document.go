// Package document extracts translatable units from txt, docx, pdf and html
// files and reassembles translated output with the original unit count and
// ordering intact.
package document

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	readability "codeberg.org/readeck/go-readability/v2"
	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"

	"horse.fit/polyglot/internal/translation"
)

// File is an extracted document: ordered translatable units plus the
// separator used to reassemble them.
type File struct {
	Path      string
	Units     []string
	Separator string
}

// Extract loads a file and splits it into translatable units. The format is
// chosen by extension: .txt (blank-line paragraphs), .docx (paragraphs),
// .pdf (pages), .html/.htm (readable paragraphs).
func Extract(path string) (*File, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return extractTxt(path)
	case ".docx":
		return extractDocx(path)
	case ".pdf":
		return extractPDF(path)
	case ".html", ".htm":
		return extractHTML(path)
	default:
		return nil, fmt.Errorf("unsupported file format %q (supported: .txt, .docx, .pdf, .html)", filepath.Ext(path))
	}
}

// TranslateFile extracts a file, translates every unit in order through one
// adapter, and returns the reassembled text. The output always has the same
// unit count and ordering as the input.
func TranslateFile(ctx context.Context, translator translation.Translator, path string) (string, error) {
	extracted, err := Extract(path)
	if err != nil {
		return "", err
	}
	if len(extracted.Units) == 0 {
		return "", fmt.Errorf("%s: no translatable content", path)
	}

	translated, err := translator.TranslateBatch(ctx, extracted.Units)
	if err != nil {
		return "", fmt.Errorf("translate %s: %w", path, err)
	}
	if len(translated) != len(extracted.Units) {
		return "", fmt.Errorf("translate %s: unit count changed from %d to %d", path, len(extracted.Units), len(translated))
	}

	return strings.Join(translated, extracted.Separator), nil
}

func extractTxt(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &File{
		Path:      path,
		Units:     splitParagraphs(string(raw)),
		Separator: "\n\n",
	}, nil
}

func extractDocx(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parse docx %s: %w", path, err)
	}

	units := make([]string, 0, len(doc.Document.Body.Items))
	for _, item := range doc.Document.Body.Items {
		paragraph, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := strings.TrimSpace(paragraph.String())
		if text == "" {
			continue
		}
		units = append(units, text)
	}

	return &File{Path: path, Units: units, Separator: "\n\n"}, nil
}

func extractPDF(path string) (*File, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	units := make([]string, 0, reader.NumPage())
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract pdf page %d of %s: %w", pageNum, path, err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		units = append(units, text)
	}

	return &File{Path: path, Units: units, Separator: "\n\n"}, nil
}

func extractHTML(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	baseURL := &url.URL{Scheme: "file", Path: absPath}

	article, err := readability.FromReader(bytes.NewReader(raw), baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse html %s: %w", path, err)
	}

	var rendered bytes.Buffer
	if err := article.RenderText(&rendered); err != nil {
		return nil, fmt.Errorf("render html %s: %w", path, err)
	}

	return &File{
		Path:      path,
		Units:     splitParagraphs(rendered.String()),
		Separator: "\n\n",
	}, nil
}

// splitParagraphs splits on blank lines, dropping empty paragraphs while
// keeping the original order.
func splitParagraphs(raw string) []string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var units []string
	for _, block := range strings.Split(normalized, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		units = append(units, block)
	}
	return units
}
