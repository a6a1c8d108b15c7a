// Package printer exports a rendered itinerary. Every backend receives the
// full print document, so output always carries all result tabs.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"auraquest/internal/config"
	"auraquest/internal/logging"
)

// Document is the Markdown print document and its title.
type Document struct {
	Title    string
	Markdown string
}

// Printer writes a Document somewhere and reports where.
type Printer interface {
	Print(ctx context.Context, doc Document) (string, error)
}

// New returns the backend for cfg.Format. out receives terminal output.
func New(cfg config.PrintConfig, out io.Writer) (Printer, error) {
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	switch cfg.Format {
	case config.PrintMarkdown, "":
		return &MarkdownPrinter{Dir: dir}, nil
	case config.PrintHTML:
		return &HTMLPrinter{Dir: dir}, nil
	case config.PrintPDF:
		return &PDFPrinter{Dir: dir, BrowserBin: cfg.BrowserBin}, nil
	case config.PrintTerminal:
		return &TerminalPrinter{Out: out, Width: 100}, nil
	default:
		return nil, fmt.Errorf("unsupported print format: %s", cfg.Format)
	}
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a title into a file name stem.
func Slug(title string) string {
	s := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if s == "" {
		return "itinerary"
	}
	if len(s) > 60 {
		s = strings.TrimRight(s[:60], "-")
	}
	return s
}

func writeFile(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	logging.Get(logging.CategoryPrint).Info("wrote %s (%d bytes)", path, len(data))
	return path, nil
}

// MarkdownPrinter writes <slug>.md.
type MarkdownPrinter struct {
	Dir string
}

func (p *MarkdownPrinter) Print(_ context.Context, doc Document) (string, error) {
	return writeFile(p.Dir, Slug(doc.Title)+".md", []byte(doc.Markdown))
}
