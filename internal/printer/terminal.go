package printer

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderTerminal renders Markdown for a terminal of the given width. An empty
// style picks dark or light from the terminal background.
func RenderTerminal(markdown string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// TerminalPrinter writes the styled document to Out.
type TerminalPrinter struct {
	Out   io.Writer
	Width int
	Style string
}

func (p *TerminalPrinter) Print(_ context.Context, doc Document) (string, error) {
	out, err := RenderTerminal(doc.Markdown, p.Width, p.Style)
	if err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.Out, out); err != nil {
		return "", fmt.Errorf("write terminal output: %w", err)
	}
	return "terminal", nil
}
