package printer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 52rem; margin: 2rem auto; color: #0f172a; line-height: 1.5; }
  h1 { text-transform: uppercase; font-style: italic; letter-spacing: -0.02em; }
  h2 { border-bottom: 3px solid #0f172a; padding-bottom: .25rem; margin-top: 2.5rem; }
  h3 { color: #0d9488; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #e2e8f0; padding: .4rem .6rem; }
  blockquote { color: #475569; font-style: italic; border-left: 3px solid #14b8a6; margin-left: 0; padding-left: 1rem; }
  hr { border: none; page-break-after: always; }
  @media print { body { margin: 0; max-width: none; } h2 { page-break-after: avoid; } }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// RenderHTML converts a Document into a standalone printable HTML page.
func RenderHTML(doc Document) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(doc.Markdown), &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	var out bytes.Buffer
	err := page.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{doc.Title, template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return out.Bytes(), nil
}

// HTMLPrinter writes <slug>.html.
type HTMLPrinter struct {
	Dir string
}

func (p *HTMLPrinter) Print(_ context.Context, doc Document) (string, error) {
	html, err := RenderHTML(doc)
	if err != nil {
		return "", err
	}
	return writeFile(p.Dir, Slug(doc.Title)+".html", html)
}
