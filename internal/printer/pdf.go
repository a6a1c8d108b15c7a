package printer

import (
	"context"
	"fmt"
	"io"

	"auraquest/internal/logging"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// PDFPrinter renders the HTML page in headless Chrome and saves the browser's
// own print output as <slug>.pdf.
type PDFPrinter struct {
	Dir string

	// BrowserBin is the Chrome binary; empty lets rod find or download one.
	BrowserBin string
}

func (p *PDFPrinter) Print(ctx context.Context, doc Document) (string, error) {
	html, err := RenderHTML(doc)
	if err != nil {
		return "", err
	}
	pdf, err := p.render(ctx, string(html))
	if err != nil {
		return "", err
	}
	return writeFile(p.Dir, Slug(doc.Title)+".pdf", pdf)
}

func (p *PDFPrinter) render(ctx context.Context, html string) ([]byte, error) {
	log := logging.Get(logging.CategoryPrint)

	l := launcher.New().Headless(true).Context(ctx)
	if p.BrowserBin != "" {
		l = l.Bin(p.BrowserBin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	defer func() { _ = browser.Close() }()
	log.Debug("chrome connected at %s", controlURL)

	pg, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	if err := pg.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if err := pg.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait for document: %w", err)
	}

	stream, err := pg.PDF(&proto.PagePrintToPDF{PrintBackground: true})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return data, nil
}
