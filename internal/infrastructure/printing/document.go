package printing

import (
	"bytes"
	"context"
	"html/template"
	"strings"
)

// Document accumulates receipt or report content line by line and renders it
// to PDF exactly once. Add methods are chainable and record the first misuse
// instead of panicking; Finalize surfaces it. After Finalize the document is
// sealed: further Add calls and repeated Finalize calls fail.
type Document struct {
	title     string
	paper     PaperSize
	margins   Margins
	body      []string
	finalized bool
	data      []byte
	err       *RenderError
}

// NewDocument creates an empty document with the given title rendered as the
// top heading.
func NewDocument(title string, paper PaperSize) *Document {
	d := &Document{
		title:   title,
		paper:   paper,
		margins: DefaultMargins(),
	}
	if paper.IsReceipt() {
		d.margins = ReceiptMargins()
	}
	if strings.TrimSpace(title) == "" {
		d.fail(ErrCodeInvalidHTML, "document title cannot be empty")
	}
	if !paper.IsValid() {
		d.fail(ErrCodeInvalidPaperSize, "invalid paper size: "+string(paper))
	}
	return d
}

func (d *Document) fail(code, message string) {
	if d.err == nil {
		d.err = NewRenderError(code, message, nil)
	}
}

func (d *Document) append(html string) *Document {
	if d.finalized {
		d.fail(ErrCodeFinalized, "cannot add content after finalize")
		return d
	}
	d.body = append(d.body, html)
	return d
}

// AddHeading adds a section heading.
func (d *Document) AddHeading(text string) *Document {
	return d.append("<h2>" + template.HTMLEscapeString(text) + "</h2>")
}

// AddLine adds a plain content line.
func (d *Document) AddLine(text string) *Document {
	return d.append("<p>" + template.HTMLEscapeString(text) + "</p>")
}

// AddDivider adds a horizontal rule between sections.
func (d *Document) AddDivider() *Document {
	return d.append("<hr>")
}

// AddTotal adds an emphasized total line.
func (d *Document) AddTotal(text string) *Document {
	return d.append("<p class=\"total\"><strong>" + template.HTMLEscapeString(text) + "</strong></p>")
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body { font-family: "Helvetica Neue", Arial, sans-serif; font-size: 12px; color: #111; }
h1 { font-size: 16px; text-align: center; margin: 0 0 8px; }
h2 { font-size: 13px; margin: 12px 0 4px; }
p { margin: 2px 0; }
p.total { margin-top: 8px; font-size: 13px; }
hr { border: none; border-top: 1px dashed #666; margin: 8px 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Body}}{{.}}
{{end}}</body>
</html>`))

// HTML composes the full document markup.
func (d *Document) HTML() (string, error) {
	if d.err != nil {
		return "", d.err
	}

	body := make([]template.HTML, len(d.body))
	for i, line := range d.body {
		body[i] = template.HTML(line)
	}

	var buf bytes.Buffer
	err := documentTemplate.Execute(&buf, struct {
		Title string
		Body  []template.HTML
	}{Title: d.title, Body: body})
	if err != nil {
		return "", NewRenderError(ErrCodeInvalidHTML, "document template failed", err)
	}
	return buf.String(), nil
}

// Finalize renders the accumulated content to PDF. A document can only be
// finalized once; calling it again returns ErrCodeFinalized.
func (d *Document) Finalize(ctx context.Context, renderer PDFRenderer) ([]byte, error) {
	if d.finalized {
		return nil, NewRenderError(ErrCodeFinalized, "document already finalized", nil)
	}
	if d.err != nil {
		return nil, d.err
	}

	html, err := d.HTML()
	if err != nil {
		return nil, err
	}

	d.finalized = true

	result, err := renderer.Render(ctx, &RenderRequest{
		HTML:        html,
		PaperSize:   d.paper,
		Orientation: OrientationPortrait,
		Margins:     d.margins,
		Title:       d.title,
	})
	if err != nil {
		return nil, err
	}

	d.data = result.PDFData
	return d.data, nil
}

// Bytes returns the rendered PDF after a successful Finalize, nil before.
func (d *Document) Bytes() []byte {
	return d.data
}
