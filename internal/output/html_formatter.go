package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter produces a standalone HTML report: the markdown document
// converted with goldmark and wrapped in a styled page.
type HTMLFormatter struct {
	Options Options
}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

func (h HTMLFormatter) WithOptions(o Options) Formatter {
	h.Options = o
	return h
}

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

var markdownConverter = goldmark.New(goldmark.WithExtensions(extension.GFM))

func (h HTMLFormatter) Format(a *domain.Analysis) ([]byte, error) {
	doc, err := BuildDocument(a, h.Options)
	if err != nil {
		return nil, err
	}
	md, err := RenderMarkdown(doc)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := markdownConverter.Convert(md, &body); err != nil {
		return nil, err
	}

	data := struct {
		Title       string
		PreparedFor string
		Body        template.HTML
	}{doc.Title, doc.PreparedFor, template.HTML(body.String())}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
