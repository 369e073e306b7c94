package output

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"github.com/cottington/wealth-calculator/internal/domain"
)

// MarkdownFormatter renders the client report as GitHub-flavoured markdown.
type MarkdownFormatter struct {
	Options Options
}

func (m MarkdownFormatter) Name() string      { return "markdown" }
func (m MarkdownFormatter) Extension() string { return "md" }

func (m MarkdownFormatter) WithOptions(o Options) Formatter {
	m.Options = o
	return m
}

//go:embed templates/document.md.tmpl
var markdownTemplateSource string

var markdownTemplate = template.Must(template.New("document").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(markdownTemplateSource))

func (m MarkdownFormatter) Format(a *domain.Analysis) ([]byte, error) {
	doc, err := BuildDocument(a, m.Options)
	if err != nil {
		return nil, err
	}
	return RenderMarkdown(doc)
}

// RenderMarkdown executes the document template.
func RenderMarkdown(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
