package output

import (
	"github.com/charmbracelet/glamour"
	"github.com/cottington/wealth-calculator/internal/domain"
)

const defaultTerminalWidth = 100

// TerminalFormatter renders the markdown document for a terminal with glamour.
// The "notty" style keeps the output free of escape codes, so it is also safe
// to redirect into a file.
type TerminalFormatter struct {
	Options Options
	Style   string
}

func (t TerminalFormatter) Name() string      { return "terminal" }
func (t TerminalFormatter) Extension() string { return "txt" }

func (t TerminalFormatter) WithOptions(o Options) Formatter {
	t.Options = o
	return t
}

func (t TerminalFormatter) Format(a *domain.Analysis) ([]byte, error) {
	doc, err := BuildDocument(a, t.Options)
	if err != nil {
		return nil, err
	}
	md, err := RenderMarkdown(doc)
	if err != nil {
		return nil, err
	}

	width := t.Options.Width
	if width <= 0 {
		width = defaultTerminalWidth
	}
	style := t.Style
	if style == "" {
		style = "notty"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	out, err := renderer.RenderBytes(md)
	if err != nil {
		return nil, err
	}
	return out, nil
}
