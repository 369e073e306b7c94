package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cottington/wealth-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(a *domain.Analysis) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when the output is saved.
	Extension() string
}

// Options tune the formatters that render the client document.
type Options struct {
	// ScheduleRows truncates appendix schedules to their first rows plus the final year; 0 keeps all.
	ScheduleRows int
	// Width is the wrap width of terminal output; 0 uses the default.
	Width int
}

// configurable is implemented by formatters that honour Options.
type configurable interface {
	WithOptions(Options) Formatter
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID  string
	Ext string
	F   func(*domain.Analysis) ([]byte, error)
}

func (ff FormatterFunc) Format(a *domain.Analysis) ([]byte, error) { return ff.F(a) }
func (ff FormatterFunc) Name() string                              { return ff.ID }
func (ff FormatterFunc) Extension() string                         { return ff.Ext }

// WriteFormatted runs a formatter and writes the output into dir under the
// client's report file name.
func WriteFormatted(f Formatter, a *domain.Analysis, dir string) (string, error) {
	data, err := f.Format(a)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, ReportFilename(a.ClientName, f.Extension()))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// ReportFilename builds "Cottington_Report_<Client_Name>.<ext>".
func ReportFilename(client, ext string) string {
	client = strings.Join(strings.Fields(client), "_")
	if client == "" {
		client = "Valued_Client"
	}
	client = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' {
			return '_'
		}
		return r
	}, client)
	return fmt.Sprintf("Cottington_Report_%s.%s", client, ext)
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	JSONFormatter{},
	MarkdownFormatter{},
	TerminalFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	// try normalized name
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// NewFormatter resolves a formatter by name or alias and applies opts.
func NewFormatter(name string, opts Options) (Formatter, error) {
	f := GetFormatterByName(name)
	if f == nil {
		return nil, unsupportedFormat(name)
	}
	if c, ok := f.(configurable); ok {
		f = c.WithOptions(opts)
	}
	return f, nil
}

func unsupportedFormat(name string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"md":           "markdown",
	"text":         "console",
	"txt":          "console",
	"report":       "html",
	"html-report":  "html",
	"glamour":      "terminal",
	"tty":          "terminal",
	"json-pretty":  "json",
	"csv-schedule": "csv",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
