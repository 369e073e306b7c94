package output

import (
	"github.com/cottington/wealth-calculator/internal/domain"
)

// GenerateReport renders the analysis with the named formatter and saves it in
// dir. It returns the path of the written file.
func GenerateReport(a *domain.Analysis, format, dir string, opts Options) (string, error) {
	if a.Empty() {
		return "", ErrNoResult
	}
	f, err := NewFormatter(format, opts)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, a, dir)
}

// Render formats the analysis in memory.
func Render(a *domain.Analysis, format string, opts Options) ([]byte, Formatter, error) {
	if a.Empty() {
		return nil, nil, ErrNoResult
	}
	f, err := NewFormatter(format, opts)
	if err != nil {
		return nil, nil, err
	}
	data, err := f.Format(a)
	if err != nil {
		return nil, nil, err
	}
	return data, f, nil
}
