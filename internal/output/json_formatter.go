package output

import (
	"encoding/json"

	"github.com/cottington/wealth-calculator/internal/domain"
)

// JSONFormatter serializes the analysis as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(a *domain.Analysis) ([]byte, error) {
	if a.Empty() {
		return nil, ErrNoResult
	}
	return json.MarshalIndent(a, "", "  ")
}
