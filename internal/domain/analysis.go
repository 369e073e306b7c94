package domain

import "time"

// DefaultCurrency is used when no ISO currency code is configured.
const DefaultCurrency = "ZAR"

// Analysis is the last computed result of one session. Renderers and exporters
// work from it, so producing a report never recomputes anything.
type Analysis struct {
	ClientName  string            `json:"client_name"`
	Currency    string            `json:"currency"`
	GeneratedAt time.Time         `json:"generated_at"`
	Projection  *ProjectionResult `json:"projection,omitempty"`
	Goal        *GoalResult       `json:"goal,omitempty"`
}

// Empty reports whether nothing has been computed yet.
func (a *Analysis) Empty() bool {
	return a == nil || (a.Projection == nil && a.Goal == nil)
}

// Configuration is the on-disk (YAML) shape of a calculator run.
type Configuration struct {
	ClientName string              `yaml:"client_name" json:"client_name"`
	Currency   string              `yaml:"currency,omitempty" json:"currency,omitempty"`
	Projection *ScenarioParameters `yaml:"projection,omitempty" json:"projection,omitempty"`
	Goal       *GoalParameters     `yaml:"goal,omitempty" json:"goal,omitempty"`
	Report     ReportSettings      `yaml:"report,omitempty" json:"report,omitempty"`
}

// ReportSettings tunes document export.
type ReportSettings struct {
	// ScheduleRows truncates the appendix schedule; 0 prints every year.
	ScheduleRows int `yaml:"schedule_rows,omitempty" json:"schedule_rows,omitempty"`
}
