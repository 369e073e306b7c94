package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/cottington/wealth-calculator/internal/domain"
)

// CSVFormatter exports the yearly schedules, one row per year. Projection and
// goal columns share the Year column; cells stay empty past a shorter horizon.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(a *domain.Analysis) ([]byte, error) {
	if a.Empty() {
		return nil, ErrNoResult
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	proj, goal := a.Projection, a.Goal
	drag := proj != nil && proj.FeeTax != nil

	header := []string{"Year"}
	if proj != nil {
		header = append(header, "NominalValue", "RealBuyingPower", "ShieldedValue", "ShieldedPremium")
		if drag {
			header = append(header, "NetBalance", "TotalInvested", "Gain", "TaxDrag", "RealAfterTax")
		}
	}
	if goal != nil {
		header = append(header, "GoalPremium", "GoalBalance")
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	years := 0
	if proj != nil {
		years = len(proj.Series)
	}
	if goal != nil && len(goal.Series) > years {
		years = len(goal.Series)
	}
	for i := 0; i < years; i++ {
		row := []string{intToString(i + 1)}
		if proj != nil {
			if i < len(proj.Series) {
				s := proj.Series[i]
				row = append(row, s.Nominal.StringFixed(2), s.RealPower.StringFixed(2), s.Shielded.StringFixed(2), s.ShieldedPremium.StringFixed(2))
				if drag && s.Drag != nil {
					d := s.Drag
					row = append(row, d.NetBalance.StringFixed(2), d.TotalInvested.StringFixed(2), d.Gain.StringFixed(2), d.TaxDrag.StringFixed(2), d.RealAfterTax.StringFixed(2))
				}
			} else {
				row = append(row, blanks(4)...)
				if drag {
					row = append(row, blanks(5)...)
				}
			}
		}
		if goal != nil {
			if i < len(goal.Series) {
				g := goal.Series[i]
				row = append(row, g.EscalatingPremium.StringFixed(2), g.ProjectedBalance.StringFixed(2))
			} else {
				row = append(row, blanks(2)...)
			}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func blanks(n int) []string { return make([]string, n) }

func intToString(i int) string { return strconv.Itoa(i) }
