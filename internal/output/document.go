package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/cottington/wealth-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

const (
	reportTitle   = "COTTINGTON CAPITAL"
	reportTagline = "Wealth Architecture & Strategic Advisory"

	// Disclaimer is printed at the foot of every client report.
	Disclaimer = "This document contains proprietary financial projections generated by Cottington Capital. " +
		"'Real Value' is calculated using the Fisher Equation to adjust for inflation. " +
		"These figures are mathematical estimates based on the parameters provided and assume a constant rate of return. " +
		"They do not account for tax implications or market volatility unless explicitly stated."

	strategyIntro = "To neutralize inflation, an 'Annual Escalation' strategy is recommended. " +
		"By increasing contributions annually to match inflation, the projected Nominal Value increases to:"
)

// Table is a rendered table; every cell is already formatted.
type Table struct {
	Headers []string
	Rows    [][]string
	// Omitted counts the schedule rows dropped by truncation.
	Omitted int
}

// Section is one block of the client report. Empty parts are skipped when rendering.
type Section struct {
	Heading   string
	Intro     string
	Table     *Table
	Warning   string
	Highlight string
	Notes     []string
	Bullets   []string
}

// Document is the format-neutral client report. The markdown, html and
// terminal formatters all render the same Document.
type Document struct {
	Title       string
	Tagline     string
	PreparedFor string
	Date        string
	Sections    []Section
	Disclaimer  string
}

// BuildDocument lays out the report for an analysis. It only formats values
// that were already computed.
func BuildDocument(a *domain.Analysis, opts Options) (*Document, error) {
	if a.Empty() {
		return nil, ErrNoResult
	}
	cur := currencyOf(a)
	doc := &Document{
		Title:       reportTitle,
		Tagline:     reportTagline,
		PreparedFor: strings.ToUpper(clientOrDefault(a.ClientName)),
		Date:        dateutil.ReportDate(a.GeneratedAt),
		Disclaimer:  Disclaimer,
	}

	n := 0
	heading := func(title string) string {
		n++
		return fmt.Sprintf("%d. %s", n, title)
	}

	if p := a.Projection; p != nil {
		adv := AnalyzeProjection(p, cur)
		doc.Sections = append(doc.Sections,
			Section{Heading: heading("CLIENT PARAMETERS"), Table: keyValueTable("Parameter", "Value", withMaturity(projectionParameters(p.Parameters, cur), a.GeneratedAt, p.Parameters.Years))},
			Section{Heading: heading("INFLATION IMPACT AUDIT"), Table: keyValueTable("Metric", "Projected Value", auditRows(p, adv, cur)), Warning: "WARNING: " + adv.Warning},
			Section{
				Heading:   heading("COTTINGTON RECOVERY STRATEGY"),
				Intro:     strategyIntro,
				Highlight: FormatWhole(adv.ShieldedValue, cur),
				Notes:     nonEmpty(adv.Advice, adv.AdvantageSummary),
			},
		)
	}
	if g := a.Goal; g != nil {
		if a.Projection == nil {
			doc.Sections = append(doc.Sections, Section{
				Heading: heading("CLIENT PARAMETERS"),
				Table:   keyValueTable("Parameter", "Value", withMaturity(goalParameters(g.Parameters, cur), a.GeneratedAt, g.Parameters.Years)),
			})
			doc.Sections = append(doc.Sections, goalSection(heading("GOAL PLANNING"), g, cur, nil))
		} else {
			doc.Sections = append(doc.Sections, goalSection(heading("GOAL PLANNING"), g, cur, goalParameters(g.Parameters, cur)))
		}
	}

	if p := a.Projection; p != nil {
		doc.Sections = append(doc.Sections, Section{
			Heading: "APPENDIX: REQUIRED CONTRIBUTION SCHEDULE",
			Table:   truncate(projectionSchedule(p, cur), opts.ScheduleRows),
		})
	}
	if g := a.Goal; g != nil && !g.Degenerate {
		doc.Sections = append(doc.Sections, Section{
			Heading: "APPENDIX: GOAL CONTRIBUTION SCHEDULE",
			Table:   truncate(goalSchedule(g, cur), opts.ScheduleRows),
		})
	}
	doc.Sections = append(doc.Sections, Section{Heading: "MODELING ASSUMPTIONS", Bullets: GenerateAssumptions(a)})
	return doc, nil
}

type labeled struct{ label, value string }

func keyValueTable(left, right string, rows []labeled) *Table {
	t := &Table{Headers: []string{left, right}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.label, r.value})
	}
	return t
}

func projectionParameters(p domain.ScenarioParameters, cur string) []labeled {
	rows := []labeled{
		{"Initial Investment", FormatCurrency(p.Principal, cur)},
		{"Contribution", fmt.Sprintf("%s (%s)", FormatCurrency(p.Contribution, cur), p.Frequency.Label())},
		{"Annual Return (Rate)", FormatRate(p.RatePct)},
		{"Inflation (CPI)", FormatRate(p.InflationPct)},
		{"Duration", yearsLabel(p.Years)},
		{"Timing", p.Timing.Label()},
	}
	if p.FeePct.IsPositive() {
		rows = append(rows, labeled{"Annual Fee", FormatRate(p.FeePct)})
	}
	if p.ExitTaxPct.IsPositive() {
		rows = append(rows, labeled{"Exit Tax", FormatRate(p.ExitTaxPct)})
	}
	return rows
}

// withMaturity adds the month the plan matures when the analysis is dated.
func withMaturity(rows []labeled, start time.Time, years int) []labeled {
	if start.IsZero() {
		return rows
	}
	return append(rows, labeled{"Maturity", dateutil.MaturityLabel(start, years)})
}

func goalParameters(p domain.GoalParameters, cur string) []labeled {
	return []labeled{
		{"Target (Nominal)", FormatCurrency(p.Target, cur)},
		{"Starting Capital", FormatCurrency(p.Initial, cur)},
		{"Annual Return (Rate)", FormatRate(p.RatePct)},
		{"Inflation (CPI)", FormatRate(p.InflationPct)},
		{"Duration", yearsLabel(p.Years)},
		{"Frequency", p.Frequency.Label()},
		{"Timing", p.Timing.Label()},
	}
}

func auditRows(p *domain.ProjectionResult, adv Advisory, cur string) []labeled {
	rows := []labeled{
		{"Nominal Value (Face Value)", FormatWhole(p.FinalNominal, cur)},
		{"Real Buying Power (Today's Terms)", FormatWhole(p.FinalReal, cur)},
		{"Loss Due to Inflation", FormatDeduction(adv.InflationLoss, cur)},
		{"Share of Face Value Lost", FormatPercentage(adv.LossPct)},
		{"Total Contributed", FormatWhole(p.TotalContributed, cur)},
	}
	if ft := p.FeeTax; ft != nil {
		rows = append(rows,
			labeled{"Value After Fees", FormatWhole(ft.FinalNet, cur)},
			labeled{"Exit Tax Drag", FormatDeduction(ft.FinalTaxDrag, cur)},
			labeled{"After-Tax Value", FormatWhole(ft.FinalAfterTax, cur)},
			labeled{"Real After-Tax Value", FormatWhole(ft.FinalRealAfterTax, cur)},
			labeled{"Loss to Fees and Tax", FormatDeduction(ft.DragLoss, cur)},
		)
	}
	return rows
}

func goalSection(heading string, g *domain.GoalResult, cur string, params []labeled) Section {
	freq := g.Parameters.Frequency.Label()
	rows := append([]labeled(nil), params...)
	rows = append(rows,
		labeled{"Real Value of Target (Today's Terms)", FormatCurrency(g.RealTargetValue, cur)},
		labeled{"Future Value of Starting Capital", FormatCurrency(g.LumpSumFutureValue, cur)},
		labeled{"Remaining Goal", FormatCurrency(decimal.Max(decimal.Zero, g.RemainingGoal), cur)},
		labeled{"Required Starting " + freq + " Contribution", FormatCurrency(g.StartingContribution, cur)},
	)
	s := Section{Heading: heading, Table: keyValueTable("Item", "Value", rows)}
	if g.Degenerate {
		s.Notes = []string{"Your starting capital alone is projected to reach the target. No further contributions are required."}
		return s
	}
	s.Notes = []string{fmt.Sprintf("Start at %s per period and increase the contribution by %s every year to reach %s by the end of year %d.",
		FormatCurrency(g.StartingContribution, cur), FormatRate(g.Parameters.InflationPct),
		FormatCurrency(g.Parameters.Target, cur), g.Parameters.Years)}
	return s
}

func projectionSchedule(p *domain.ProjectionResult, cur string) *Table {
	t := &Table{Headers: []string{
		"Year",
		"Required " + p.Parameters.Frequency.Label() + " Premium",
		"Nominal Value",
		"Real Buying Power",
		"Shielded Value",
	}}
	for _, row := range p.Series {
		t.Rows = append(t.Rows, []string{
			"Year " + strconv.Itoa(row.Year),
			FormatCurrency(row.ShieldedPremium, cur),
			FormatCurrency(row.Nominal, cur),
			FormatCurrency(row.RealPower, cur),
			FormatCurrency(row.Shielded, cur),
		})
	}
	return t
}

func goalSchedule(g *domain.GoalResult, cur string) *Table {
	t := &Table{Headers: []string{
		"Year",
		"Required " + g.Parameters.Frequency.Label() + " Premium",
		"Projected Balance",
	}}
	for _, row := range g.Series {
		t.Rows = append(t.Rows, []string{
			"Year " + strconv.Itoa(row.Year),
			FormatCurrency(row.EscalatingPremium, cur),
			FormatCurrency(row.ProjectedBalance, cur),
		})
	}
	return t
}

// truncate keeps the first limit rows and the final year. A limit of 0 keeps everything.
func truncate(t *Table, limit int) *Table {
	if limit <= 0 || len(t.Rows) <= limit+1 {
		return t
	}
	kept := make([][]string, 0, limit+2)
	kept = append(kept, t.Rows[:limit]...)
	gap := make([]string, len(t.Headers))
	for i := range gap {
		gap[i] = "…"
	}
	kept = append(kept, gap, t.Rows[len(t.Rows)-1])
	return &Table{Headers: t.Headers, Rows: kept, Omitted: len(t.Rows) - limit - 1}
}

func yearsLabel(years int) string {
	if years == 1 {
		return "1 Year"
	}
	return strconv.Itoa(years) + " Years"
}

func nonEmpty(items ...string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
