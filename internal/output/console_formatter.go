package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/cottington/wealth-calculator/pkg/dateutil"
)

var (
	gold = lipgloss.Color("#D4AF37")
	ink  = lipgloss.Color("#0E1117")
	red  = lipgloss.Color("#C80000")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(gold)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(ink).Background(gold)
	labelStyle   = lipgloss.NewStyle().Width(40)
	valueStyle   = lipgloss.NewStyle().Bold(true)
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(red)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// ConsoleFormatter prints a styled summary and the yearly table for a terminal.
type ConsoleFormatter struct {
	Options Options
}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) WithOptions(o Options) Formatter {
	c.Options = o
	return c
}

func (c ConsoleFormatter) Format(a *domain.Analysis) ([]byte, error) {
	if a.Empty() {
		return nil, ErrNoResult
	}
	cur := currencyOf(a)
	var buf bytes.Buffer

	fmt.Fprintln(&buf, titleStyle.Render(reportTitle))
	fmt.Fprintln(&buf, mutedStyle.Render(fmt.Sprintf("Prepared for %s | %s", strings.ToUpper(clientOrDefault(a.ClientName)), dateutil.ReportDate(a.GeneratedAt))))

	if p := a.Projection; p != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, headingStyle.Render(" THE REALITY OF INFLATION "))
		adv := AnalyzeProjection(p, cur)
		for _, row := range auditRows(p, adv, cur) {
			metric(&buf, row.label, row.value)
		}
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, warningStyle.Render("WARNING: "+adv.Warning))
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, headingStyle.Render(" THE COTTINGTON SOLUTION "))
		fmt.Fprintln(&buf, "STRATEGIC ADVICE: "+adv.Advice)
		fmt.Fprintln(&buf, adv.ShieldedOutcome)
		if adv.AdvantageSummary != "" {
			fmt.Fprintln(&buf, adv.AdvantageSummary)
		}
		fmt.Fprintln(&buf)
		writeTable(&buf, truncate(projectionSchedule(p, cur), c.Options.ScheduleRows))
	}

	if g := a.Goal; g != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, headingStyle.Render(" GOAL PLANNING "))
		metric(&buf, "Target (Nominal)", FormatCurrency(g.Parameters.Target, cur))
		metric(&buf, "Real Value of Target (Today's Terms)", FormatCurrency(g.RealTargetValue, cur))
		metric(&buf, "Future Value of Starting Capital", FormatCurrency(g.LumpSumFutureValue, cur))
		if g.Degenerate {
			fmt.Fprintln(&buf)
			fmt.Fprintln(&buf, "Your starting capital alone is projected to reach the target. No further contributions are required.")
		} else {
			metric(&buf, "Required Starting "+g.Parameters.Frequency.Label()+" Contribution", FormatCurrency(g.StartingContribution, cur))
			fmt.Fprintln(&buf)
			writeTable(&buf, truncate(goalSchedule(g, cur), c.Options.ScheduleRows))
		}
	}
	return buf.Bytes(), nil
}

func metric(buf *bytes.Buffer, label, value string) {
	fmt.Fprintln(buf, labelStyle.Render(label)+valueStyle.Render(value))
}

// writeTable prints a right-aligned plain-text table.
func writeTable(buf *bytes.Buffer, t *Table) {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = strings.Repeat(" ", widths[i]-lipgloss.Width(cell)) + cell
		}
		return strings.Join(parts, "  ")
	}
	fmt.Fprintln(buf, valueStyle.Render(line(t.Headers)))
	for _, row := range t.Rows {
		fmt.Fprintln(buf, line(row))
	}
	if t.Omitted > 0 {
		fmt.Fprintln(buf, mutedStyle.Render(fmt.Sprintf("(%d intermediate years omitted)", t.Omitted)))
	}
}

func clientOrDefault(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Valued Client"
	}
	return strings.TrimSpace(name)
}
