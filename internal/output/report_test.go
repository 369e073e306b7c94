package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cottington/wealth-calculator/internal/calculation"
	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/cottington/wealth-calculator/internal/output"
	"github.com/shopspring/decimal"
)

func analysisFixture(t *testing.T) *domain.Analysis {
	t.Helper()
	res, err := calculation.Project(domain.ScenarioParameters{
		Contribution: decimal.NewFromInt(1000),
		RatePct:      decimal.NewFromInt(10),
		InflationPct: decimal.NewFromInt(6),
		Years:        1,
		Frequency:    domain.Yearly,
		Timing:       domain.Advance,
	})
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	return &domain.Analysis{ClientName: "Jane Doe", Currency: "ZAR", Projection: res}
}

func TestGenerateReport_JSON_CSV(t *testing.T) {
	dir := t.TempDir()
	a := analysisFixture(t)

	for _, format := range []string{"json", "csv", "md", "html"} {
		path, err := output.GenerateReport(a, format, dir, output.Options{})
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if filepath.Dir(path) != dir {
			t.Fatalf("report written outside %s: %s", dir, path)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s report is empty", format)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "Cottington_Report_Jane_Doe.html")); err != nil {
		t.Fatalf("expected html report: %v", err)
	}
}

func TestGenerateReport_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := output.GenerateReport(&domain.Analysis{}, "json", dir, output.Options{}); err != output.ErrNoResult {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
	if _, err := output.GenerateReport(analysisFixture(t), "pdf", dir, output.Options{}); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestRender(t *testing.T) {
	data, f, err := output.Render(analysisFixture(t), "markdown", output.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if f.Extension() != "md" || len(data) == 0 {
		t.Fatalf("unexpected render result: ext=%s len=%d", f.Extension(), len(data))
	}
}
