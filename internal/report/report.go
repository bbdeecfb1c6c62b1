package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spigell/resume-auditor/internal/analysis"
)

// Report bundles everything one analysis produced. The JSON shape mirrors the
// structure the model is asked for, so a dumped report can be fed back into
// tooling that speaks the same contract.
type Report struct {
	Checks    []analysis.CheckResult    `json:"checks"`
	Strengths analysis.StrengthsSummary `json:"resume_strengths"`
	Scores    analysis.ScoreReport      `json:"score_report"`
	Insights  []analysis.Insight        `json:"insights"`
}

// Breakdown counts checks per outcome band.
type Breakdown struct {
	Passed   int
	Moderate int
	Critical int
}

func New(checks []analysis.CheckResult, strengths analysis.StrengthsSummary, scores analysis.ScoreReport, insights []analysis.Insight) *Report {
	return &Report{
		Checks:    checks,
		Strengths: strengths,
		Scores:    scores,
		Insights:  insights,
	}
}

// SeverityBreakdown tallies normalized checks into passed, moderate (severity
// 4-7) and critical (8+) bands.
func (r *Report) SeverityBreakdown() Breakdown {
	var b Breakdown
	for _, check := range r.Checks {
		switch {
		case !check.Significant():
			b.Passed++
		case check.Severity >= 8:
			b.Critical++
		default:
			b.Moderate++
		}
	}
	return b
}

// FailedChecks returns the significant failures in input order.
func (r *Report) FailedChecks() []analysis.CheckResult {
	var failed []analysis.CheckResult
	for _, check := range r.Checks {
		if check.Significant() {
			failed = append(failed, check)
		}
	}
	return failed
}

// Render produces the printable text report: diagnostic overview, insight
// groups, and the per-check breakdown.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString("Resume Audit Report\n")
	b.WriteString("===================\n\n")

	fmt.Fprintf(&b, "Overall health score: %.1f / 100\n\n", r.Scores.OverallScore)

	b.WriteString("Category scores:\n")
	for _, category := range analysis.Categories() {
		fmt.Fprintf(&b, "  %-12s %6.1f\n", category, r.Scores.CategoryScores[category])
	}
	b.WriteString("\n")

	breakdown := r.SeverityBreakdown()
	fmt.Fprintf(&b, "Checks: %d passed, %d moderate, %d critical\n\n", breakdown.Passed, breakdown.Moderate, breakdown.Critical)

	if len(r.Insights) == 0 {
		b.WriteString("No significant issues found in this resume.\n")
	}

	for _, insight := range r.Insights {
		fmt.Fprintf(&b, "%s\n", insight.Title)
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", len(insight.Title)))
		fmt.Fprintf(&b, "%s\n", insight.Description)
		for _, item := range insight.Items {
			fmt.Fprintf(&b, "  * %s\n", item)
		}
		b.WriteString("\n")
	}

	b.WriteString("Detailed check results:\n")
	for _, check := range r.Checks {
		if check.Significant() {
			fmt.Fprintf(&b, "  [FAIL] %s (severity %d/10, %s): %s\n", check.CheckName, check.Severity, check.Category, check.Explanation)
			continue
		}
		fmt.Fprintf(&b, "  [PASS] %s\n", check.CheckName)
	}

	return b.String()
}

// DumpToTmpFile writes the report JSON to a temporary file and returns its name.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "resume_audit_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ToFile writes the report JSON to the given path.
func (r *Report) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
