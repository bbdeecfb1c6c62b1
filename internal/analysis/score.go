package analysis

import "math"

// DefaultSeverityPenalty is the deduction applied per severity point of every
// significant issue. Earlier revisions of this tool shipped with 1.2 and 0.77
// without a recorded rationale, so the coefficient is an explicit tunable
// (scoring.severity-penalty in the configuration) rather than a constant
// baked into the formula.
const DefaultSeverityPenalty = 1.0

// OverallScore computes the 0-100 health score for a resume: 100 minus the
// penalty-weighted sum of severities of all significant issues, clamped and
// rounded to one decimal. An empty result set scores 0, not 100. A
// non-positive penalty falls back to DefaultSeverityPenalty.
func OverallScore(results []CheckResult, penalty float64) float64 {
	if len(results) == 0 {
		return 0
	}

	if penalty <= 0 {
		penalty = DefaultSeverityPenalty
	}

	totalSeverity := 0
	for _, result := range results {
		if result.Significant() {
			totalSeverity += result.Severity
		}
	}

	score := 100 - float64(totalSeverity)*penalty

	return round1(clamp(score, 0, 100))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
