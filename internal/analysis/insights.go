package analysis

import (
	"fmt"
	"strings"
)

// GenerateInsights derives the prioritized guidance groups for recruiters from
// normalized check results and the strengths summary. Groups come out in a
// fixed order (critical issues, then red flags, strengths and interview
// questions), and empty groups are omitted entirely.
func GenerateInsights(results []CheckResult, strengths StrengthsSummary) []Insight {
	significant := make([]CheckResult, 0, len(results))
	for _, result := range results {
		if result.Significant() {
			significant = append(significant, result)
		}
	}

	insights := make([]Insight, 0, 4)

	if critical := issueItems(significant, criticalThreshold, maxSeverity); len(critical) > 0 {
		insights = append(insights, Insight{
			Type:        InsightCritical,
			Title:       "Critical Issues Detected",
			Description: fmt.Sprintf("Found %d critical issues that may significantly impact candidate viability.", len(critical)),
			Items:       critical,
		})
	}

	if warnings := issueItems(significant, significanceThreshold, criticalThreshold-1); len(warnings) > 0 {
		insights = append(insights, Insight{
			Type:        InsightWarning,
			Title:       "Potential Red Flags",
			Description: fmt.Sprintf("Found %d issues that warrant further discussion with the candidate.", len(warnings)),
			Items:       warnings,
		})
	}

	if items := strengthItems(strengths); len(items) > 0 {
		insights = append(insights, Insight{
			Type:        InsightStrength,
			Title:       "Resume Strengths",
			Description: "Key strengths identified in this candidate's resume:",
			Items:       items,
		})
	}

	if questions := interviewQuestions(significant); len(questions) > 0 {
		insights = append(insights, Insight{
			Type:        InsightInterview,
			Title:       "Suggested Interview Questions",
			Description: "Based on resume anomalies, consider asking:",
			Items:       questions,
		})
	}

	return insights
}

func issueItems(significant []CheckResult, minSeverity, maxSev int) []string {
	var items []string
	for _, check := range significant {
		if check.Severity >= minSeverity && check.Severity <= maxSev {
			items = append(items, fmt.Sprintf("%s: %s", check.CheckName, check.Explanation))
		}
	}
	return items
}

func strengthItems(strengths StrengthsSummary) []string {
	var items []string

	if len(strengths.TopSkills) > 0 {
		items = append(items, fmt.Sprintf("Top skills: %s", strings.Join(strengths.TopSkills, ", ")))
	}

	if len(strengths.WowFactor) > 0 {
		items = append(items, fmt.Sprintf("Standout feature: %s", joinSentence(strengths.WowFactor)))
	}

	return items
}

// joinSentence renders a list as prose: "A", "A, and B", "A, B, and C".
func joinSentence(parts []string) string {
	if len(parts) == 1 {
		return parts[0]
	}
	return fmt.Sprintf("%s, and %s", strings.Join(parts[:len(parts)-1], ", "), parts[len(parts)-1])
}

// interviewQuestions produces one question per significant failure of the
// three checks a recruiter can probe in conversation. Other checks never
// produce questions, however severe.
func interviewQuestions(significant []CheckResult) []string {
	var questions []string

	for _, check := range significant {
		switch check.CheckName {
		case CheckEmploymentGaps:
			questions = append(questions, fmt.Sprintf("Ask about the gap between positions: %q", check.Explanation))
		case CheckEducationMismatch:
			questions = append(questions, fmt.Sprintf("Explore transition from education to current career path: %q", check.Explanation))
		case CheckSkillsMismatch:
			questions = append(questions, fmt.Sprintf("Verify skill proficiency: %q", check.Explanation))
		}
	}

	return questions
}
