package analysis

import "testing"

func TestGenerateInsightsGroupsAndOrder(t *testing.T) {
	t.Parallel()

	results := []CheckResult{
		{CheckName: CheckMissingContact, Passed: false, Severity: 9, Explanation: "no email", Category: CategoryContent},
		{CheckName: CheckJobSwitching, Passed: false, Severity: 5, Explanation: "three jobs under 8 months", Category: CategoryConsistency},
		{CheckName: CheckEmploymentGaps, Passed: false, Severity: 6, Explanation: "gap during 2021-2023", Category: CategoryConsistency},
	}
	strengths := StrengthsSummary{TopSkills: []string{"Go"}}

	insights := GenerateInsights(results, strengths)

	expected := []InsightType{InsightCritical, InsightWarning, InsightStrength, InsightInterview}
	if len(insights) != len(expected) {
		t.Fatalf("expected %d insights, got %d", len(expected), len(insights))
	}

	for i, insightType := range expected {
		if insights[i].Type != insightType {
			t.Fatalf("expected insight %d to be %s, got %s", i, insightType, insights[i].Type)
		}
	}

	critical := insights[0]
	if critical.Title != "Critical Issues Detected" {
		t.Fatalf("unexpected critical title: %q", critical.Title)
	}
	if len(critical.Items) != 1 || critical.Items[0] != "Missing contact information: no email" {
		t.Fatalf("unexpected critical items: %v", critical.Items)
	}
	if critical.Description != "Found 1 critical issues that may significantly impact candidate viability." {
		t.Fatalf("unexpected critical description: %q", critical.Description)
	}

	warning := insights[1]
	if warning.Title != "Potential Red Flags" {
		t.Fatalf("unexpected warning title: %q", warning.Title)
	}
	if len(warning.Items) != 2 {
		t.Fatalf("expected both mid-severity failures as warnings, got %v", warning.Items)
	}
}

func TestGenerateInsightsOmitsEmptyGroups(t *testing.T) {
	t.Parallel()

	insights := GenerateInsights(nil, StrengthsSummary{})
	if len(insights) != 0 {
		t.Fatalf("expected no insights, got %d", len(insights))
	}
}

func TestGenerateInsightsEmptyResultsWithStrengths(t *testing.T) {
	t.Parallel()

	strengths := StrengthsSummary{TopSkills: []string{"Python", "SQL"}}

	insights := GenerateInsights(nil, strengths)

	if len(insights) != 1 {
		t.Fatalf("expected only the strength group, got %d insights", len(insights))
	}
	if insights[0].Type != InsightStrength {
		t.Fatalf("expected strength insight, got %s", insights[0].Type)
	}
	if insights[0].Items[0] != "Top skills: Python, SQL" {
		t.Fatalf("unexpected top skills item: %q", insights[0].Items[0])
	}
}

func TestGenerateInsightsWowFactorJoining(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		wowFactor []string
		expect    string
	}{
		{
			name:      "three entries joined as a sentence",
			wowFactor: []string{"Patent A", "Patent B", "Patent C"},
			expect:    "Standout feature: Patent A, Patent B, and Patent C",
		},
		{
			name:      "two entries",
			wowFactor: []string{"Patent A", "Patent B"},
			expect:    "Standout feature: Patent A, and Patent B",
		},
		{
			name:      "single entry unwrapped",
			wowFactor: []string{"Keynote at GopherCon"},
			expect:    "Standout feature: Keynote at GopherCon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			strengths := StrengthsSummary{TopSkills: []string{"Python", "SQL"}, WowFactor: tt.wowFactor}

			insights := GenerateInsights(nil, strengths)
			if len(insights) != 1 {
				t.Fatalf("expected 1 insight, got %d", len(insights))
			}

			items := insights[0].Items
			if len(items) != 2 {
				t.Fatalf("expected skills and standout items, got %v", items)
			}
			if items[1] != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, items[1])
			}
		})
	}
}

func TestGenerateInsightsIgnoresInsignificantFailures(t *testing.T) {
	t.Parallel()

	// A sub-threshold failure must not show up in any group, normalized or not.
	results := Normalize([]CheckResult{
		{CheckName: CheckGrammar, Passed: false, Severity: 2, Explanation: "one typo", Category: CategoryFormat},
	})

	insights := GenerateInsights(results, StrengthsSummary{})
	if len(insights) != 0 {
		t.Fatalf("expected no insights, got %+v", insights)
	}
}

func TestGenerateInsightsInterviewQuestions(t *testing.T) {
	t.Parallel()

	results := []CheckResult{
		{CheckName: CheckEmploymentGaps, Passed: false, Severity: 6, Explanation: "gap during 2021-2023", Category: CategoryConsistency},
		{CheckName: CheckEducationMismatch, Passed: false, Severity: 5, Explanation: "biology degree, software role", Category: CategoryCredibility},
		{CheckName: CheckSkillsMismatch, Passed: false, Severity: 4, Explanation: "lists Kubernetes, no usage shown", Category: CategoryRelevance},
		// Severe, but not one of the three probeable checks.
		{CheckName: CheckOutdatedTech, Passed: false, Severity: 9, Explanation: "Flash experience", Category: CategoryRelevance},
	}

	insights := GenerateInsights(results, StrengthsSummary{})

	var interview *Insight
	for i := range insights {
		if insights[i].Type == InsightInterview {
			interview = &insights[i]
		}
	}

	if interview == nil {
		t.Fatalf("expected an interview insight")
	}

	expected := []string{
		`Ask about the gap between positions: "gap during 2021-2023"`,
		`Explore transition from education to current career path: "biology degree, software role"`,
		`Verify skill proficiency: "lists Kubernetes, no usage shown"`,
	}

	if len(interview.Items) != len(expected) {
		t.Fatalf("expected %d questions, got %v", len(expected), interview.Items)
	}

	for i, question := range expected {
		if interview.Items[i] != question {
			t.Fatalf("expected question %q, got %q", question, interview.Items[i])
		}
	}
}

func TestGenerateInsightsUnrecognizedCheckProducesNoQuestion(t *testing.T) {
	t.Parallel()

	results := []CheckResult{
		{CheckName: "Unknown anomaly", Passed: false, Severity: 6, Explanation: "something", Category: CategoryContent},
	}

	insights := GenerateInsights(results, StrengthsSummary{})

	for _, insight := range insights {
		if insight.Type == InsightInterview {
			t.Fatalf("expected no interview insight, got %+v", insight)
		}
	}
}
