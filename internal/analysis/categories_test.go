package analysis

import "testing"

func TestCategoryScoresEmptyInput(t *testing.T) {
	t.Parallel()

	scores := CategoryScores(nil)

	if len(scores) != 5 {
		t.Fatalf("expected all 5 categories, got %d", len(scores))
	}

	for _, category := range Categories() {
		if scores[category] != 100 {
			t.Fatalf("expected vacuous 100 for %s, got %v", category, scores[category])
		}
	}
}

func TestCategoryScoresSingleSevereFailure(t *testing.T) {
	t.Parallel()

	results := []CheckResult{
		{CheckName: CheckMissingContact, Passed: false, Severity: 9, Explanation: "no email", Category: CategoryContent},
	}

	scores := CategoryScores(results)

	// pass_rate 0, deduction 9*10 = 90, floored at 0.
	if scores[CategoryContent] != 0 {
		t.Fatalf("expected Content score 0, got %v", scores[CategoryContent])
	}

	for _, category := range []Category{CategoryFormat, CategoryConsistency, CategoryRelevance, CategoryCredibility} {
		if scores[category] != 100 {
			t.Fatalf("expected %s score 100, got %v", category, scores[category])
		}
	}
}

func TestCategoryScoresMixedResults(t *testing.T) {
	t.Parallel()

	results := []CheckResult{
		{CheckName: CheckGrammar, Passed: true, Category: CategoryFormat},
		{CheckName: CheckFillerPhrases, Passed: true, Category: CategoryFormat},
		{CheckName: CheckRepeatedPhrases, Passed: false, Severity: 4, Explanation: "copied bullets", Category: CategoryFormat},
	}

	scores := CategoryScores(results)

	// 100*(2/3) - 4*(10/3) = 66.6667 - 13.3333 = 53.3333, rounded to 53.3.
	if scores[CategoryFormat] != 53.3 {
		t.Fatalf("expected Format score 53.3, got %v", scores[CategoryFormat])
	}
}

func TestCategoryScoresCountInsignificantFailureAsPass(t *testing.T) {
	t.Parallel()

	results := []CheckResult{
		{CheckName: CheckGrammar, Passed: false, Severity: 2, Explanation: "one typo", Category: CategoryFormat},
		{CheckName: CheckFillerPhrases, Passed: true, Category: CategoryFormat},
	}

	scores := CategoryScores(results)

	if scores[CategoryFormat] != 100 {
		t.Fatalf("expected sub-threshold failure to count as a pass, got %v", scores[CategoryFormat])
	}
}

func TestCategoryScoresDropUnknownCategories(t *testing.T) {
	t.Parallel()

	results := []CheckResult{
		{CheckName: CheckGrammar, Passed: false, Severity: 8, Explanation: "bad", Category: Category("Vibes")},
	}

	scores := CategoryScores(results)

	if len(scores) != 5 {
		t.Fatalf("expected exactly the fixed category set, got %d entries", len(scores))
	}

	for _, category := range Categories() {
		if scores[category] != 100 {
			t.Fatalf("expected %s to stay at 100, got %v", category, scores[category])
		}
	}
}

func TestCategoryScoresRange(t *testing.T) {
	t.Parallel()

	results := []CheckResult{
		{CheckName: CheckMissingContact, Passed: false, Severity: 10, Category: CategoryContent},
		{CheckName: CheckMissingSections, Passed: false, Severity: 10, Category: CategoryContent},
		{CheckName: CheckNoMetrics, Passed: true, Category: CategoryContent},
	}

	scores := CategoryScores(results)

	for category, score := range scores {
		if score < 0 || score > 100 {
			t.Fatalf("%s score out of range: %v", category, score)
		}
	}
}
