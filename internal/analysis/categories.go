package analysis

// CategoryScores computes a 0-100 score for each of the five fixed categories.
// A category with no applicable checks scores 100. Otherwise the score is 100
// times the pass rate minus the severity sum scaled by 10/n, floored at zero.
// Insignificant failures count as passes. Results carrying a category outside
// the fixed set are skipped.
func CategoryScores(results []CheckResult) map[Category]float64 {
	grouped := make(map[Category][]CheckResult)
	for _, result := range results {
		if !result.Category.Valid() {
			continue
		}
		grouped[result.Category] = append(grouped[result.Category], result)
	}

	scores := make(map[Category]float64, len(Categories()))
	for _, category := range Categories() {
		checks := grouped[category]
		if len(checks) == 0 {
			scores[category] = 100
			continue
		}

		passed := 0
		severitySum := 0
		for _, check := range checks {
			if check.Significant() {
				severitySum += check.Severity
				continue
			}
			passed++
		}

		passRate := float64(passed) / float64(len(checks))
		deduction := float64(severitySum) * (10 / float64(len(checks)))

		score := 100*passRate - deduction
		if score < 0 {
			score = 0
		}

		scores[category] = round1(score)
	}

	return scores
}
