package analysis

// Normalize applies the significance threshold to a set of decoded check
// results: any failure with severity below 4 is rewritten to a clean pass so
// low-severity findings never reach scoring, category grouping, or insights.
// The input slice is left untouched
// and the operation is a fixed point: normalizing an already-normalized set
// changes nothing.
func Normalize(results []CheckResult) []CheckResult {
	normalized := make([]CheckResult, len(results))

	for i, result := range results {
		if !result.Passed && result.Severity < significanceThreshold {
			result.Passed = true
		}
		if result.Passed {
			result.Severity = 0
			result.Explanation = ""
		}
		normalized[i] = result
	}

	return normalized
}
