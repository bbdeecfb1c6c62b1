package analysis

// Category is one of the five fixed buckets every rubric check is assigned to.
type Category string

const (
	CategoryContent     Category = "Content"
	CategoryFormat      Category = "Format"
	CategoryConsistency Category = "Consistency"
	CategoryRelevance   Category = "Relevance"
	CategoryCredibility Category = "Credibility"
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryContent,
		CategoryFormat,
		CategoryConsistency,
		CategoryRelevance,
		CategoryCredibility,
	}
}

// Valid reports whether the category belongs to the fixed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryContent, CategoryFormat, CategoryConsistency, CategoryRelevance, CategoryCredibility:
		return true
	default:
		return false
	}
}

// Canonical names of the 13 rubric checks, as the model is prompted to emit them.
const (
	CheckGrammar           = "Grammar or spelling mistakes"
	CheckFillerPhrases     = "Filler or vague phrases"
	CheckRepeatedPhrases   = "Repeated phrases"
	CheckMissingContact    = "Missing contact information"
	CheckMissingSections   = "Missing key sections"
	CheckEmploymentGaps    = "Unexplained employment gaps"
	CheckJobSwitching      = "Frequent job switching"
	CheckSkillsMismatch    = "Experience and skills mismatch"
	CheckOutdatedTech      = "Use of outdated technologies"
	CheckNoMetrics         = "Lack of measurable achievements"
	CheckEducationMismatch = "Education and experience mismatch"
	CheckIrrelevantExp     = "Irrelevant experience"
	CheckRoleSkillMismatch = "Role-skill mismatch"
)

// CheckNames returns the canonical rubric in prompt order.
func CheckNames() []string {
	return []string{
		CheckGrammar,
		CheckFillerPhrases,
		CheckRepeatedPhrases,
		CheckMissingContact,
		CheckMissingSections,
		CheckEmploymentGaps,
		CheckJobSwitching,
		CheckSkillsMismatch,
		CheckOutdatedTech,
		CheckNoMetrics,
		CheckEducationMismatch,
		CheckIrrelevantExp,
		CheckRoleSkillMismatch,
	}
}

const (
	// significanceThreshold is the severity below which a failed check is
	// operationally equivalent to a pass.
	significanceThreshold = 4
	// criticalThreshold is the severity at which a failed check becomes a
	// deal-breaker rather than a red flag.
	criticalThreshold = 8

	maxSeverity  = 10
	maxTopSkills = 5
)

// CheckResult is the outcome of a single rubric check.
type CheckResult struct {
	CheckName   string   `json:"check_name"`
	Passed      bool     `json:"passed"`
	Explanation string   `json:"explanation"`
	Severity    int      `json:"severity"`
	Category    Category `json:"category"`
}

// Significant reports whether the result is an actionable failure.
// On normalized input a failed check always carries severity >= 4, but the
// threshold is still checked here so the answer holds for raw input too.
func (r CheckResult) Significant() bool {
	return !r.Passed && r.Severity >= significanceThreshold
}

// StrengthsSummary is the supplementary positive signal returned alongside
// the checks. Both fields are already normalized to sequences; see
// DecodeStrengths.
type StrengthsSummary struct {
	TopSkills []string `json:"top_skills"`
	WowFactor []string `json:"wow_factor"`
}

// Empty reports whether the summary carries no signal at all.
func (s StrengthsSummary) Empty() bool {
	return len(s.TopSkills) == 0 && len(s.WowFactor) == 0
}

// InsightType tags a derived guidance group.
type InsightType string

const (
	InsightCritical  InsightType = "critical"
	InsightWarning   InsightType = "warning"
	InsightStrength  InsightType = "strength"
	InsightInterview InsightType = "interview"
)

// Insight is a prioritized guidance unit for recruiters. Insights are always
// rebuilt per analysis and never persisted.
type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Items       []string    `json:"items"`
}

// ScoreReport is the final numeric output of an analysis.
type ScoreReport struct {
	OverallScore   float64              `json:"overall_score"`
	CategoryScores map[Category]float64 `json:"category_scores"`
}
