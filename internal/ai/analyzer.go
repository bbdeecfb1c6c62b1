package ai

import "context"

// RawAnalysis is the model's judgement of a resume before any of it enters
// the scoring pipeline. Checks and Strengths carry the still-untyped JSON
// values; Raw preserves the full model text so callers can surface it when
// downstream decoding rejects the payload.
type RawAnalysis struct {
	Checks    []any
	Strengths map[string]any
	Raw       string
}

// Analyzer evaluates resume text against the 13-check rubric.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText string) (*RawAnalysis, error)
}
