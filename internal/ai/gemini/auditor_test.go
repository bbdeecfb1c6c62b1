package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string {
	return "stub-model"
}

const objectResponse = `{
  "checks": [
    {"check_name": "Missing contact information", "passed": false, "explanation": "no email", "severity": 9, "category": "Content"}
  ],
  "resume_strengths": {"top_skills": ["Go"], "wow_factor": "Patent holder"}
}`

func newTestAuditor(t *testing.T, stub *stubGenerator) *Auditor {
	t.Helper()

	auditor, err := NewAuditor(stub, zap.NewNop(), 0)
	if err != nil {
		t.Fatalf("unexpected error building auditor: %v", err)
	}
	return auditor
}

func TestAuditorAnalyze(t *testing.T) {
	stub := &stubGenerator{response: objectResponse}
	auditor := newTestAuditor(t, stub)

	analysis, err := auditor.Analyze(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.Checks) != 1 {
		t.Fatalf("expected 1 check, got %d", len(analysis.Checks))
	}

	if analysis.Strengths == nil {
		t.Fatalf("expected strengths record")
	}

	if analysis.Raw != objectResponse {
		t.Fatalf("expected raw response to be preserved")
	}

	if !strings.Contains(stub.lastPrompt, "resume text") {
		t.Fatalf("expected resume text to be embedded in the prompt")
	}

	if !strings.Contains(stub.lastPrompt, "13 predefined checks") {
		t.Fatalf("expected rubric instructions in the prompt")
	}

	if strings.Contains(stub.lastPrompt, "{{RESUME_TEXT}}") {
		t.Fatalf("expected placeholder to be replaced")
	}
}

func TestAuditorAnalyzeHandlesCodeFences(t *testing.T) {
	stub := &stubGenerator{response: "```json\n" + objectResponse + "\n```"}
	auditor := newTestAuditor(t, stub)

	analysis, err := auditor.Analyze(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.Checks) != 1 {
		t.Fatalf("expected 1 check, got %d", len(analysis.Checks))
	}
}

func TestAuditorAnalyzeHandlesSurroundingProse(t *testing.T) {
	stub := &stubGenerator{response: "Here is my evaluation:\n" + objectResponse + "\nLet me know if you need more."}
	auditor := newTestAuditor(t, stub)

	analysis, err := auditor.Analyze(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.Checks) != 1 {
		t.Fatalf("expected 1 check, got %d", len(analysis.Checks))
	}
}

func TestAuditorAnalyzeAcceptsBareArray(t *testing.T) {
	stub := &stubGenerator{response: `[{"check_name": "Repeated phrases", "passed": true, "explanation": "", "severity": 0, "category": "Format"}]`}
	auditor := newTestAuditor(t, stub)

	analysis, err := auditor.Analyze(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.Checks) != 1 {
		t.Fatalf("expected 1 check, got %d", len(analysis.Checks))
	}

	if analysis.Strengths != nil {
		t.Fatalf("expected no strengths record for a bare array")
	}
}

func TestAuditorAnalyzeUnparsableResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "plain prose", response: "I could not evaluate this resume."},
		{name: "broken JSON", response: `{"checks": [`},
		{name: "checks not an array", response: `{"checks": "all passed"}`},
		{name: "scalar value", response: `"42"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubGenerator{response: tt.response}
			auditor := newTestAuditor(t, stub)

			_, err := auditor.Analyze(context.Background(), "resume text")
			if err == nil {
				t.Fatalf("expected error")
			}

			var unparsable *UnparsableResponseError
			if !errors.As(err, &unparsable) {
				t.Fatalf("expected UnparsableResponseError, got %T: %v", err, err)
			}

			if unparsable.Raw != tt.response {
				t.Fatalf("expected raw model text to be preserved, got %q", unparsable.Raw)
			}
		})
	}
}

func TestAuditorAnalyzePropagatesGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("network down")}
	auditor := newTestAuditor(t, stub)

	if _, err := auditor.Analyze(context.Background(), "resume text"); err == nil {
		t.Fatal("expected generator error to propagate")
	}
}

func TestAuditorAnalyzeRejectsEmptyResume(t *testing.T) {
	auditor := newTestAuditor(t, &stubGenerator{response: objectResponse})

	if _, err := auditor.Analyze(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty resume text")
	}
}
