package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/resume-auditor/internal/ai"
	"github.com/spigell/resume-auditor/internal/utils"
	"github.com/xeipuuv/gojsonschema"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

//go:embed response_schema.json
var responseSchema string

const defaultMaxLogLength = 200

// UnparsableResponseError is returned when no usable checks structure can be
// located in the model output. Raw keeps the full model text so the caller can
// show it instead of fabricated scores.
type UnparsableResponseError struct {
	Raw    string
	Reason string
}

func (e *UnparsableResponseError) Error() string {
	return fmt.Sprintf("unparsable model response: %s", e.Reason)
}

// Auditor asks Gemini to evaluate a resume against the 13-check rubric and
// resolves the model's free-form answer into a raw analysis. It never defaults
// an unreadable response to an empty check list.
type Auditor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
	schema    *gojsonschema.Schema
}

func NewAuditor(generator contentGenerator, logger *zap.Logger, maxLogLength int) (*Auditor, error) {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(responseSchema))
	if err != nil {
		return nil, fmt.Errorf("compile response schema: %w", err)
	}

	return &Auditor{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
		schema:    schema,
	}, nil
}

// Analyze runs the rubric over the provided resume text.
func (a *Auditor) Analyze(ctx context.Context, resumeText string) (*ai.RawAnalysis, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return nil, fmt.Errorf("resume text is required")
	}

	prompt := buildPrompt(resumeText)

	a.logger.Debug("gemini audit request",
		zap.String("model", a.generator.Model()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini audit response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return a.parseResponse(raw)
}

func buildPrompt(resumeText string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Evaluate the resume below:\n{{RESUME_TEXT}}\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, "{{RESUME_TEXT}}", resumeText)
}

func (a *Auditor) parseResponse(raw string) (*ai.RawAnalysis, error) {
	cleaned := extractJSON(raw)
	if cleaned == "" {
		return nil, &UnparsableResponseError{Raw: raw, Reason: "no JSON value found in model output"}
	}

	var payload any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &UnparsableResponseError{Raw: raw, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if err := a.validateEnvelope(payload); err != nil {
		return nil, &UnparsableResponseError{Raw: raw, Reason: err.Error()}
	}

	analysis := &ai.RawAnalysis{Raw: raw}

	switch value := payload.(type) {
	case map[string]any:
		checks, ok := value["checks"].([]any)
		if !ok {
			return nil, &UnparsableResponseError{Raw: raw, Reason: "response object has no checks array"}
		}
		analysis.Checks = checks
		if strengths, ok := value["resume_strengths"].(map[string]any); ok {
			analysis.Strengths = strengths
		}
	case []any:
		// Some responses skip the envelope entirely. The checks are still
		// usable; the strengths record is explicitly absent, not defaulted.
		a.logger.Info("model returned a bare checks array, no strengths record")
		analysis.Checks = value
	default:
		return nil, &UnparsableResponseError{Raw: raw, Reason: fmt.Sprintf("unexpected top-level JSON value %T", payload)}
	}

	return analysis, nil
}

func (a *Auditor) validateEnvelope(payload any) error {
	result, err := a.schema.Validate(gojsonschema.NewGoLoader(payload))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			reasons = append(reasons, desc.String())
		}
		return fmt.Errorf("response does not match the expected envelope: %s", strings.Join(reasons, "; "))
	}

	return nil
}

// extractJSON locates the JSON span inside model prose: code fences are
// stripped first, then the text is cut down to the outermost braces or
// brackets.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	raw = strings.TrimSpace(raw)

	objStart := strings.Index(raw, "{")
	arrStart := strings.Index(raw, "[")

	start := objStart
	end := strings.LastIndex(raw, "}")
	if objStart == -1 || (arrStart != -1 && arrStart < objStart) {
		start = arrStart
		end = strings.LastIndex(raw, "]")
	}

	if start == -1 || end == -1 || end < start {
		return ""
	}

	return strings.TrimSpace(raw[start : end+1])
}
