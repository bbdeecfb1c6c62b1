package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// MalformedCheckError reports a check record that violates the data contract
// with the model: a missing required field, a value of the wrong type, or a
// value outside its allowed range. It is always propagated to the caller and
// never replaced with a defaulted record.
type MalformedCheckError struct {
	Index  int
	Field  string
	Reason string
}

func (e *MalformedCheckError) Error() string {
	return fmt.Sprintf("malformed check result at index %d: field %q: %s", e.Index, e.Field, e.Reason)
}

// rawCheck mirrors one entry of the model's checks array. Every field is kept
// untyped so coercion and validation stay explicit; mapstructure only matches
// keys (case-insensitively) and records which ones were absent.
type rawCheck struct {
	CheckName   any `mapstructure:"check_name"`
	Passed      any `mapstructure:"passed"`
	Explanation any `mapstructure:"explanation"`
	Severity    any `mapstructure:"severity"`
	Category    any `mapstructure:"category"`
}

// DecodeChecks turns the raw check records extracted from the model response
// into well-formed CheckResult values. The first contract violation aborts the
// whole decode: no partial result set is ever returned.
func DecodeChecks(raw []any) ([]CheckResult, error) {
	results := make([]CheckResult, 0, len(raw))

	for i, entry := range raw {
		record, ok := entry.(map[string]any)
		if !ok {
			return nil, &MalformedCheckError{Index: i, Field: "(record)", Reason: fmt.Sprintf("expected an object, got %T", entry)}
		}

		var check rawCheck
		meta := &mapstructure.Metadata{}
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Metadata: meta,
			Result:   &check,
		})
		if err != nil {
			return nil, fmt.Errorf("building check decoder: %w", err)
		}
		if err := decoder.Decode(record); err != nil {
			return nil, &MalformedCheckError{Index: i, Field: "(record)", Reason: err.Error()}
		}

		for _, unset := range meta.Unset {
			switch strings.ToLower(unset) {
			case "passed":
				return nil, &MalformedCheckError{Index: i, Field: "passed", Reason: "required field is missing"}
			case "severity":
				return nil, &MalformedCheckError{Index: i, Field: "severity", Reason: "required field is missing"}
			case "check_name", "checkname":
				return nil, &MalformedCheckError{Index: i, Field: "check_name", Reason: "required field is missing"}
			case "category":
				return nil, &MalformedCheckError{Index: i, Field: "category", Reason: "required field is missing"}
			}
		}

		result, err := coerceCheck(i, &check)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}

func coerceCheck(index int, check *rawCheck) (CheckResult, error) {
	name, ok := coerceString(check.CheckName)
	if !ok || name == "" {
		return CheckResult{}, &MalformedCheckError{Index: index, Field: "check_name", Reason: "expected a non-empty string"}
	}

	passed, ok := coerceBool(check.Passed)
	if !ok {
		return CheckResult{}, &MalformedCheckError{Index: index, Field: "passed", Reason: fmt.Sprintf("unrecognized boolean %v", check.Passed)}
	}

	severity, ok := coerceSeverity(check.Severity)
	if !ok {
		return CheckResult{}, &MalformedCheckError{Index: index, Field: "severity", Reason: fmt.Sprintf("expected an integer between 0 and %d, got %v", maxSeverity, check.Severity)}
	}

	category, ok := coerceCategory(check.Category)
	if !ok {
		return CheckResult{}, &MalformedCheckError{Index: index, Field: "category", Reason: fmt.Sprintf("%v is outside the fixed category set", check.Category)}
	}

	explanation, _ := coerceString(check.Explanation)

	result := CheckResult{
		CheckName:   name,
		Passed:      passed,
		Explanation: explanation,
		Severity:    severity,
		Category:    category,
	}

	// A passing check carries no severity or explanation, whatever the
	// model attached to it.
	if result.Passed {
		result.Severity = 0
		result.Explanation = ""
	}

	return result, nil
}

// DecodeStrengths normalizes the supplementary strengths record. The record is
// advisory, so unusable values are dropped rather than rejected: both fields
// accept a single string or a sequence of strings and always come out as a
// sequence.
func DecodeStrengths(raw map[string]any) StrengthsSummary {
	summary := StrengthsSummary{
		TopSkills: coerceStringList(raw["top_skills"]),
		WowFactor: coerceStringList(raw["wow_factor"]),
	}

	if len(summary.TopSkills) > maxTopSkills {
		summary.TopSkills = summary.TopSkills[:maxTopSkills]
	}

	return summary
}

func coerceString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", true
	case string:
		return strings.TrimSpace(val), true
	case fmt.Stringer:
		return strings.TrimSpace(val.String()), true
	default:
		return "", false
	}
}

func coerceBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "yes":
			return true, true
		case "false", "no":
			return false, true
		}
	}
	return false, false
}

func coerceSeverity(v any) (int, bool) {
	var severity int

	switch val := v.(type) {
	case int:
		severity = val
	case int64:
		severity = int(val)
	case float64:
		if val != math.Trunc(val) {
			return 0, false
		}
		severity = int(val)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		severity = parsed
	default:
		return 0, false
	}

	if severity < 0 || severity > maxSeverity {
		return 0, false
	}

	return severity, true
}

func coerceCategory(v any) (Category, bool) {
	raw, ok := coerceString(v)
	if !ok || raw == "" {
		return "", false
	}

	for _, category := range Categories() {
		if strings.EqualFold(raw, string(category)) {
			return category, true
		}
	}

	return "", false
}

func coerceStringList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if trimmed := strings.TrimSpace(val); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	case []string:
		return compactStrings(val)
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := coerceString(item); ok && s != "" {
				items = append(items, s)
			}
		}
		if len(items) == 0 {
			return nil
		}
		return items
	default:
		return nil
	}
}

func compactStrings(values []string) []string {
	items := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
