package forms

import (
	"fmt"
	"strings"

	"academy-cms/internal/domain/pages"
)

// ValidationError reports the first required field a submission is missing.
// Its message is shown to the end user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateSubmission checks a submitted payload against a form's schema.
// Steps are walked in order, fields within each step in order, and the first
// missing required field aborts the pass, so the reported message is
// deterministic for a given form and payload. Values for optional and select
// fields are accepted as-is; only the required check is enforced.
func ValidateSubmission(def *FormDefinition, data map[string]interface{}) error {
	if len(def.Steps) == 0 {
		return &ValidationError{Message: "form has no steps"}
	}
	if data == nil {
		return &ValidationError{Message: "invalid submission data"}
	}

	for i, step := range def.Steps {
		stepData, _ := data[fmt.Sprintf("step_%d", i)].(map[string]interface{})

		for j, field := range step.Fields {
			if !field.Required {
				continue
			}
			value, ok := stepData[fmt.Sprintf("field_%d", j)]
			if !ok || isBlank(value) {
				return &ValidationError{
					Message: fmt.Sprintf("Field %q in step %d is required", fieldLabel(field), i+1),
				}
			}
		}
	}
	return nil
}

func isBlank(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// fieldLabel picks the label for error messages by fixed locale order, so the
// same form and payload always report the same label. Falls back to the field
// id when no locale has one.
func fieldLabel(f Field) string {
	for _, locale := range pages.Locales() {
		if l := f.Label[locale]; l != "" {
			return l
		}
	}
	return f.ID
}
