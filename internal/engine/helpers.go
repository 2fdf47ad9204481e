package engine

import (
	"strings"

	"formval/internal/field"
)

// othersPrefix marks a respondent-entered free-text option on checkbox
// and radio fields.
const othersPrefix = "Others: "

// checkEmptyAnswer applies the shared required/empty prelude for scalar
// answers. Whitespace-only counts as empty; the trimmed view is used
// only for this decision, never for downstream checks. done=true means
// validation is settled: err is nil on success.
func checkEmptyAnswer(f *field.Field, answer string) (done bool, err *FieldError) {
	if strings.TrimSpace(answer) != "" {
		return false, nil
	}
	if f.Required {
		return true, invalidAnswer()
	}
	return true, nil
}

func inOptions(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}

// isOthersAnswer reports whether answer is a respondent-entered
// "Others: <text>" value. The free-text path needs the others option
// enabled and non-empty trailing text; a bare "Others: " never passes.
// Admin-authored literals containing "Others: " are matched against the
// field options separately, and either allow-rule admits the value.
func isOthersAnswer(enabled bool, answer string) bool {
	if !enabled || !strings.HasPrefix(answer, othersPrefix) {
		return false
	}
	return strings.TrimSpace(strings.TrimPrefix(answer, othersPrefix)) != ""
}
