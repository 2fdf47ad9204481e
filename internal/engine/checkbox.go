package engine

import (
	"time"

	"formval/internal/field"
)

// validateCheckbox checks the selection list: no duplicates, every
// value either an admin-authored option or a permitted "Others: <text>"
// entry, and the selection count within bounds when the admin enabled
// count validation.
func validateCheckbox(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	selections, err := resp.Selections()
	if err != nil {
		return invalidShape()
	}
	if len(selections) == 0 {
		if f.Required {
			return invalidAnswer()
		}
		return nil
	}

	// Selection-count limits apply only when the admin toggled them on.
	if opts := f.Checkbox; opts != nil && opts.ValidateByValue {
		n := len(selections)
		if opts.CustomMin != nil && n < *opts.CustomMin {
			return invalidAnswer()
		}
		if opts.CustomMax != nil && n > *opts.CustomMax {
			return invalidAnswer()
		}
	}

	seen := make(map[string]struct{}, len(selections))
	freeTextOthers := 0
	for _, answer := range selections {
		if _, dup := seen[answer]; dup {
			return invalidAnswer()
		}
		seen[answer] = struct{}{}
		if inOptions(f.Options, answer) {
			continue
		}
		if isOthersAnswer(f.OthersOption, answer) {
			freeTextOthers++
			continue
		}
		return invalidAnswer()
	}
	// The free-text Others entry is a single slot: only one selection
	// outside the admin-authored options may use it.
	if freeTextOthers > 1 {
		return invalidAnswer()
	}
	return nil
}
