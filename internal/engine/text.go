package engine

import (
	"time"
	"unicode/utf8"

	"formval/internal/field"
)

// validateText handles short_text and long_text fields. The character
// count check runs against the untrimmed answer, so leading or trailing
// spaces the respondent typed still count toward the limit.
func validateText(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	if done, err := checkEmptyAnswer(f, resp.Answer); done {
		return err
	}
	opts := f.Text
	if opts == nil || opts.Mode == field.ValidationNone || opts.CustomVal == nil {
		return nil
	}

	count := utf8.RuneCountInString(resp.Answer)
	want := *opts.CustomVal
	switch opts.Mode {
	case field.ValidationExact:
		if count != want {
			return invalidAnswer()
		}
	case field.ValidationMinimum:
		if count < want {
			return invalidAnswer()
		}
	case field.ValidationMaximum:
		if count > want {
			return invalidAnswer()
		}
	}
	return nil
}
