package engine

import (
	"regexp"
	"strconv"
	"time"

	"formval/internal/field"
)

// validateRadio accepts an answer that is one of the field options, or
// a respondent-entered "Others: <text>" value when the others option is
// enabled. The two allow-rules are independent: an admin-authored
// literal option containing "Others: " matches via the options list.
func validateRadio(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	if done, err := checkEmptyAnswer(f, resp.Answer); done {
		return err
	}
	if inOptions(f.Options, resp.Answer) || isOthersAnswer(f.OthersOption, resp.Answer) {
		return nil
	}
	return invalidAnswer()
}

// validateDropdown has no others path: the answer must be one of the
// field options verbatim.
func validateDropdown(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	if done, err := checkEmptyAnswer(f, resp.Answer); done {
		return err
	}
	if inOptions(f.Options, resp.Answer) {
		return nil
	}
	return invalidAnswer()
}

func validateYesNo(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	if done, err := checkEmptyAnswer(f, resp.Answer); done {
		return err
	}
	if resp.Answer == "Yes" || resp.Answer == "No" {
		return nil
	}
	return invalidAnswer()
}

var ratingPattern = regexp.MustCompile(`^[1-9]\d*$`)

// validateRating accepts an integer between 1 and the configured number
// of steps.
func validateRating(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	if done, err := checkEmptyAnswer(f, resp.Answer); done {
		return err
	}
	if !ratingPattern.MatchString(resp.Answer) {
		return invalidAnswer()
	}
	val, err := strconv.Atoi(resp.Answer)
	if err != nil {
		return invalidAnswer()
	}
	if f.Rating != nil && f.Rating.Steps > 0 && val > f.Rating.Steps {
		return invalidAnswer()
	}
	return nil
}
