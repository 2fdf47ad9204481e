package engine

import (
	"regexp"
	"strconv"
	"time"

	"formval/internal/field"
)

// numberPattern forbids signs and decimal points outright, so negative
// numbers always fail regardless of configured bounds. Leading zeros
// are permitted.
var numberPattern = regexp.MustCompile(`^\d+$`)

func validateNumber(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	if done, err := checkEmptyAnswer(f, resp.Answer); done {
		return err
	}
	if !numberPattern.MatchString(resp.Answer) {
		return invalidAnswer()
	}
	opts := f.Number
	if opts == nil || opts.Mode == field.ValidationNone {
		return nil
	}

	val, err := strconv.ParseFloat(resp.Answer, 64)
	if err != nil {
		return invalidAnswer()
	}
	switch opts.Mode {
	case field.ValidationExact:
		if opts.CustomVal != nil && val != *opts.CustomVal {
			return invalidAnswer()
		}
	case field.ValidationMinimum:
		if opts.CustomMin != nil && val < *opts.CustomMin {
			return invalidAnswer()
		}
	case field.ValidationMaximum:
		if opts.CustomMax != nil && val > *opts.CustomMax {
			return invalidAnswer()
		}
	}
	return nil
}
