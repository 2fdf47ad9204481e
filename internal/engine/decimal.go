package engine

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"formval/internal/field"
)

// decimalPattern allows an optional leading minus, forbids leading
// zeros before a nonzero digit (0 and 0.5 pass, 00.5 and 01.3 do not)
// and forbids bare leading or trailing decimal points (.3, -.3, "3.").
var decimalPattern = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?$`)

// validateDecimal compares range bounds on the parsed numeric value
// rather than the answer string, so values like 1.999999999999999 fail
// a customMin of 2 even though a lexicographic comparison would pass
// them. Bounds are inclusive.
func validateDecimal(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	if done, err := checkEmptyAnswer(f, resp.Answer); done {
		return err
	}
	if !decimalPattern.MatchString(resp.Answer) {
		return invalidAnswer()
	}
	val, err := decimal.NewFromString(resp.Answer)
	if err != nil {
		return invalidAnswer()
	}
	opts := f.Decimal
	if opts == nil {
		return nil
	}
	if opts.CustomMin != nil && val.LessThan(decimal.NewFromFloat(*opts.CustomMin)) {
		return invalidAnswer()
	}
	if opts.CustomMax != nil && val.GreaterThan(decimal.NewFromFloat(*opts.CustomMax)) {
		return invalidAnswer()
	}
	return nil
}
