package engine

import (
	"regexp"
	"strconv"
	"time"

	"github.com/nyaruka/phonenumbers"

	"formval/internal/field"
)

// Singapore national numbering plan, by category. Fixed lines sit in
// the 6xxxxxxx and 3xxxxxxx ranges, mobiles in 8xxxxxxx and 9xxxxxxx.
// A number valid as the other category must still fail its field.
var (
	sgHomePattern   = regexp.MustCompile(`^[36]\d{7}$`)
	sgMobilePattern = regexp.MustCompile(`^[89]\d{7}$`)
)

func validateHomeNo(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	return validatePhone(f, resp, sgHomePattern)
}

func validateMobileNo(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	return validatePhone(f, resp, sgMobilePattern)
}

// validatePhone parses the answer as a +-prefixed international number.
// Every answer must be valid per the numbering-plan metadata. When intl
// numbers are allowed, any valid number passes regardless of category;
// otherwise the number must be a Singapore number in the field's
// category.
func validatePhone(f *field.Field, resp *field.Response, national *regexp.Regexp) *FieldError {
	if done, err := checkEmptyAnswer(f, resp.Answer); done {
		return err
	}
	num, err := phonenumbers.Parse(resp.Answer, "")
	if err != nil {
		return invalidAnswer()
	}
	if !phonenumbers.IsValidNumber(num) {
		return invalidAnswer()
	}
	if f.AllowIntlNumbers {
		return nil
	}
	if num.GetCountryCode() != 65 {
		return invalidAnswer()
	}
	if !national.MatchString(strconv.FormatUint(num.GetNationalNumber(), 10)) {
		return invalidAnswer()
	}
	return nil
}
