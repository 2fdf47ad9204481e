package engine

import (
	"regexp"
	"strconv"
	"time"

	"formval/internal/field"
)

// datePattern enforces the strict "DD MMM YYYY" field widths: exactly
// 2 digits for day, 3 letters for month, 4 digits for year. Width
// deviations fail before calendrical validity is even considered.
var datePattern = regexp.MustCompile(`^(\d{2}) ([A-Za-z]{3}) (\d{4})$`)

// Month abbreviations are matched case-sensitively against the
// canonical forms.
var months = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// parseDateAnswer parses a strict "DD MMM YYYY" answer and checks the
// day is valid for that month and year.
func parseDateAnswer(answer string) (time.Time, bool) {
	m := datePattern.FindStringSubmatch(answer)
	if m == nil {
		return time.Time{}, false
	}
	month, ok := months[m[2]]
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	if day < 1 || day > daysIn(month, year) {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

func daysIn(m time.Month, year int) int {
	switch m {
	case time.February:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// validateDate applies semantic range rules only after the answer is
// syntactically and calendrically valid. "now" is the injected clock,
// truncated to a day for the past/future comparisons.
func validateDate(f *field.Field, resp *field.Response, now time.Time) *FieldError {
	if done, err := checkEmptyAnswer(f, resp.Answer); done {
		return err
	}
	d, ok := parseDateAnswer(resp.Answer)
	if !ok {
		return invalidAnswer()
	}
	opts := f.Date
	if opts == nil || opts.Mode == field.DateNone {
		return nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch opts.Mode {
	case field.DateNoPast:
		if d.Before(today) {
			return invalidAnswer()
		}
	case field.DateNoFuture:
		if d.After(today) {
			return invalidAnswer()
		}
	case field.DateCustomRange:
		if min, ok := parseDateAnswer(opts.CustomMinDate); ok && d.Before(min) {
			return invalidAnswer()
		}
		if max, ok := parseDateAnswer(opts.CustomMaxDate); ok && d.After(max) {
			return invalidAnswer()
		}
	}
	return nil
}
