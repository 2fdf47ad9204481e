package engine

import (
	"regexp"
	"strings"
	"time"

	"formval/internal/field"
)

var emailPattern = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
		`([a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?)+)$`)

// validateEmail checks address format and, when the admin configured a
// domain allowlist, that the address's domain is on it. Domains match
// case-insensitively, with or without the leading "@".
func validateEmail(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	if done, err := checkEmptyAnswer(f, resp.Answer); done {
		return err
	}
	m := emailPattern.FindStringSubmatch(resp.Answer)
	if m == nil {
		return invalidAnswer()
	}
	opts := f.Email
	if opts == nil || len(opts.AllowedDomains) == 0 {
		return nil
	}
	domain := "@" + strings.ToLower(m[1])
	for _, allowed := range opts.AllowedDomains {
		allowed = strings.ToLower(allowed)
		if !strings.HasPrefix(allowed, "@") {
			allowed = "@" + allowed
		}
		if allowed == domain {
			return nil
		}
	}
	return invalidAnswer()
}
