package engine

import (
	"context"
	"time"

	"formval/internal/field"
	"formval/internal/instrument"
)

// validatorFn is a pure per-type validation predicate. A nil return
// means the answer is valid. now is only consulted by date rules.
type validatorFn func(f *field.Field, resp *field.Response, now time.Time) *FieldError

// ValidateField validates one response against its field schema using
// the wall clock. formID is carried for error context only and never
// affects the decision.
func ValidateField(ctx context.Context, formID string, f *field.Field, resp *field.Response) error {
	return ValidateFieldAt(ctx, formID, f, resp, time.Now())
}

// ValidateFieldAt is ValidateField with an injected clock, so callers
// and tests can freeze time for the date validator's past/future rules.
func ValidateFieldAt(ctx context.Context, formID string, f *field.Field, resp *field.Response, now time.Time) error {
	_, span := instrument.GetInstrumenter(ctx).StartSpan(ctx, "engine", "validation", "field.validate")
	defer span.End()
	span.SetField(f.ID, string(f.Type))

	validate, ok := validatorFor(f.Type)
	if !ok {
		span.SetStatus("fatal")
		return &UnknownFieldTypeError{Type: string(f.Type)}
	}

	ferr := runValidation(validate, f, resp, now)
	if ferr != nil {
		ferr.FormID = formID
		ferr.FieldID = f.ID
		span.SetStatus("error")
		span.SetMetadata("code", string(ferr.Code))
		return ferr
	}
	span.SetStatus("ok")
	return nil
}

func runValidation(validate validatorFn, f *field.Field, resp *field.Response, now time.Time) *FieldError {
	// The hidden-field invariant supersedes all type-specific rules.
	proceed, gerr := guardVisibility(f, resp)
	if gerr != nil {
		return gerr
	}
	if !proceed {
		// Hidden and empty: legitimately carries no data.
		return nil
	}
	if resp.Type != f.Type {
		return invalidShape()
	}
	return validate(f, resp, now)
}

// guardVisibility enforces the hidden-field invariant. A hidden field
// with any non-empty payload fails regardless of whether the answer
// would otherwise be valid; a hidden empty field short-circuits to
// success without running the type validator.
func guardVisibility(f *field.Field, resp *field.Response) (proceed bool, err *FieldError) {
	if resp.IsVisible {
		return true, nil
	}
	if resp.Empty(f.Type) {
		return false, nil
	}
	return false, hiddenField()
}
