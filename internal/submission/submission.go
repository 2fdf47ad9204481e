// Package submission pairs a form's field schemas with a submission's
// responses and runs the validation engine over them. A single field
// failure is sufficient grounds to reject the whole submission; callers
// that want a full error report can opt into collect-all mode.
package submission

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"formval/internal/engine"
	"formval/internal/field"
)

// Form is the admin-authored form definition: an ordered list of field
// schemas.
type Form struct {
	ID     string        `json:"id"`
	Title  string        `json:"title,omitempty"`
	Fields []field.Field `json:"fields"`
}

// Submission is one respondent's set of responses to a form. The
// caller must have computed IsVisible on every response before handing
// the submission over.
type Submission struct {
	ID        string           `json:"id,omitempty"`
	FormID    string           `json:"form_id,omitempty"`
	Responses []field.Response `json:"responses"`
}

// Report is the outcome of validating one submission.
type Report struct {
	SubmissionID string              `json:"submission_id"`
	FormID       string              `json:"form_id"`
	Valid        bool                `json:"valid"`
	Errors       []engine.FieldError `json:"errors,omitempty"`
}

// Options control how a submission is processed.
type Options struct {
	// CollectAll continues past the first failing field and gathers
	// every field error instead of short-circuiting.
	CollectAll bool
	// Now is the clock for date validation. Zero means wall clock.
	Now time.Time
}

// Process validates every response of a submission against its form.
// Fields are validated in form order; every form field must be answered
// by exactly one response with a matching field ID, and responses for
// unknown fields are rejected. The returned error is non-nil only for
// programmer-level faults (a field type with no validator); ordinary
// validation failures land in the report.
func Process(ctx context.Context, form *Form, sub *Submission, opts Options) (*Report, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	report := &Report{
		SubmissionID: sub.ID,
		FormID:       form.ID,
		Valid:        true,
	}
	if report.SubmissionID == "" {
		report.SubmissionID = uuid.New().String()
	}

	fail := func(ferr *engine.FieldError) bool {
		report.Valid = false
		report.Errors = append(report.Errors, *ferr)
		return !opts.CollectAll
	}

	byField := make(map[string]*field.Response, len(sub.Responses))
	for i := range sub.Responses {
		resp := &sub.Responses[i]
		if _, dup := byField[resp.FieldID]; dup {
			if fail(engine.NewShapeError(form.ID, resp.FieldID)) {
				return report, nil
			}
			continue
		}
		byField[resp.FieldID] = resp
	}

	matched := 0
	for i := range form.Fields {
		f := &form.Fields[i]
		resp, ok := byField[f.ID]
		if !ok {
			if fail(engine.NewShapeError(form.ID, f.ID)) {
				return report, nil
			}
			continue
		}
		matched++

		err := engine.ValidateFieldAt(ctx, form.ID, f, resp, now)
		if err == nil {
			continue
		}
		var ferr *engine.FieldError
		if !errors.As(err, &ferr) {
			// Unknown field type or similar schema drift: fatal, not a
			// respondent error.
			return nil, err
		}
		if fail(ferr) {
			return report, nil
		}
	}

	// Responses for fields the form doesn't declare.
	if matched < len(byField) {
		for id := range byField {
			if fieldByID(form, id) == nil {
				if fail(engine.NewShapeError(form.ID, id)) {
					return report, nil
				}
			}
		}
	}

	return report, nil
}

func fieldByID(form *Form, id string) *field.Field {
	for i := range form.Fields {
		if form.Fields[i].ID == id {
			return &form.Fields[i]
		}
	}
	return nil
}
