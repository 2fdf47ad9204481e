package engine

import "fmt"

// ErrorCode is the closed set of expected validation failure categories.
type ErrorCode string

const (
	// CodeInvalidAnswer is the generic semantic failure: required but
	// empty, out of range, pattern mismatch, disallowed selection,
	// checksum mismatch, attachment too large.
	CodeInvalidAnswer ErrorCode = "INVALID_ANSWER"
	// CodeHiddenField marks a non-empty response on a field the logic
	// evaluator hid. Raised only by the visibility guard and takes
	// precedence over every type-specific rule.
	CodeHiddenField ErrorCode = "HIDDEN_FIELD"
	// CodeInvalidShape marks a structural mismatch between the response
	// payload and what the field type expects, detected before any
	// semantic rule runs.
	CodeInvalidShape ErrorCode = "INVALID_SHAPE"
)

const (
	msgInvalidAnswer = "Invalid answer submitted"
	msgHiddenField   = "Attempted to submit response on a hidden field"
	msgInvalidShape  = "Response has invalid shape"
)

// FieldError is the engine's sole failure type. Validators return it
// instead of throwing; the first failing rule for a field wins.
type FieldError struct {
	Code    ErrorCode `json:"code"`
	FormID  string    `json:"form_id,omitempty"`
	FieldID string    `json:"field_id,omitempty"`
	Message string    `json:"message"`
}

func (e *FieldError) Error() string {
	if e.FieldID != "" {
		return fmt.Sprintf("%s: %s", e.FieldID, e.Message)
	}
	return e.Message
}

func invalidAnswer() *FieldError {
	return &FieldError{Code: CodeInvalidAnswer, Message: msgInvalidAnswer}
}

func hiddenField() *FieldError {
	return &FieldError{Code: CodeHiddenField, Message: msgHiddenField}
}

func invalidShape() *FieldError {
	return &FieldError{Code: CodeInvalidShape, Message: msgInvalidShape}
}

// NewShapeError returns an invalid-shape failure for the given field.
// Used by callers that detect structural problems before the engine
// runs, like a missing or duplicated response in a submission.
func NewShapeError(formID, fieldID string) *FieldError {
	e := invalidShape()
	e.FormID = formID
	e.FieldID = fieldID
	return e
}

// UnknownFieldTypeError reports a field type with no registered
// validator. This is schema drift, a programmer error rather than a
// validation failure, and callers should surface it as a 500-class
// fault instead of rejecting the answer.
type UnknownFieldTypeError struct {
	Type string
}

func (e *UnknownFieldTypeError) Error() string {
	return fmt.Sprintf("no validator registered for field type %q", e.Type)
}
