package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"formval/internal/field"
	"formval/internal/instrument"
)

// testNow is the frozen clock for every engine test.
var testNow = time.Date(2019, time.June, 15, 12, 0, 0, 0, time.UTC)

func validateAt(t *testing.T, f *field.Field, resp *field.Response) error {
	t.Helper()
	return ValidateFieldAt(context.Background(), "form-1", f, resp, testNow)
}

func requireCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()
	var ferr *FieldError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, code, ferr.Code)
}

func answerOf(ft field.Type, answer string) *field.Response {
	return &field.Response{FieldID: "field-1", Type: ft, Answer: answer, IsVisible: true}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func rawJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestDispatcherCoversAllFieldTypes(t *testing.T) {
	for _, ft := range field.Types() {
		_, ok := validatorFor(ft)
		require.True(t, ok, "field type %q has no validator", ft)
	}
}

func TestUnknownFieldTypeIsFatal(t *testing.T) {
	f := &field.Field{ID: "field-1", Type: field.Type("slider")}
	err := validateAt(t, f, answerOf(field.Type("slider"), "3"))

	var unknown *UnknownFieldTypeError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "slider", unknown.Type)

	var ferr *FieldError
	require.False(t, errors.As(err, &ferr),
		"unknown field type must not be a recoverable validation failure")
}

func TestFieldTypeMismatchIsShapeFailure(t *testing.T) {
	f := &field.Field{ID: "field-1", Type: field.ShortText, Required: true}
	resp := answerOf(field.Number, "42")

	requireCode(t, validateAt(t, f, resp), CodeInvalidShape)
}

func TestHiddenFieldPrecedence(t *testing.T) {
	cases := []struct {
		name string
		f    field.Field
		resp field.Response
	}{
		{
			name: "scalar answer",
			f:    field.Field{ID: "f", Type: field.ShortText},
			resp: field.Response{FieldID: "f", Type: field.ShortText, Answer: "hello"},
		},
		{
			name: "checkbox selection",
			f:    field.Field{ID: "f", Type: field.Checkbox, Options: []string{"a"}},
			resp: field.Response{FieldID: "f", Type: field.Checkbox, AnswerArray: json.RawMessage(`["a"]`)},
		},
		{
			name: "table cells",
			f: field.Field{ID: "f", Type: field.Table, Table: &field.TableValidation{
				Columns:     []field.Column{{Type: field.ShortText}},
				MinimumRows: 1,
			}},
			resp: field.Response{FieldID: "f", Type: field.Table, AnswerArray: json.RawMessage(`[["x"]]`)},
		},
		{
			name: "attachment content",
			f:    field.Field{ID: "f", Type: field.Attachment, Attachment: &field.AttachmentValidation{Size: field.OneMb}},
			resp: field.Response{FieldID: "f", Type: field.Attachment, Answer: "a.txt", Filename: "a.txt", Content: []byte("x")},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.resp.IsVisible = false
			// The same answer passes when visible but is tampering when
			// hidden, regardless of type-specific rules.
			requireCode(t, validateAt(t, &tc.f, &tc.resp), CodeHiddenField)
		})
	}
}

func TestHiddenEmptyFieldShortCircuitsToSuccess(t *testing.T) {
	cases := []struct {
		name string
		f    field.Field
		resp field.Response
	}{
		{
			name: "scalar even when required",
			f:    field.Field{ID: "f", Type: field.ShortText, Required: true},
			resp: field.Response{FieldID: "f", Type: field.ShortText, Answer: "   "},
		},
		{
			name: "checkbox empty array",
			f:    field.Field{ID: "f", Type: field.Checkbox, Required: true},
			resp: field.Response{FieldID: "f", Type: field.Checkbox, AnswerArray: json.RawMessage(`[]`)},
		},
		{
			name: "table with blank cells",
			f: field.Field{ID: "f", Type: field.Table, Required: true, Table: &field.TableValidation{
				Columns:     []field.Column{{Type: field.ShortText, Required: true}},
				MinimumRows: 1,
			}},
			resp: field.Response{FieldID: "f", Type: field.Table, AnswerArray: json.RawMessage(`[["", " "]]`)},
		},
		{
			name: "attachment without file",
			f:    field.Field{ID: "f", Type: field.Attachment, Required: true},
			resp: field.Response{FieldID: "f", Type: field.Attachment},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.resp.IsVisible = false
			require.NoError(t, validateAt(t, &tc.f, &tc.resp))
		})
	}
}

func TestValidationIsIdempotent(t *testing.T) {
	f := &field.Field{ID: "f", Type: field.Date, Required: true, Date: &field.DateValidation{Mode: field.DateNoFuture}}
	resp := answerOf(field.Date, "14 Jun 2019")

	first := validateAt(t, f, resp)
	second := validateAt(t, f, resp)
	require.NoError(t, first)
	require.NoError(t, second)

	bad := answerOf(field.Date, "16 Jun 2019")
	require.Equal(t, validateAt(t, f, bad), validateAt(t, f, bad))
}

func TestShortTextEndToEnd(t *testing.T) {
	f := &field.Field{ID: "field-1", Type: field.ShortText, Required: true}

	require.NoError(t, validateAt(t, f, answerOf(field.ShortText, "hello world")))
	requireCode(t, validateAt(t, f, answerOf(field.ShortText, "")), CodeInvalidAnswer)

	hidden := answerOf(field.ShortText, "hello")
	hidden.IsVisible = false
	requireCode(t, validateAt(t, f, hidden), CodeHiddenField)
}

func TestFieldErrorCarriesContext(t *testing.T) {
	f := &field.Field{ID: "field-9", Type: field.ShortText, Required: true}
	err := validateAt(t, f, answerOf(field.ShortText, ""))

	var ferr *FieldError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, "form-1", ferr.FormID)
	require.Equal(t, "field-9", ferr.FieldID)
	require.Equal(t, "Invalid answer submitted", ferr.Message)
}

func TestValidationSpansRecorded(t *testing.T) {
	recorder := instrument.NewRecorder()
	ctx := instrument.WithInstrumenter(context.Background(), instrument.NewInstrumenter(recorder))

	f := &field.Field{ID: "field-1", Type: field.ShortText, Required: true}
	require.NoError(t, ValidateFieldAt(ctx, "form-1", f, answerOf(field.ShortText, "ok"), testNow))
	require.Error(t, ValidateFieldAt(ctx, "form-1", f, answerOf(field.ShortText, ""), testNow))

	events := recorder.Events()
	require.Len(t, events, 2)
	require.Equal(t, "ok", events[0].Status)
	require.Equal(t, "error", events[1].Status)
	require.Equal(t, "field-1", events[0].FieldID)
	require.Equal(t, string(field.ShortText), events[0].FieldType)
}
