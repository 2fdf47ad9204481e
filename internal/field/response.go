package field

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// Response is a respondent's submitted answer for one field.
//
// AnswerArray is kept as raw JSON on purpose: its expected shape depends
// on the field type ([]string for checkbox, [][]string for table), and
// deciding whether the payload matches that shape is part of validation,
// not of transport decoding.
type Response struct {
	FieldID     string          `json:"field_id"`
	Type        Type            `json:"type"`
	Answer      string          `json:"answer,omitempty"`
	AnswerArray json.RawMessage `json:"answer_array,omitempty"`
	Filename    string          `json:"filename,omitempty"`
	Content     []byte          `json:"content,omitempty"`

	// IsVisible is computed upstream by the conditional-logic evaluator
	// and treated as ground truth here.
	IsVisible bool `json:"is_visible"`
}

// Selections decodes the answer array as a checkbox selection list.
// An absent or null answer array is a shape mismatch, not an empty
// selection.
func (r *Response) Selections() ([]string, error) {
	if r.rawArrayAbsent() {
		return nil, errors.New("answer array is absent")
	}
	var out []string
	if err := json.Unmarshal(r.AnswerArray, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Rows decodes the answer array as table rows of per-column cells.
func (r *Response) Rows() ([][]string, error) {
	if r.rawArrayAbsent() {
		return nil, errors.New("answer array is absent")
	}
	var out [][]string
	if err := json.Unmarshal(r.AnswerArray, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Empty reports whether the response carries no data for the given
// field type. Used by the visibility guard: a hidden field must be
// empty, and an empty optional field needs no further checks.
func (r *Response) Empty(t Type) bool {
	switch t {
	case Checkbox:
		if r.rawArrayAbsent() {
			return true
		}
		sel, err := r.Selections()
		return err == nil && len(sel) == 0
	case Table:
		if r.rawArrayAbsent() {
			return true
		}
		rows, err := r.Rows()
		if err != nil {
			return false
		}
		for _, row := range rows {
			for _, cell := range row {
				if strings.TrimSpace(cell) != "" {
					return false
				}
			}
		}
		return true
	case Attachment:
		return len(r.Content) == 0 && r.Filename == "" && strings.TrimSpace(r.Answer) == ""
	default:
		return strings.TrimSpace(r.Answer) == ""
	}
}

func (r *Response) rawArrayAbsent() bool {
	raw := bytes.TrimSpace(r.AnswerArray)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
