package engine

import (
	"strings"
	"time"

	"formval/internal/field"
)

// validateTable checks row counts against the schema and validates each
// cell against its column. Rows that are not an array of string rows,
// or rows with a cell count that differs from the column count, are
// shape failures; everything else is semantic. The first invalid cell
// wins.
func validateTable(f *field.Field, resp *field.Response, _ time.Time) *FieldError {
	opts := f.Table
	if opts == nil {
		return invalidShape()
	}
	rows, err := resp.Rows()
	if err != nil {
		return invalidShape()
	}
	if !f.Required && allCellsEmpty(rows) {
		return nil
	}

	if len(rows) < opts.MinimumRows {
		return invalidAnswer()
	}
	// Without add-more-rows the row count is exact: extra rows are as
	// invalid as missing ones.
	if !opts.AddMoreRows && len(rows) != opts.MinimumRows {
		return invalidAnswer()
	}
	if opts.AddMoreRows && opts.MaximumRows != nil && len(rows) > *opts.MaximumRows {
		return invalidAnswer()
	}

	for _, row := range rows {
		if len(row) != len(opts.Columns) {
			return invalidShape()
		}
		for i, cell := range row {
			if cellErr := validateCell(&opts.Columns[i], cell); cellErr != nil {
				return cellErr
			}
		}
	}
	return nil
}

// validateCell reuses the scalar validators: a column is a scalar field
// schema restricted to dropdown and short_text, so the cell runs
// through the same dispatch as a top-level answer.
func validateCell(col *field.Column, cell string) *FieldError {
	if col.Type != field.Dropdown && col.Type != field.ShortText {
		return invalidShape()
	}
	colField := &field.Field{
		ID:       col.ID,
		Type:     col.Type,
		Required: col.Required,
		Options:  col.Options,
	}
	cellResp := &field.Response{
		FieldID:   col.ID,
		Type:      col.Type,
		Answer:    cell,
		IsVisible: true,
	}
	validate, _ := validatorFor(col.Type)
	return validate(colField, cellResp, time.Time{})
}

func allCellsEmpty(rows [][]string) bool {
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return false
			}
		}
	}
	return true
}
