package engine

import "formval/internal/field"

// validatorFor returns the validator responsible for a field type.
// The switch must stay exhaustive over field.Types; TestDispatcherCoversAllFieldTypes
// walks the enumeration so a new type without a validator fails the
// build's test run rather than a live submission.
func validatorFor(t field.Type) (validatorFn, bool) {
	switch t {
	case field.ShortText, field.LongText:
		return validateText, true
	case field.Number:
		return validateNumber, true
	case field.Decimal:
		return validateDecimal, true
	case field.Date:
		return validateDate, true
	case field.Nric:
		return validateNric, true
	case field.HomeNo:
		return validateHomeNo, true
	case field.MobileNo:
		return validateMobileNo, true
	case field.Email:
		return validateEmail, true
	case field.Checkbox:
		return validateCheckbox, true
	case field.Radio:
		return validateRadio, true
	case field.Dropdown:
		return validateDropdown, true
	case field.Rating:
		return validateRating, true
	case field.Table:
		return validateTable, true
	case field.Attachment:
		return validateAttachment, true
	case field.YesNo:
		return validateYesNo, true
	default:
		return nil, false
	}
}
