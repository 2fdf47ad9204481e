package field

// Type identifies a form field type and selects the validator
// responsible for it. The set is sealed: every value listed here must
// have a registered validator in the engine.
type Type string

const (
	ShortText  Type = "short_text"
	LongText   Type = "long_text"
	Number     Type = "number"
	Decimal    Type = "decimal"
	Date       Type = "date"
	Nric       Type = "nric"
	HomeNo     Type = "home_no"
	MobileNo   Type = "mobile_no"
	Email      Type = "email"
	Checkbox   Type = "checkbox"
	Radio      Type = "radio"
	Dropdown   Type = "dropdown"
	Rating     Type = "rating"
	Table      Type = "table"
	Attachment Type = "attachment"
	YesNo      Type = "yes_no"
)

// Types returns every field type in the enumeration.
// The engine's dispatcher test walks this list to keep the two in sync.
func Types() []Type {
	return []Type{
		ShortText, LongText, Number, Decimal, Date, Nric,
		HomeNo, MobileNo, Email, Checkbox, Radio, Dropdown,
		Rating, Table, Attachment, YesNo,
	}
}

// Valid returns true if t is a member of the enumeration.
func (t Type) Valid() bool {
	for _, known := range Types() {
		if t == known {
			return true
		}
	}
	return false
}

// UsesAnswerArray returns true for field types whose response payload
// lives in answer_array rather than answer.
func (t Type) UsesAnswerArray() bool {
	return t == Checkbox || t == Table
}
