package field

// TextValidationMode selects how a text or number answer is measured
// against the admin-configured custom value.
type TextValidationMode string

const (
	ValidationNone    TextValidationMode = ""
	ValidationExact   TextValidationMode = "exact"
	ValidationMinimum TextValidationMode = "minimum"
	ValidationMaximum TextValidationMode = "maximum"
)

// DateValidationMode selects the semantic date range rule.
type DateValidationMode string

const (
	DateNone        DateValidationMode = ""
	DateNoPast      DateValidationMode = "no_past"
	DateNoFuture    DateValidationMode = "no_future"
	DateCustomRange DateValidationMode = "custom_range"
)

// AttachmentSize is the admin-selected upload limit tier.
type AttachmentSize string

const (
	OneMb    AttachmentSize = "1mb"
	ThreeMb  AttachmentSize = "3mb"
	SevenMb  AttachmentSize = "7mb"
	TenMb    AttachmentSize = "10mb"
	TwentyMb AttachmentSize = "20mb"
)

// Bytes returns the byte ceiling for the tier. Tiers use decimal
// megabytes, so 1mb is exactly 1,000,000 bytes.
func (s AttachmentSize) Bytes() int64 {
	switch s {
	case OneMb:
		return 1_000_000
	case ThreeMb:
		return 3_000_000
	case SevenMb:
		return 7_000_000
	case TenMb:
		return 10_000_000
	case TwentyMb:
		return 20_000_000
	default:
		return 0
	}
}

type TextValidation struct {
	Mode      TextValidationMode `json:"mode,omitempty"`
	CustomVal *int               `json:"custom_val,omitempty"`
}

type NumberValidation struct {
	Mode      TextValidationMode `json:"mode,omitempty"`
	CustomVal *float64           `json:"custom_val,omitempty"`
	CustomMin *float64           `json:"custom_min,omitempty"`
	CustomMax *float64           `json:"custom_max,omitempty"`
}

type DecimalValidation struct {
	CustomMin *float64 `json:"custom_min,omitempty"`
	CustomMax *float64 `json:"custom_max,omitempty"`
}

// DateValidation holds the semantic date range rule. The custom bounds
// use the same "DD MMM YYYY" format as answers; an absent or malformed
// bound is ignored.
type DateValidation struct {
	Mode          DateValidationMode `json:"mode,omitempty"`
	CustomMinDate string             `json:"custom_min_date,omitempty"`
	CustomMaxDate string             `json:"custom_max_date,omitempty"`
}

// CheckboxValidation carries the selection-count limits. The limits are
// enforced only when ValidateByValue is set; this is an admin-facing
// toggle, not an always-on default.
type CheckboxValidation struct {
	ValidateByValue bool `json:"validate_by_value,omitempty"`
	CustomMin       *int `json:"custom_min,omitempty"`
	CustomMax       *int `json:"custom_max,omitempty"`
}

type RatingValidation struct {
	Steps int `json:"steps"`
}

// Column is a table column schema. Columns are restricted to dropdown
// and short_text types, each independently required with its own options.
type Column struct {
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title,omitempty"`
	Type     Type     `json:"type"`
	Required bool     `json:"required,omitempty"`
	Options  []string `json:"options,omitempty"`
}

type TableValidation struct {
	Columns     []Column `json:"columns"`
	MinimumRows int      `json:"minimum_rows"`
	MaximumRows *int     `json:"maximum_rows,omitempty"`
	AddMoreRows bool     `json:"add_more_rows,omitempty"`
}

type AttachmentValidation struct {
	Size AttachmentSize `json:"size"`
}

// EmailValidation restricts accepted addresses to an allowlist of
// domains. Entries are matched case-insensitively with or without a
// leading "@". An empty list accepts any domain.
type EmailValidation struct {
	AllowedDomains []string `json:"allowed_domains,omitempty"`
}

// Field is an admin-authored field schema, immutable at validation time.
// Per-type validation options are pointer sub-structs and nil when the
// admin configured none.
type Field struct {
	ID       string `json:"id"`
	Type     Type   `json:"type"`
	Title    string `json:"title,omitempty"`
	Required bool   `json:"required,omitempty"`

	// Options is the ordered list of allowed values for checkbox,
	// radio and dropdown fields.
	Options []string `json:"options,omitempty"`
	// OthersOption permits a respondent-entered "Others: <text>" value
	// on checkbox and radio fields.
	OthersOption bool `json:"others_option,omitempty"`
	// AllowIntlNumbers accepts non-Singapore numbers on home_no and
	// mobile_no fields.
	AllowIntlNumbers bool `json:"allow_intl_numbers,omitempty"`

	Text       *TextValidation       `json:"text_validation,omitempty"`
	Number     *NumberValidation     `json:"number_validation,omitempty"`
	Decimal    *DecimalValidation    `json:"decimal_validation,omitempty"`
	Date       *DateValidation       `json:"date_validation,omitempty"`
	Checkbox   *CheckboxValidation   `json:"checkbox_validation,omitempty"`
	Rating     *RatingValidation     `json:"rating_validation,omitempty"`
	Table      *TableValidation      `json:"table_validation,omitempty"`
	Attachment *AttachmentValidation `json:"attachment_validation,omitempty"`
	Email      *EmailValidation      `json:"email_validation,omitempty"`
}
