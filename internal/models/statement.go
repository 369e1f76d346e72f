package models

import "errors"

// Boundary errors. Everything past text extraction degrades to a partial
// result instead of failing.
var (
	// ErrUnreadableDocument means the PDF layer could not decode a text layer.
	ErrUnreadableDocument = errors.New("no readable text could be extracted from the document")
	// ErrUnsupportedFormat means the upload is not a PDF document.
	ErrUnsupportedFormat = errors.New("unsupported format: only PDF statements are accepted")
)

// Placeholder values rendered when something could not be recovered.
const (
	IssuerUnknown = "Unknown"
	NotFound      = "Not found"
)

// FieldName identifies one scalar field extracted from a statement.
type FieldName string

const (
	FieldCardNumber   FieldName = "cardNumber"
	FieldBillingCycle FieldName = "billingCycle"
	FieldDueDate      FieldName = "dueDate"
	FieldTotalBalance FieldName = "totalBalance"
)

// FieldNames lists the required scalar fields in extraction order.
var FieldNames = []FieldName{
	FieldCardNumber,
	FieldBillingCycle,
	FieldDueDate,
	FieldTotalBalance,
}

// Classification is the issuer decision for one document.
type Classification struct {
	Issuer     string
	Confidence float64 // keyword score normalised against the profile maximum, in [0,1]
}

// Known reports whether a supported issuer was identified.
func (c Classification) Known() bool {
	return c.Issuer != IssuerUnknown
}

// ExtractedField is one scalar field with its raw match and canonical value.
// Absent fields carry Found=false and render as the NotFound placeholder;
// there is no "present but empty" state.
type ExtractedField struct {
	Name  FieldName
	Raw   string // matched source text, kept for diagnostics
	Value string // canonical representation, empty when absent
	Found bool
}

// Display returns the canonical value, or the NotFound placeholder.
func (f ExtractedField) Display() string {
	if !f.Found {
		return NotFound
	}
	return f.Value
}

// Transaction is one normalised transaction row. SignedAmount carries the
// numeric value with a fixed sign convention: debits positive, credits
// negative. Amount is the formatted display string sent to the client.
type Transaction struct {
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Amount       string  `json:"amount"`
	SignedAmount float64 `json:"-"`
	Raw          string  `json:"-"` // original row text, kept for diagnostics
}

// StatementResult is the aggregate produced once per request. It is
// immutable after assembly and mirrors the response contract exactly.
type StatementResult struct {
	Issuer       string        `json:"issuer"`
	CardNumber   string        `json:"cardNumber"`
	BillingCycle string        `json:"billingCycle"`
	DueDate      string        `json:"dueDate"`
	TotalBalance string        `json:"totalBalance"`
	Transactions []Transaction `json:"transactions"`
	Confidence   float64       `json:"-"`
}
