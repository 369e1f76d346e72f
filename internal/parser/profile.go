package parser

import (
	"regexp"
	"strings"

	"github.com/cardlens/statement-parser/internal/models"
)

// Keyword is one identifying token of an issuer, matched case-insensitively
// at whole-word boundaries so that e.g. "SBI" inside a longer token does not
// count.
type Keyword struct {
	re     *regexp.Regexp
	weight int
}

func keyword(weight int, literal string) Keyword {
	return Keyword{
		re:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(literal) + `\b`),
		weight: weight,
	}
}

// FieldPattern is one candidate matcher for a scalar field. normalize turns
// the regexp submatches into the canonical value; returning ok=false marks
// the field absent (the first matching pattern decides, there is no second
// opinion from later candidates).
type FieldPattern struct {
	re        *regexp.Regexp
	normalize func(m []string) (value string, ok bool)
}

// Profile describes how to recognise and parse one issuer's statement
// layout. Profiles are plain configuration records: adding an issuer is a
// table edit, not a new type. All profiles are built once at package init
// and are read-only afterwards, so they are safe to share across requests.
//
// Any nil section (Fields entry, table markers, Row) falls back to the
// generic profile at extraction time.
type Profile struct {
	Name       string
	Keywords   []Keyword
	Fields     map[models.FieldName][]FieldPattern
	TableStart *regexp.Regexp
	TableEnd   *regexp.Regexp
	// Row captures (date, description, amount, optional credit marker).
	Row *regexp.Regexp
}

// maxScore is the highest keyword score a document could reach for this
// profile; confidence is normalised against it.
func (p *Profile) maxScore() int {
	total := 0
	for _, k := range p.Keywords {
		total += k.weight
	}
	return total
}

// score counts the profile's identifying keywords found in the text.
func (p *Profile) score(text string) int {
	total := 0
	for _, k := range p.Keywords {
		if k.re.MatchString(text) {
			total += k.weight
		}
	}
	return total
}

// lastFour keeps the last four digits of capture group n, zero-padded on the
// left when the issuer prints only three.
func lastFour(n int) func([]string) (string, bool) {
	return func(m []string) (string, bool) {
		digits := strings.TrimSpace(m[n])
		if len(digits) > 4 {
			digits = digits[len(digits)-4:]
		}
		for len(digits) < 4 && digits != "" {
			digits = "0" + digits
		}
		if len(digits) != 4 {
			return "", false
		}
		return maskedCard(digits), true
	}
}

// cycleFromGroups normalises two captured dates into the canonical
// start–end representation.
func cycleFromGroups(start, end int) func([]string) (string, bool) {
	return func(m []string) (string, bool) {
		return normalizeBillingCycle(m[start], m[end])
	}
}

func dueFromGroup(n int) func([]string) (string, bool) {
	return func(m []string) (string, bool) {
		return normalizeDueDate(m[n])
	}
}

func balanceFromGroup(n int) func([]string) (string, bool) {
	return func(m []string) (string, bool) {
		return normalizeBalance(m[n])
	}
}

// profiles is the supported issuer set in declaration order; the classifier
// breaks score ties in favour of the earlier profile.
var profiles = []*Profile{
	hdfcProfile,
	iciciProfile,
	sbiProfile,
	axisProfile,
	kotakProfile,
}

// SupportedIssuers returns the names of the configured issuer profiles in
// declaration order.
func SupportedIssuers() []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return names
}

var hdfcProfile = &Profile{
	Name: "HDFC Bank",
	Keywords: []Keyword{
		keyword(2, "HDFC Bank"),
		keyword(1, "HDFCBANK"),
	},
	Fields: map[models.FieldName][]FieldPattern{
		models.FieldCardNumber: {
			// "Card No: 5522 43XX XXXX 1234"
			{re: regexp.MustCompile(`(?i)Card No[.:\s]*(\d{4})\s+(\d{2})XX\s+XXXX\s+(\d{4})`), normalize: lastFour(3)},
			// Digit-spread variant some HDFC templates produce:
			// "5 5 2 2 4 3 X X XX XXXX 1 2 3 4"
			{re: regexp.MustCompile(`(\d)\s+(\d)\s+(\d)\s+(\d)\s+(\d)\s+(\d)\s+(\d)\s+(\d)\s+X+\s+X+\s+(\d)\s+(\d)\s+(\d)\s+(\d)`),
				normalize: func(m []string) (string, bool) {
					return maskedCard(m[9] + m[10] + m[11] + m[12]), true
				}},
		},
		models.FieldDueDate: {
			// Tabular summary block: the date sits on the line below the
			// column headers.
			{re: regexp.MustCompile(`(?i)Payment Due Date\s+Total Dues\s+Minimum Amount Due\s*\n\s*(\d{2}/\d{2}/\d{4})`), normalize: dueFromGroup(1)},
			{re: regexp.MustCompile(`(?i)Payment Due Date[:\s]*(\d{2}/\d{2}/\d{4})`), normalize: dueFromGroup(1)},
		},
		models.FieldTotalBalance: {
			{re: regexp.MustCompile(`(?i)Payment Due Date\s+Total Dues\s+Minimum Amount Due\s*\n\s*\d{2}/\d{2}/\d{4}\s+([\d,]+\.?\d{0,2})`), normalize: balanceFromGroup(1)},
			{re: regexp.MustCompile(`(?i)Total Dues[:\s]*\n?\s*([\d,]+\.?\d{0,2})`), normalize: balanceFromGroup(1)},
		},
	},
	TableStart: regexp.MustCompile(`(?i)Domestic Transactions|Date\s+Transaction Description|Total Amount Due`),
	TableEnd:   regexp.MustCompile(`(?i)Reward Points|International Transactions|For HDFC Bank|Page \d+`),
	Row:        regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(?:Rs\.?\s*|₹\s*)?([\d,]+\.\d{2})(?:\s+(Cr))?\s*$`),
}

var iciciProfile = &Profile{
	Name: "ICICI Bank",
	Keywords: []Keyword{
		keyword(2, "ICICI Bank"),
		keyword(1, "ICICIBANK"),
	},
	Fields: map[models.FieldName][]FieldPattern{
		models.FieldCardNumber: {
			{re: regexp.MustCompile(`(?i)Card Number\s*:\s*(\d{4})\s+XXXX\s+XXXX\s+(\d{3,4})`), normalize: lastFour(2)},
			{re: regexp.MustCompile(`(\d{4})\s+XXXX\s+XXXX\s+(\d{3,4})`), normalize: lastFour(2)},
		},
		models.FieldBillingCycle: {
			{re: regexp.MustCompile(`(?i)Statement Period\s*:\s*From\s+(\d{2}/\d{2}/\d{4})\s+to\s+(\d{2}/\d{2}/\d{4})`), normalize: cycleFromGroups(1, 2)},
		},
		models.FieldDueDate: {
			{re: regexp.MustCompile(`(?i)Due Date\s*:\s*(\d{2}/\d{2}/\d{4})`), normalize: dueFromGroup(1)},
		},
		models.FieldTotalBalance: {
			{re: regexp.MustCompile(`(?i)Your Total Amount Due[^\d\n]{0,8}([\d,]+\.?\d{0,2})`), normalize: balanceFromGroup(1)},
			{re: regexp.MustCompile(`(?i)Total Amount Due\s*:[^\d\n]{0,8}([\d,]+\.?\d{0,2})`), normalize: balanceFromGroup(1)},
		},
	},
	TableStart: regexp.MustCompile(`(?i)Date\s+Ref\.?\s*Number\s+Transaction Details`),
	TableEnd:   regexp.MustCompile(`(?i)Great offers|Safe Banking|State Code`),
	Row:        regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})\s+(?:\d+\s+)?(.+?)\s+([\d,]+\.\d{2})\s*(CR)?$`),
}

// SBI Card statements vary too much between template revisions for reliable
// issuer-specific patterns; classification still succeeds and extraction
// runs on the generic fallbacks.
var sbiProfile = &Profile{
	Name: "SBI Card",
	Keywords: []Keyword{
		keyword(2, "SBI Card"),
		keyword(1, "State Bank"),
		keyword(1, "SBICARD"),
	},
}

var axisProfile = &Profile{
	Name: "Axis Bank",
	Keywords: []Keyword{
		keyword(2, "Axis Bank"),
		keyword(1, "AXISBANK"),
	},
	Fields: map[models.FieldName][]FieldPattern{
		models.FieldCardNumber: {
			// "443222******1234"
			{re: regexp.MustCompile(`(?i)Card No[.:\s]*(\d{6})\*{6}(\d{4})`), normalize: lastFour(2)},
			{re: regexp.MustCompile(`(\d{6})\*{6}(\d{4})`), normalize: lastFour(2)},
		},
		models.FieldBillingCycle: {
			{re: regexp.MustCompile(`(?i)Statement Period\s+Payment Due Date[^\n]*\n\s*(\d{2}/\d{2}/\d{4})\s*-\s*(\d{2}/\d{2}/\d{4})`), normalize: cycleFromGroups(1, 2)},
			{re: regexp.MustCompile(`(?i)Statement Period[:\s]+(\d{2}/\d{2}/\d{4})\s*-\s*(\d{2}/\d{2}/\d{4})`), normalize: cycleFromGroups(1, 2)},
		},
		models.FieldDueDate: {
			{re: regexp.MustCompile(`(?i)Statement Period\s+Payment Due Date[^\n]*\n\s*\d{2}/\d{2}/\d{4}\s*-\s*\d{2}/\d{2}/\d{4}\s+(\d{2}/\d{2}/\d{4})`), normalize: dueFromGroup(1)},
			{re: regexp.MustCompile(`(?i)Payment Due Date[:\s]+(\d{2}/\d{2}/\d{4})`), normalize: dueFromGroup(1)},
		},
		models.FieldTotalBalance: {
			{re: regexp.MustCompile(`(?i)Total Payment Due[^\d\n]{0,60}([\d,]+\.?\d{0,2})\s+Dr`), normalize: balanceFromGroup(1)},
			{re: regexp.MustCompile(`(?i)Total Payment Due[^\n]*\n[^\d]*([\d,]+\.?\d{0,2})\s+Dr`), normalize: balanceFromGroup(1)},
		},
	},
	TableStart: regexp.MustCompile(`(?i)DATE\s+TRANSACTION DETAILS\s+MERCHANT CATEGORY\s+AMOUNT`),
	TableEnd:   regexp.MustCompile(`(?i)\*{3,}\s*End of Statement|EMI BALANCES|CONTACT US`),
	Row:        regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})\s+(.+?)\s+([\d,]+\.\d{2})\s+(Dr|Cr)\s*$`),
}

// Kotak layouts are recognised but parsed with the generic fallbacks, same
// as SBI Card.
var kotakProfile = &Profile{
	Name: "Kotak Mahindra Bank",
	Keywords: []Keyword{
		keyword(2, "Kotak Mahindra Bank"),
		keyword(1, "Kotak"),
	},
}

// genericProfile is the fallback pattern set shared by every issuer and used
// alone when classification reports Unknown. It has no keywords; it never
// participates in classification.
var genericProfile = &Profile{
	Name: "Generic",
	Fields: map[models.FieldName][]FieldPattern{
		models.FieldCardNumber: {
			// Any masked or plain 4x4 grouping after a card label:
			// "Card Number: XXXX XXXX XXXX 1234"
			{re: regexp.MustCompile(`(?i)Card\s*(?:No|Number)?[.:\s]*((?:[\dXx*]{4}[\s-]+){3}\d{4})`),
				normalize: func(m []string) (string, bool) { return normalizeCardNumber(m[1]) }},
			{re: regexp.MustCompile(`((?:XXXX[\s-]+){3}\d{4})`),
				normalize: func(m []string) (string, bool) { return normalizeCardNumber(m[1]) }},
		},
		models.FieldBillingCycle: {
			{re: regexp.MustCompile(`(?i)(?:Statement|Billing)\s+(?:Period|Cycle)[^\d\n]*(\d{1,2}/\d{1,2}/\d{4})\s*(?:to|[-–])\s*(\d{1,2}/\d{1,2}/\d{4})`), normalize: cycleFromGroups(1, 2)},
		},
		models.FieldDueDate: {
			{re: regexp.MustCompile(`(?i)(?:Payment\s+)?Due\s+Date[^\d\n]*(\d{1,2}/\d{1,2}/\d{4})`), normalize: dueFromGroup(1)},
		},
		models.FieldTotalBalance: {
			{re: regexp.MustCompile(`(?i)Total\s+(?:Amount\s+Due|Dues|Payment\s+Due|Balance)[^\d\n]{0,10}([\d,]+(?:\.\d{1,2})?)`), normalize: balanceFromGroup(1)},
		},
	},
	TableStart: regexp.MustCompile(`(?i)Domestic Transactions|Transaction Details|Date\s+(?:Transaction|Description)|Total Amount Due`),
	TableEnd:   regexp.MustCompile(`(?i)Reward Points|International Transactions|End of Statement|Important Information|Page \d+ of \d+`),
	Row:        regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4})\s+(.+?)\s+(?:Rs\.?\s*|₹\s*|INR\s*)?([\d,]+\.\d{2})\s*(Cr|CR|Dr|DR)?\s*$`),
}
