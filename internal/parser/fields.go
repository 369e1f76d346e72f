package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cardlens/statement-parser/internal/models"
)

// extractFields locates and normalises each required scalar field. For each
// field the issuer's candidate patterns run first (skipped entirely when the
// classification is Unknown), then the generic fallbacks, in declared order.
// The first pattern whose matcher hits decides the field: if its normaliser
// rejects the match, the field is absent and later candidates do not get to
// reinterpret the document.
func extractFields(text string, prof *Profile) map[models.FieldName]models.ExtractedField {
	fields := make(map[models.FieldName]models.ExtractedField, len(models.FieldNames))
	for _, name := range models.FieldNames {
		fields[name] = extractField(text, name, prof)
	}
	return fields
}

func extractField(text string, name models.FieldName, prof *Profile) models.ExtractedField {
	var candidates []FieldPattern
	if prof != nil {
		candidates = append(candidates, prof.Fields[name]...)
	}
	candidates = append(candidates, genericProfile.Fields[name]...)

	for _, fp := range candidates {
		m := fp.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, ok := fp.normalize(m)
		if !ok {
			return models.ExtractedField{Name: name, Raw: m[0]}
		}
		return models.ExtractedField{Name: name, Raw: m[0], Value: value, Found: true}
	}
	return models.ExtractedField{Name: name}
}

var nonCardChars = regexp.MustCompile(`[^0-9Xx*]`)

// maskedCard renders the fixed display convention for card numbers: masked
// groups of four with the last four digits visible.
func maskedCard(lastFour string) string {
	return "XXXX XXXX XXXX " + lastFour
}

// normalizeCardNumber reduces any masked-number variant ("5522 43XX XXXX
// 1234", "443222******1234", "XXXX-XXXX-XXXX-1234") to the display
// convention. Fails when fewer than four trailing digits are recoverable.
// Normalisation is idempotent: an already-normalised number maps to itself.
func normalizeCardNumber(raw string) (string, bool) {
	cleaned := nonCardChars.ReplaceAllString(raw, "")
	// Trailing run of visible digits.
	end := len(cleaned)
	start := end
	for start > 0 && cleaned[start-1] >= '0' && cleaned[start-1] <= '9' {
		start--
	}
	digits := cleaned[start:end]
	if len(digits) < 4 {
		return "", false
	}
	return maskedCard(digits[len(digits)-4:]), true
}

// normalizeBillingCycle parses two DD/MM/YYYY dates and renders the
// canonical "start–end" representation, reordering when the source prints
// them end-first. A single parseable date is not enough; the field stays
// absent rather than guessed.
func normalizeBillingCycle(first, second string) (string, bool) {
	a, okA := parseDate(first)
	b, okB := parseDate(second)
	if !okA || !okB {
		return "", false
	}
	if b.Before(a) {
		a, b = b, a
	}
	return fmt.Sprintf("%s–%s", a.Format(canonicalDateLayout), b.Format(canonicalDateLayout)), true
}

// normalizeDueDate validates and canonicalises a DD/MM/YYYY date. Impossible
// calendar dates are rejected.
func normalizeDueDate(raw string) (string, bool) {
	t, ok := parseDate(raw)
	if !ok {
		return "", false
	}
	return t.Format(canonicalDateLayout), true
}

// Amounts outside this range are template noise (serial numbers, pin codes)
// rather than a plausible card balance.
const (
	minBalance = 0.01
	maxBalance = 100_000_000
)

// normalizeBalance strips currency notation, parses the amount and renders
// the display form. Negative, non-numeric and out-of-range values are
// rejected.
func normalizeBalance(raw string) (string, bool) {
	amount, err := parseAmount(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	if amount < minBalance || amount > maxBalance {
		return "", false
	}
	return formatINR(amount), true
}
