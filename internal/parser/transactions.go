package parser

import (
	"regexp"
	"strings"

	"github.com/cardlens/statement-parser/internal/models"
)

// DefaultMaxTransactions bounds the response payload; extra rows are
// truncated in encountered order, never ranked.
const DefaultMaxTransactions = 20

// Row descriptions shorter than this are column fragments, not merchants.
const minDescriptionLen = 4

// refPattern strips statement reference tokens from descriptions.
var refPattern = regexp.MustCompile(`\(Ref#[^)]*\)`)

// extractTransactions scans for the issuer's transaction-table region and
// parses each row inside it. Lines that do not match the row pattern are
// skipped silently; that tolerates repeated headers and page-break
// artifacts. No table-start marker means no region: the result is empty,
// not an error.
func extractTransactions(text string, prof *Profile, maxRows int) []models.Transaction {
	tableStart := genericProfile.TableStart
	tableEnd := genericProfile.TableEnd
	row := genericProfile.Row
	if prof != nil {
		if prof.TableStart != nil {
			tableStart = prof.TableStart
		}
		if prof.TableEnd != nil {
			tableEnd = prof.TableEnd
		}
		if prof.Row != nil {
			row = prof.Row
		}
	}
	if maxRows <= 0 {
		maxRows = DefaultMaxTransactions
	}

	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if tableStart.MatchString(line) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	var txns []models.Transaction
	for _, line := range lines[start+1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if tableEnd.MatchString(line) {
			break
		}
		txn, ok := parseRow(row, line)
		if !ok {
			continue
		}
		txns = append(txns, txn)
		if len(txns) == maxRows {
			break
		}
	}
	return txns
}

// parseRow matches one table line against the row pattern and normalises it.
// Group layout: date, description, amount, optional credit marker.
func parseRow(row *regexp.Regexp, line string) (models.Transaction, bool) {
	m := row.FindStringSubmatch(line)
	if m == nil {
		return models.Transaction{}, false
	}

	date, ok := parseDate(m[1])
	if !ok {
		return models.Transaction{}, false
	}

	desc := collapseSpaces(refPattern.ReplaceAllString(m[2], ""))
	if len(desc) > 80 {
		desc = desc[:80]
	}
	if len(desc) < minDescriptionLen {
		return models.Transaction{}, false
	}

	amount, err := parseAmount(m[3])
	if err != nil || amount < minBalance || amount > maxBalance {
		return models.Transaction{}, false
	}

	credit := false
	if len(m) > 4 {
		marker := strings.ToUpper(strings.TrimSpace(m[4]))
		credit = marker == "CR"
	}

	// Sign convention: debits positive, credits negative.
	signed := amount
	display := formatINR(amount)
	if credit {
		signed = -amount
		display += " Cr"
	}

	return models.Transaction{
		Date:         date.Format(canonicalDateLayout),
		Description:  desc,
		Amount:       display,
		SignedAmount: signed,
		Raw:          line,
	}, true
}
