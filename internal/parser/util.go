package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// canonicalDateLayout is the single locale convention used for every date in
// the result: DD/MM/YYYY, as printed by the supported issuers.
const canonicalDateLayout = "02/01/2006"

// parseDateLayout tolerates single-digit day/month in source text.
const parseDateLayout = "2/1/2006"

var collapseSpacesPattern = regexp.MustCompile(`\s+`)

// parseDate parses a DD/MM/YYYY date strictly. Impossible calendar dates
// (e.g. 31/02/2024) are rejected by time.Parse.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(parseDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseAmount converts strings like "1,234.56", "Rs. 850.00" or "₹2,500" to
// a float64.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, "Rs.", "")
	s = strings.ReplaceAll(s, "Rs", "")
	s = strings.ReplaceAll(s, "INR", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00A0", "")
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}

var inrPrinter = message.NewPrinter(language.English)

// formatINR renders an amount in the display convention used by the
// supported issuers: "Rs. 15,450.00".
func formatINR(amount float64) string {
	return inrPrinter.Sprintf("Rs. %v",
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// collapseSpaces squashes runs of whitespace into single spaces and trims.
func collapseSpaces(s string) string {
	return strings.TrimSpace(collapseSpacesPattern.ReplaceAllString(s, " "))
}
