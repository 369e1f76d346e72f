package parser

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractTransactionsRegion(t *testing.T) {
	// Rows before the table-start marker and after the end marker must
	// never be included, even when they match the row pattern.
	text := strings.Join([]string{
		"HDFC Bank Credit Card Statement",
		"01/01/2024 PRE TABLE NOISE 99.99",
		"Domestic Transactions",
		"05/01/2024 AMAZON SHOPPING 2,500.00",
		"10/01/2024 SWIGGY FOOD 850.00",
		"Reward Points Summary",
		"12/01/2024 POST TABLE NOISE 49.00",
	}, "\n")

	txns := extractTransactions(text, hdfcProfile, DefaultMaxTransactions)
	if len(txns) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(txns))
	}
	if txns[0].Description != "AMAZON SHOPPING" {
		t.Errorf("txns[0].Description: got %q", txns[0].Description)
	}
	if txns[1].Description != "SWIGGY FOOD" {
		t.Errorf("txns[1].Description: got %q", txns[1].Description)
	}
}

func TestExtractTransactionsNoMarker(t *testing.T) {
	// Without a table-start marker there is no region; footer digits that
	// happen to look like rows are not transactions.
	text := "Customer copy\n01/01/2024 PAGE FOOTER 123.45\n"

	txns := extractTransactions(text, nil, DefaultMaxTransactions)
	if len(txns) != 0 {
		t.Fatalf("transactions: got %d, want 0", len(txns))
	}
}

func TestExtractTransactionsSkipsUnmatchedLines(t *testing.T) {
	text := strings.Join([]string{
		"Domestic Transactions",
		"Date Transaction Description Amount",
		"05/01/2024 AMAZON SHOPPING 2,500.00",
		"-- page break --",
		"carried forward",
		"10/01/2024 SWIGGY FOOD 850.00",
	}, "\n")

	txns := extractTransactions(text, nil, DefaultMaxTransactions)
	if len(txns) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(txns))
	}
}

func TestExtractTransactionsCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("Domestic Transactions\n")
	for i := 1; i <= 30; i++ {
		fmt.Fprintf(&b, "%02d/01/2024 MERCHANT NUMBER %d 100.00\n", (i%28)+1, i)
	}

	txns := extractTransactions(b.String(), nil, 20)
	if len(txns) != 20 {
		t.Fatalf("transactions: got %d, want 20 (cap)", len(txns))
	}
	// Truncation keeps encountered order.
	if txns[0].Description != "MERCHANT NUMBER 1" {
		t.Errorf("txns[0].Description: got %q", txns[0].Description)
	}
}

func TestExtractTransactionsSignConvention(t *testing.T) {
	text := strings.Join([]string{
		"Domestic Transactions",
		"05/01/2024 AMAZON SHOPPING 2,500.00",
		"08/01/2024 PAYMENT RECEIVED 5,000.00 Cr",
	}, "\n")

	txns := extractTransactions(text, hdfcProfile, DefaultMaxTransactions)
	if len(txns) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(txns))
	}

	debit := txns[0]
	if debit.SignedAmount != 2500 {
		t.Errorf("debit.SignedAmount: got %f, want 2500", debit.SignedAmount)
	}
	if debit.Amount != "Rs. 2,500.00" {
		t.Errorf("debit.Amount: got %q", debit.Amount)
	}

	credit := txns[1]
	if credit.SignedAmount != -5000 {
		t.Errorf("credit.SignedAmount: got %f, want -5000", credit.SignedAmount)
	}
	if credit.Amount != "Rs. 5,000.00 Cr" {
		t.Errorf("credit.Amount: got %q", credit.Amount)
	}
}

func TestExtractTransactionsAxisRows(t *testing.T) {
	text := strings.Join([]string{
		"Axis Bank Statement",
		"DATE TRANSACTION DETAILS MERCHANT CATEGORY AMOUNT",
		"15/01/2024 AMAZON PAY INDIA 2,500.00 Dr",
		"18/01/2024 NEFT PAYMENT RECEIVED 10,000.00 Cr",
		"*** End of Statement ***",
		"20/01/2024 AFTER END 1.00 Dr",
	}, "\n")

	txns := extractTransactions(text, axisProfile, DefaultMaxTransactions)
	if len(txns) != 2 {
		t.Fatalf("transactions: got %d, want 2", len(txns))
	}
	if txns[0].SignedAmount != 2500 {
		t.Errorf("txns[0].SignedAmount: got %f", txns[0].SignedAmount)
	}
	if txns[1].SignedAmount != -10000 {
		t.Errorf("txns[1].SignedAmount: got %f", txns[1].SignedAmount)
	}
}

func TestExtractTransactionsRejectsInvalidDates(t *testing.T) {
	text := strings.Join([]string{
		"Domestic Transactions",
		"31/02/2024 IMPOSSIBLE DATE MERCHANT 100.00",
		"05/01/2024 REAL MERCHANT 100.00",
	}, "\n")

	txns := extractTransactions(text, nil, DefaultMaxTransactions)
	if len(txns) != 1 {
		t.Fatalf("transactions: got %d, want 1", len(txns))
	}
	if txns[0].Description != "REAL MERCHANT" {
		t.Errorf("txns[0].Description: got %q", txns[0].Description)
	}
}

func TestExtractTransactionsKeepsRawRow(t *testing.T) {
	text := "Domestic Transactions\n05/01/2024 AMAZON SHOPPING (Ref#AB123) Rs. 2,500.00\n"

	txns := extractTransactions(text, nil, DefaultMaxTransactions)
	if len(txns) != 1 {
		t.Fatalf("transactions: got %d, want 1", len(txns))
	}
	if txns[0].Description != "AMAZON SHOPPING" {
		t.Errorf("reference token not stripped: %q", txns[0].Description)
	}
	if !strings.Contains(txns[0].Raw, "Ref#AB123") {
		t.Errorf("raw row text lost: %q", txns[0].Raw)
	}
}
