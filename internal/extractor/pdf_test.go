package extractor

import (
	"errors"
	"strings"
	"testing"

	"github.com/cardlens/statement-parser/internal/models"
)

func TestExtractTextRejectsNonPDF(t *testing.T) {
	_, err := ExtractText([]byte("this is not a pdf document at all"))
	if err == nil {
		t.Fatal("expected an error for non-PDF bytes")
	}
	if !errors.Is(err, models.ErrUnreadableDocument) {
		t.Errorf("error = %v, want ErrUnreadableDocument", err)
	}
}

func TestExtractTextRejectsEmptyInput(t *testing.T) {
	_, err := ExtractText(nil)
	if !errors.Is(err, models.ErrUnreadableDocument) {
		t.Errorf("error = %v, want ErrUnreadableDocument", err)
	}
}

func TestIsReadableText(t *testing.T) {
	statement := []string{
		"HDFC Bank Credit Card Statement\n" +
			"Payment Due Date: 15/02/2024\n" +
			"Total Amount Due: Rs. 15,450.00",
	}
	if !isReadableText(statement) {
		t.Error("readable statement text rejected")
	}

	if isReadableText([]string{"short"}) {
		t.Error("too-short text accepted")
	}

	garbage := []string{strings.Repeat("\x01\x02\xfe\xff", 100)}
	if isReadableText(garbage) {
		t.Error("binary garbage accepted")
	}

	// Readable characters but no recognizable statement vocabulary:
	// typical output of an identity-encoded font gone wrong.
	nonsense := []string{strings.Repeat("qzx wvu ", 30)}
	if isReadableText(nonsense) {
		t.Error("text without statement vocabulary accepted")
	}
}

func TestTextQuality(t *testing.T) {
	if q := textQuality([]string{"plain ascii text 123"}); q != 1 {
		t.Errorf("ascii quality = %f, want 1", q)
	}
	if q := textQuality(nil); q != 0 {
		t.Errorf("empty quality = %f, want 0", q)
	}
	if q := textQuality([]string{"\x01\x02\x03\x04"}); q > 0.5 {
		t.Errorf("binary quality = %f, want low", q)
	}
}
