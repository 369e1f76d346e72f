// Package parser implements the statement parsing pipeline: issuer
// classification, issuer-aware field extraction, transaction-table
// extraction and result assembly. Issuer layouts are plain configuration
// records (see profile.go); the pipeline itself is issuer-agnostic.
package parser

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cardlens/statement-parser/internal/models"
)

// Engine runs the parsing pipeline over extracted statement text. It holds
// only read-only configuration and is safe for concurrent use; every Parse
// call is independent and leaves no state behind.
type Engine struct {
	maxTxns  int
	minScore int
	log      zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxTransactions caps the transaction list in the result.
func WithMaxTransactions(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxTxns = n
		}
	}
}

// WithMinKeywordScore sets the classification threshold below which a
// document is treated as coming from an unknown issuer.
func WithMinKeywordScore(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.minScore = n
		}
	}
}

// WithLogger attaches a logger for per-request pipeline diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine builds an engine over the configured issuer profiles.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		maxTxns:  DefaultMaxTransactions,
		minScore: defaultMinScore,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse runs the full pipeline on extracted page texts and always returns a
// result: missing fields, an empty transaction table or an unknown issuer
// degrade to placeholders, never to an error.
func (e *Engine) Parse(pages []string) *models.StatementResult {
	text := strings.Join(pages, "\n")

	classification, prof := classify(text, e.minScore)

	// Field and transaction extraction depend only on text+classification,
	// so they run side by side.
	var (
		fields map[models.FieldName]models.ExtractedField
		txns   []models.Transaction
		wg     sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		fields = extractFields(text, prof)
	}()
	go func() {
		defer wg.Done()
		txns = extractTransactions(text, prof, e.maxTxns)
	}()
	wg.Wait()

	result := assemble(classification, fields, txns)

	e.log.Debug().
		Str("issuer", result.Issuer).
		Float64("confidence", classification.Confidence).
		Int("transactions", len(result.Transactions)).
		Bool("cardNumber", result.CardNumber != models.NotFound).
		Bool("dueDate", result.DueDate != models.NotFound).
		Msg("statement parsed")

	return result
}

// assemble is pure composition: it folds the classification, the field map
// and the transaction list into the response shape. Absent values become
// explicit placeholders so the caller can always render a partial result.
func assemble(
	classification models.Classification,
	fields map[models.FieldName]models.ExtractedField,
	txns []models.Transaction,
) *models.StatementResult {
	if txns == nil {
		// nil marshals to JSON null; the contract promises an array.
		txns = []models.Transaction{}
	}
	return &models.StatementResult{
		Issuer:       classification.Issuer,
		CardNumber:   fields[models.FieldCardNumber].Display(),
		BillingCycle: fields[models.FieldBillingCycle].Display(),
		DueDate:      fields[models.FieldDueDate].Display(),
		TotalBalance: fields[models.FieldTotalBalance].Display(),
		Transactions: txns,
		Confidence:   classification.Confidence,
	}
}
