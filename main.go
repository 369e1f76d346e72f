// Command statement-parser converts credit-card statement PDFs into
// structured JSON or CSV from the command line.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cardlens/statement-parser/internal/extractor"
	"github.com/cardlens/statement-parser/internal/parser"
	"github.com/cardlens/statement-parser/internal/writer"
)

const version = "1.0.0"

func main() {
	csvFlag := flag.Bool("csv", false, "Write CSV output instead of JSON")
	outputFlag := flag.String("output", "", "Output file path (defaults to stdout for JSON, input name with .csv for CSV)")
	prettyFlag := flag.Bool("pretty", true, "Indent JSON output")
	maxTxnsFlag := flag.Int("max-transactions", parser.DefaultMaxTransactions, "Cap on extracted transaction rows")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Credit Card Statement Parser

Extracts issuer, card number, billing cycle, due date, total balance and
transactions from credit-card statement PDFs.

Usage:
  statement-parser [flags] <statement.pdf> [statement2.pdf ...]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Supported issuers:
  %s

The issuer is detected automatically; statements from other issuers are
parsed with generic patterns and reported as "Unknown".
`, strings.Join(parser.SupportedIssuers(), ", "))
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("statement-parser v%s\n", version)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	engine := parser.NewEngine(parser.WithMaxTransactions(*maxTxnsFlag))

	for _, inputPath := range flag.Args() {
		if err := processFile(engine, inputPath, *outputFlag, *csvFlag, *prettyFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(engine *parser.Engine, inputPath, outputPath string, asCSV, pretty bool) error {
	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("could not read input file: %w", err)
	}

	pages, err := extractor.ExtractText(data)
	if err != nil {
		return fmt.Errorf("text extraction failed: %w", err)
	}

	result := engine.Parse(pages)

	if result.Issuer != "Unknown" {
		fmt.Fprintf(os.Stderr, "Detected issuer: %s\n", result.Issuer)
	} else {
		fmt.Fprintln(os.Stderr, "Issuer not recognised; generic patterns applied")
	}
	fmt.Fprintf(os.Stderr, "Found %d transaction(s)\n", len(result.Transactions))

	if asCSV {
		outPath := outputPath
		if outPath == "" {
			outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
		}
		w := &writer.CSVWriter{IncludeSummary: true}
		if err := w.WriteToFile(outPath, result); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Output: %s\n", outPath)
		return nil
	}

	var encoded []byte
	if pretty {
		encoded, err = json.MarshalIndent(result, "", "  ")
	} else {
		encoded, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, append(encoded, '\n'), 0o644)
	}
	fmt.Println(string(encoded))
	return nil
}
