// Package importer reads installment CSV files back into create params.
// The format is the one Export writes, but files edited by hand or by a
// spreadsheet are expected: column order is free, extra columns are
// ignored, and broken rows are skipped rather than failing the import.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/MrJamesThe3rd/angsur/internal/encoding"
	"github.com/MrJamesThe3rd/angsur/internal/installment"
	"github.com/MrJamesThe3rd/angsur/internal/money"
)

// colIndex maps header names to their position in a row.
type colIndex map[string]int

// Parse reads a CSV stream and returns the installments it describes.
// A nil, empty result means the file had no usable rows; callers treat
// that as a no-op rather than replacing the collection with nothing.
func Parse(r io.Reader) ([]installment.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}

		return nil, fmt.Errorf("read header: %w", err)
	}

	// Header names match case-sensitively; unknown columns (including the
	// derived monthsLeft/restBill that Export writes) are ignored.
	cols := make(colIndex)
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var params []installment.CreateParams

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			// Unparseable line: skip it and keep going.
			continue
		}

		p, ok := parseRow(cols, row)
		if !ok {
			continue
		}

		params = append(params, p)
	}

	return params, nil
}

func parseRow(cols colIndex, row []string) (installment.CreateParams, bool) {
	bank := cellValue(cols, row, "bank")
	transaction := cellValue(cols, row, "transaction")

	// A row with neither a bank nor a transaction is noise.
	if bank == "" && transaction == "" {
		return installment.CreateParams{}, false
	}

	totalMonths := 1.0
	if cell := cellValue(cols, row, "totalMonths"); cell != "" {
		totalMonths = money.ParseString(cell)
	}

	return installment.CreateParams{
		Bank:           bank,
		Transaction:    transaction,
		MonthlyPayment: money.ParseString(cellValue(cols, row, "monthlyPayment")),
		MonthsPaid:     money.ParseString(cellValue(cols, row, "monthsPaid")),
		TotalMonths:    totalMonths,
		Note:           cellValue(cols, row, "note"),
	}, true
}

func cellValue(cols colIndex, row []string, name string) string {
	idx, ok := cols[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
