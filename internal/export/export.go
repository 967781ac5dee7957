// Package export writes the installment collection as CSV. The file
// carries the derived monthsLeft and restBill columns so it is readable
// on its own; the importer ignores them and recomputes.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/angsur/internal/installment"
)

const header = "bank,transaction,monthlyPayment,monthsPaid,totalMonths,monthsLeft,restBill,note"

// CSV writes one row per enriched record. Transaction and note are always
// double-quoted with internal quotes doubled; the remaining fields are
// written bare.
func CSV(w io.Writer, rows []installment.Enriched) error {
	var sb strings.Builder

	sb.WriteString(header)
	sb.WriteByte('\n')

	for i, r := range rows {
		sb.WriteString(strings.Join([]string{
			r.Bank,
			quote(r.Transaction),
			number(r.MonthlyPayment),
			number(r.MonthsPaid),
			number(r.TotalMonths),
			number(r.MonthsLeft),
			number(r.RestBill),
			quote(r.Note),
		}, ","))

		if i < len(rows)-1 {
			sb.WriteByte('\n')
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// number renders an amount without float artifacts: 8.5 stays "8.5",
// whole values stay integral, and 0.1+0.2 noise is rounded away.
func number(n float64) string {
	return decimal.NewFromFloat(n).String()
}
