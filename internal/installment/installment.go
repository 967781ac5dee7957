// Package installment holds the core domain of the tracker: installment
// records, the derived view state computed from them, and the service that
// owns the canonical collection.
package installment

import (
	"time"

	"github.com/MrJamesThe3rd/angsur/internal/money"
)

// Record is the canonical, persisted shape of one installment. Numeric
// fields are JSON numbers; they may arrive fractional or dirty from CSV
// import, so every computation runs them through money.Parse first.
type Record struct {
	ID             string  `json:"id"`
	Bank           string  `json:"bank"`
	Transaction    string  `json:"transaction"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	MonthsPaid     float64 `json:"monthsPaid"`
	TotalMonths    float64 `json:"totalMonths"`
	Note           string  `json:"note"`
}

// Enriched is a Record plus the derived fields the UI and the aggregators
// consume. It is recomputed from the canonical collection on every read
// and never persisted.
type Enriched struct {
	Record

	MonthsLeft  float64
	RestBill    float64
	Progress    float64
	CurrentInst float64
	IsCompleted bool

	// FinishDate is the first of the calendar month in which the record
	// reaches zero months left. Zero when already completed.
	FinishDate time.Time
	FinishETA  string
}

// Enrich derives the view state for a single record. The reference time is
// explicit so callers (and tests) control what "this month" means; only
// the year and month of now are used.
func Enrich(r Record, now time.Time) Enriched {
	paid := money.Parse(r.MonthsPaid)
	total := money.Parse(r.TotalMonths)
	payment := money.Parse(r.MonthlyPayment)

	left := total - paid
	if left < 0 {
		left = 0
	}

	progress := paid / max(1, total) * 100

	current := paid + 1
	if current > total {
		current = total
	}

	e := Enriched{
		Record:      r,
		MonthsLeft:  left,
		RestBill:    left * payment,
		Progress:    progress,
		CurrentInst: current,
		IsCompleted: left == 0,
		FinishETA:   "Already finished",
	}

	if left > 0 {
		// A plan with one month left finishes this month, so the ETA
		// advances by monthsLeft-1 whole months.
		e.FinishDate = AddMonths(now, int(left)-1)
		e.FinishETA = e.FinishDate.Format("January 2006")
	}

	return e
}

// EnrichAll derives view state for a whole collection, preserving order.
func EnrichAll(records []Record, now time.Time) []Enriched {
	enriched := make([]Enriched, len(records))
	for i, r := range records {
		enriched[i] = Enrich(r, now)
	}

	return enriched
}

// AddMonths advances now by n whole months and pins the day to the 1st.
// Pinning the day avoids end-of-month overflow (Jan 31 + 1 month must not
// become Mar 3); time.Date normalizes the month overflow into the year.
func AddMonths(now time.Time, n int) time.Time {
	return time.Date(now.Year(), now.Month()+time.Month(n), 1, 0, 0, 0, 0, now.Location())
}
