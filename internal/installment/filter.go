package installment

import (
	"sort"
	"strings"
)

// AllBanks disables bank filtering.
const AllBanks = "All"

// Filter narrows an enriched collection by bank, completion state, and a
// free-text query over transaction, bank, and note.
func Filter(rows []Enriched, query, bank string, hideCompleted bool) []Enriched {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []Enriched

	for _, r := range rows {
		if bank != "" && bank != AllBanks && r.Bank != bank {
			continue
		}

		if hideCompleted && r.MonthsLeft == 0 {
			continue
		}

		if q != "" &&
			!strings.Contains(strings.ToLower(r.Transaction), q) &&
			!strings.Contains(strings.ToLower(r.Bank), q) &&
			!strings.Contains(strings.ToLower(r.Note), q) {
			continue
		}

		out = append(out, r)
	}

	return out
}

// SortKey names a sortable column.
type SortKey string

const (
	SortByBank           SortKey = "bank"
	SortByTransaction    SortKey = "transaction"
	SortByMonthlyPayment SortKey = "monthlyPayment"
	SortByMonthsPaid     SortKey = "monthsPaid"
	SortByTotalMonths    SortKey = "totalMonths"
	SortByMonthsLeft     SortKey = "monthsLeft"
	SortByRestBill       SortKey = "restBill"
)

// SortRows returns a sorted copy; the input is left alone. Numeric columns
// compare numerically, everything else as plain strings. The sort is
// stable so equal rows keep their relative order.
func SortRows(rows []Enriched, key SortKey, descending bool) []Enriched {
	sorted := make([]Enriched, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		less := lessByKey(sorted[i], sorted[j], key)
		if descending {
			return lessByKey(sorted[j], sorted[i], key)
		}

		return less
	})

	return sorted
}

func lessByKey(a, b Enriched, key SortKey) bool {
	switch key {
	case SortByTransaction:
		return a.Transaction < b.Transaction
	case SortByMonthlyPayment:
		return a.MonthlyPayment < b.MonthlyPayment
	case SortByMonthsPaid:
		return a.MonthsPaid < b.MonthsPaid
	case SortByTotalMonths:
		return a.TotalMonths < b.TotalMonths
	case SortByMonthsLeft:
		return a.MonthsLeft < b.MonthsLeft
	case SortByRestBill:
		return a.RestBill < b.RestBill
	default:
		return a.Bank < b.Bank
	}
}

// Banks lists the distinct bank names in the collection, sorted.
func Banks(records []Record) []string {
	seen := make(map[string]struct{})

	var banks []string

	for _, r := range records {
		if _, ok := seen[r.Bank]; ok {
			continue
		}

		seen[r.Bank] = struct{}{}

		banks = append(banks, r.Bank)
	}

	sort.Strings(banks)

	return banks
}

// Totals are the header-card sums over active installments.
type Totals struct {
	TotalMonthly    float64 `json:"totalMonthly"`
	TotalRemaining  float64 `json:"totalRemaining"`
	TotalMonthsLeft float64 `json:"totalMonthsLeft"`
	ActiveCount     int     `json:"activeCount"`
}

// SumTotals computes the header-card totals from an enriched collection.
func SumTotals(rows []Enriched) Totals {
	var t Totals

	for _, r := range rows {
		if r.MonthsLeft <= 0 {
			continue
		}

		t.TotalMonthly += r.MonthlyPayment
		t.TotalRemaining += r.RestBill
		t.TotalMonthsLeft += r.MonthsLeft
		t.ActiveCount++
	}

	return t
}

// Grouped splits sorted rows into per-bank groups, preserving row order
// and first-encounter group order.
func Grouped(rows []Enriched) [][]Enriched {
	index := make(map[string]int)

	var groups [][]Enriched

	for _, r := range rows {
		i, ok := index[r.Bank]
		if !ok {
			i = len(groups)
			index[r.Bank] = i

			groups = append(groups, nil)
		}

		groups[i] = append(groups[i], r)
	}

	return groups
}
