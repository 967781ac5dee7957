package installment

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/MrJamesThe3rd/angsur/internal/money"
)

// Share is one group's slice of the monthly burden.
type Share struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Pct    float64 `json:"pct"`
}

// Snapshot aggregates the active installments: total monthly burden,
// outstanding balance, and how the burden splits across banks and
// merchants. Completed records contribute nothing.
type Snapshot struct {
	MonthlyTotal float64 `json:"monthlyTotal"`
	Outstanding  float64 `json:"outstanding"`
	ActiveCount  int     `json:"activeCount"`
	ByBank       []Share `json:"byBank"`
	TopMerchants []Share `json:"topMerchants"`
	OthersAmount float64 `json:"othersAmount"`

	// Lines are copy-paste-ready one-line summaries. Percentages are
	// rounded to whole numbers here and only here.
	Lines []string `json:"lines"`
}

// TakeSnapshot computes the aggregate view over an enriched collection.
func TakeSnapshot(enriched []Enriched) Snapshot {
	var active []Enriched

	for _, r := range enriched {
		if r.MonthsLeft > 0 {
			active = append(active, r)
		}
	}

	var monthlyTotal, outstanding float64

	for _, r := range active {
		monthlyTotal += money.Parse(r.MonthlyPayment)
		outstanding += r.RestBill
	}

	byBank := groupShares(active, monthlyTotal, func(r Enriched) string { return r.Bank })
	byMerchant := groupShares(active, monthlyTotal, func(r Enriched) string { return MerchantOf(r.Transaction) })

	top := byMerchant
	if len(top) > 3 {
		top = top[:3]
	}

	var othersAmount float64

	for _, s := range byMerchant[len(top):] {
		othersAmount += s.Amount
	}

	snap := Snapshot{
		MonthlyTotal: monthlyTotal,
		Outstanding:  outstanding,
		ActiveCount:  len(active),
		ByBank:       byBank,
		TopMerchants: top,
		OthersAmount: othersAmount,
	}
	snap.Lines = summaryLines(snap)

	return snap
}

// groupShares sums monthly payments per group key, keeps first-encounter
// order for ties, and sorts descending by amount.
func groupShares(active []Enriched, monthlyTotal float64, keyOf func(Enriched) string) []Share {
	index := make(map[string]int)

	var shares []Share

	for _, r := range active {
		key := keyOf(r)

		i, ok := index[key]
		if !ok {
			i = len(shares)
			index[key] = i

			shares = append(shares, Share{Name: key})
		}

		shares[i].Amount += money.Parse(r.MonthlyPayment)
	}

	for i := range shares {
		if monthlyTotal != 0 {
			shares[i].Pct = shares[i].Amount / monthlyTotal * 100
		}
	}

	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Amount > shares[j].Amount })

	return shares
}

func summaryLines(snap Snapshot) []string {
	lines := []string{fmt.Sprintf(
		"Monthly burden: %s across %d lines | Outstanding: %s.",
		money.FormatIDR(snap.MonthlyTotal), snap.ActiveCount, money.FormatIDR(snap.Outstanding),
	)}

	if len(snap.ByBank) > 0 {
		parts := make([]string, len(snap.ByBank))
		for i, s := range snap.ByBank {
			parts[i] = fmt.Sprintf("%s %s (%d%%)", s.Name, money.FormatIDR(s.Amount), roundPct(s.Pct))
		}

		bankLine := strings.Join(parts, ", ")
		if len(parts) == 2 {
			bankLine = parts[0] + " vs " + parts[1]
		}

		lines = append(lines, "By bank (monthly share): "+bankLine+".")
	}

	if len(snap.TopMerchants) > 0 {
		parts := make([]string, 0, len(snap.TopMerchants)+1)
		for _, s := range snap.TopMerchants {
			parts = append(parts, fmt.Sprintf("%s %s (%d%%)", s.Name, money.FormatIDR(s.Amount), roundPct(s.Pct)))
		}

		if snap.OthersAmount > 0 {
			var pct int
			if snap.MonthlyTotal != 0 {
				pct = roundPct(snap.OthersAmount / snap.MonthlyTotal * 100)
			}

			parts = append(parts, fmt.Sprintf("others %s (%d%%)", money.FormatIDR(snap.OthersAmount), pct))
		}

		lines = append(lines, "By merchant (monthly share): "+strings.Join(parts, ", ")+".")
	}

	return lines
}

func roundPct(pct float64) int {
	return int(math.Round(pct))
}
