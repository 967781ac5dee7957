package installment

import (
	"time"

	"github.com/MrJamesThe3rd/angsur/internal/money"
)

// Impact is the "what happens if you save this" preview shown while
// adding or editing an installment.
type Impact struct {
	MonthsLeft float64
	RestBill   float64

	// BaselineMonthly is the burden of every other active installment.
	BaselineMonthly float64
	// DraftMonthly is the draft's contribution: its payment while it has
	// months left, zero once completed.
	DraftMonthly      float64
	WithDraftMonthly  float64
	AdditionalMonthly float64

	FinishETA string
}

// PreviewImpact computes the form preview for a draft record. When editing
// an existing record, editingID excludes it from the baseline so the draft
// does not count twice.
func PreviewImpact(all []Record, draft Record, editingID string, now time.Time) Impact {
	var baseline float64

	for _, r := range all {
		if editingID != "" && r.ID == editingID {
			continue
		}

		left := money.Parse(r.TotalMonths) - money.Parse(r.MonthsPaid)
		if left > 0 {
			baseline += money.Parse(r.MonthlyPayment)
		}
	}

	enriched := Enrich(draft, now)

	var draftMonthly float64
	if enriched.MonthsLeft > 0 {
		draftMonthly = money.Parse(draft.MonthlyPayment)
	}

	return Impact{
		MonthsLeft:        enriched.MonthsLeft,
		RestBill:          enriched.RestBill,
		BaselineMonthly:   baseline,
		DraftMonthly:      draftMonthly,
		WithDraftMonthly:  baseline + draftMonthly,
		AdditionalMonthly: draftMonthly,
		FinishETA:         enriched.FinishETA,
	}
}
