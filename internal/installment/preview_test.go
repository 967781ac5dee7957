package installment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/angsur/internal/installment"
)

func TestPreviewImpact(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	existing := []installment.Record{
		{ID: "1", MonthlyPayment: 100, MonthsPaid: 3, TotalMonths: 12},
		{ID: "2", MonthlyPayment: 50, MonthsPaid: 6, TotalMonths: 6}, // completed
	}

	t.Run("AddingNewRecord", func(t *testing.T) {
		draft := installment.Record{MonthlyPayment: 75, MonthsPaid: 0, TotalMonths: 4}

		impact := installment.PreviewImpact(existing, draft, "", now)

		assert.Equal(t, 4.0, impact.MonthsLeft)
		assert.Equal(t, 300.0, impact.RestBill)
		assert.Equal(t, 100.0, impact.BaselineMonthly)
		assert.Equal(t, 75.0, impact.DraftMonthly)
		assert.Equal(t, 175.0, impact.WithDraftMonthly)
		assert.Equal(t, 75.0, impact.AdditionalMonthly)
		assert.Equal(t, "April 2026", impact.FinishETA)
	})

	t.Run("EditingExcludesOwnRow", func(t *testing.T) {
		draft := installment.Record{ID: "1", MonthlyPayment: 120, MonthsPaid: 3, TotalMonths: 12}

		impact := installment.PreviewImpact(existing, draft, "1", now)

		assert.Zero(t, impact.BaselineMonthly)
		assert.Equal(t, 120.0, impact.DraftMonthly)
		assert.Equal(t, 120.0, impact.WithDraftMonthly)
	})

	t.Run("CompletedDraftAddsNothing", func(t *testing.T) {
		draft := installment.Record{MonthlyPayment: 75, MonthsPaid: 4, TotalMonths: 4}

		impact := installment.PreviewImpact(existing, draft, "", now)

		assert.Zero(t, impact.DraftMonthly)
		assert.Equal(t, impact.BaselineMonthly, impact.WithDraftMonthly)
		assert.Equal(t, "Already finished", impact.FinishETA)
	})
}
