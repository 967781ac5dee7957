package installment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/angsur/internal/installment"
)

func enrichedFixture(t *testing.T) []installment.Enriched {
	t.Helper()

	now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	records := []installment.Record{
		{ID: "1", Bank: "Mandiri", Transaction: "SHOPEE Jakar", MonthlyPayment: 200, MonthsPaid: 3, TotalMonths: 12, Note: "promo"},
		{ID: "2", Bank: "BRI", Transaction: "TOKOPEDIA_CYBS", MonthlyPayment: 300, MonthsPaid: 12, TotalMonths: 12},
		{ID: "3", Bank: "BRI", Transaction: "OTTENCOFFEE", MonthlyPayment: 100, MonthsPaid: 5, TotalMonths: 6, Note: "paid via VA"},
	}

	return installment.EnrichAll(records, now)
}

func TestFilter(t *testing.T) {
	rows := enrichedFixture(t)

	type testCase struct {
		name          string
		query         string
		bank          string
		hideCompleted bool
		wantIDs       []string
	}

	tests := []testCase{
		{name: "NoFilters", bank: installment.AllBanks, wantIDs: []string{"1", "2", "3"}},
		{name: "BankExactMatch", bank: "BRI", wantIDs: []string{"2", "3"}},
		{name: "HideCompleted", bank: installment.AllBanks, hideCompleted: true, wantIDs: []string{"1", "3"}},
		{name: "QueryMatchesTransaction", query: "tokopedia", bank: installment.AllBanks, wantIDs: []string{"2"}},
		{name: "QueryMatchesNote", query: "va", bank: installment.AllBanks, wantIDs: []string{"3"}},
		{name: "QueryMatchesBank", query: "mandiri", bank: installment.AllBanks, wantIDs: []string{"1"}},
		{name: "NoMatch", query: "gopay", bank: installment.AllBanks, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := installment.Filter(rows, tt.query, tt.bank, tt.hideCompleted)

			var ids []string
			for _, r := range got {
				ids = append(ids, r.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSortRows(t *testing.T) {
	rows := enrichedFixture(t)

	byPaymentAsc := installment.SortRows(rows, installment.SortByMonthlyPayment, false)
	require.Len(t, byPaymentAsc, 3)
	assert.Equal(t, "3", byPaymentAsc[0].ID)
	assert.Equal(t, "1", byPaymentAsc[1].ID)
	assert.Equal(t, "2", byPaymentAsc[2].ID)

	byPaymentDesc := installment.SortRows(rows, installment.SortByMonthlyPayment, true)
	assert.Equal(t, "2", byPaymentDesc[0].ID)

	byBank := installment.SortRows(rows, installment.SortByBank, false)
	assert.Equal(t, "BRI", byBank[0].Bank)
	// Stable: the two BRI rows keep their original relative order.
	assert.Equal(t, "2", byBank[0].ID)
	assert.Equal(t, "3", byBank[1].ID)

	// Input untouched.
	assert.Equal(t, "1", rows[0].ID)
}

func TestSumTotals(t *testing.T) {
	totals := installment.SumTotals(enrichedFixture(t))

	assert.Equal(t, 300.0, totals.TotalMonthly)
	assert.Equal(t, 200.0*9+100.0*1, totals.TotalRemaining)
	assert.Equal(t, 10.0, totals.TotalMonthsLeft)
	assert.Equal(t, 2, totals.ActiveCount)
}

func TestBanks(t *testing.T) {
	records := []installment.Record{
		{Bank: "Mandiri"},
		{Bank: "BRI"},
		{Bank: "Mandiri"},
	}

	assert.Equal(t, []string{"BRI", "Mandiri"}, installment.Banks(records))
}

func TestGrouped(t *testing.T) {
	groups := installment.Grouped(enrichedFixture(t))

	require.Len(t, groups, 2)
	assert.Equal(t, "Mandiri", groups[0][0].Bank)
	require.Len(t, groups[1], 2)
	assert.Equal(t, "BRI", groups[1][0].Bank)
}
