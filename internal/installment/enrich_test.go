package installment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/angsur/internal/installment"
)

func TestEnrich(t *testing.T) {
	now := time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)

	type testCase struct {
		name            string
		record          installment.Record
		wantMonthsLeft  float64
		wantRestBill    float64
		wantProgress    float64
		wantCurrentInst float64
		wantCompleted   bool
		wantETA         string
	}

	tests := []testCase{
		{
			name:            "MidTerm",
			record:          installment.Record{MonthlyPayment: 70000, MonthsPaid: 4, TotalMonths: 24},
			wantMonthsLeft:  20,
			wantRestBill:    1400000,
			wantProgress:    float64(4) / 24 * 100,
			wantCurrentInst: 5,
			wantETA:         "August 2027",
		},
		{
			name:            "OneMonthLeftFinishesThisMonth",
			record:          installment.Record{MonthlyPayment: 76492, MonthsPaid: 11, TotalMonths: 12},
			wantMonthsLeft:  1,
			wantRestBill:    76492,
			wantProgress:    float64(11) / 12 * 100,
			wantCurrentInst: 12,
			wantETA:         "January 2026",
		},
		{
			name:            "Completed",
			record:          installment.Record{MonthlyPayment: 10000, MonthsPaid: 12, TotalMonths: 12},
			wantMonthsLeft:  0,
			wantRestBill:    0,
			wantProgress:    100,
			wantCurrentInst: 12,
			wantCompleted:   true,
			wantETA:         "Already finished",
		},
		{
			name:            "ZeroTotalMonthsDoesNotDivideByZero",
			record:          installment.Record{MonthlyPayment: 5000, MonthsPaid: 0, TotalMonths: 0},
			wantMonthsLeft:  0,
			wantRestBill:    0,
			wantProgress:    0,
			wantCurrentInst: 0,
			wantCompleted:   true,
			wantETA:         "Already finished",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := installment.Enrich(tt.record, now)

			assert.Equal(t, tt.wantMonthsLeft, got.MonthsLeft)
			assert.Equal(t, tt.wantRestBill, got.RestBill)
			assert.InDelta(t, tt.wantProgress, got.Progress, 1e-9)
			assert.Equal(t, tt.wantCurrentInst, got.CurrentInst)
			assert.Equal(t, tt.wantCompleted, got.IsCompleted)
			assert.Equal(t, tt.wantETA, got.FinishETA)
		})
	}
}

func TestEnrich_CompletionMatchesProgress(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	records := []installment.Record{
		{MonthlyPayment: 100, MonthsPaid: 0, TotalMonths: 12},
		{MonthlyPayment: 100, MonthsPaid: 6, TotalMonths: 12},
		{MonthlyPayment: 100, MonthsPaid: 12, TotalMonths: 12},
		{MonthlyPayment: 100, MonthsPaid: 1, TotalMonths: 1},
	}

	for _, r := range records {
		got := installment.Enrich(r, now)

		assert.GreaterOrEqual(t, got.Progress, 0.0)
		assert.LessOrEqual(t, got.Progress, 100.0)
		assert.Equal(t, got.IsCompleted, got.Progress == 100)
		assert.Equal(t, got.IsCompleted, got.MonthsLeft == 0)
	}
}

func TestAddMonths(t *testing.T) {
	type testCase struct {
		name string
		from time.Time
		n    int
		want time.Time
	}

	tests := []testCase{
		{
			name: "PinsDayToFirst",
			from: time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "OverflowsIntoNextYear",
			from: time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC),
			n:    3,
			want: time.Date(2027, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "ZeroKeepsMonth",
			from: time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC),
			n:    0,
			want: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, installment.AddMonths(tt.from, tt.n))
		})
	}
}
