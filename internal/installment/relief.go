package installment

import (
	"fmt"
	"math"
	"time"

	"github.com/MrJamesThe3rd/angsur/internal/money"
)

// ReliefRow describes one future month of the projection. Offset 1 is the
// month after now.
type ReliefRow struct {
	Offset        int       `json:"offset"`
	Date          time.Time `json:"date"`
	Label         string    `json:"label"`
	ActiveCount   int       `json:"activeCount"`
	MonthlyDuring float64   `json:"monthlyDuring"`
	Relief        float64   `json:"relief"`
	MonthlyAfter  float64   `json:"monthlyAfter"`
}

// Relief is the forward timeline of how the monthly burden drops as
// installments finish.
type Relief struct {
	StartMonthly float64     `json:"startMonthly"`
	Rows         []ReliefRow `json:"rows"`
	Bullets      []string    `json:"bullets"`
}

// ProjectRelief walks month offsets 1..maxMonths once, releasing each
// active record's payment at its own monthsLeft. The horizon is bounded by
// the longest remaining term, so the projection is a single finite pass.
func ProjectRelief(enriched []Enriched, now time.Time) Relief {
	var active []Enriched

	for _, r := range enriched {
		if r.MonthsLeft > 0 {
			active = append(active, r)
		}
	}

	if len(active) == 0 {
		return Relief{}
	}

	var startMonthly float64

	maxMonths := 0

	reliefAt := make(map[int]float64)

	for _, r := range active {
		payment := money.Parse(r.MonthlyPayment)
		startMonthly += payment

		if m := int(math.Floor(r.MonthsLeft)); m > maxMonths {
			maxMonths = m
		}

		// Fractional monthsLeft (possible via dirty CSV input) never
		// lands exactly on a month boundary, so it releases nothing.
		if whole := int(r.MonthsLeft); float64(whole) == r.MonthsLeft {
			reliefAt[whole] += payment
		}
	}

	var (
		rows             []ReliefRow
		cumulativeRelief float64
	)

	for m := 1; m <= maxMonths; m++ {
		var (
			activeCount   int
			monthlyDuring float64
		)

		for _, r := range active {
			if r.MonthsLeft >= float64(m) {
				activeCount++
				monthlyDuring += money.Parse(r.MonthlyPayment)
			}
		}

		cumulativeRelief += reliefAt[m]

		date := AddMonths(now, m)
		rows = append(rows, ReliefRow{
			Offset:        m,
			Date:          date,
			Label:         date.Format("Jan 2006"),
			ActiveCount:   activeCount,
			MonthlyDuring: monthlyDuring,
			Relief:        reliefAt[m],
			MonthlyAfter:  startMonthly - cumulativeRelief,
		})
	}

	return Relief{
		StartMonthly: startMonthly,
		Rows:         rows,
		Bullets:      reliefBullets(rows),
	}
}

// reliefBullets renders up to six copy-paste lines for months where
// something actually finishes.
func reliefBullets(rows []ReliefRow) []string {
	var bullets []string

	for _, row := range rows {
		if len(bullets) == 6 || row.Offset > 6 {
			break
		}

		if row.Relief <= 0 {
			continue
		}

		plural := ""
		if row.Offset > 1 {
			plural = "s"
		}

		bullets = append(bullets, fmt.Sprintf(
			"In %s: relief %s (%d mo%s), monthly drops to %s.",
			row.Label, money.FormatIDR(row.Relief), row.Offset, plural, money.FormatIDR(row.MonthlyAfter),
		))
	}

	return bullets
}
