package view

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/angsur/internal/money"
)

const saveTimeout = 5 * time.Second

// SaveCtx returns a context with a standard timeout for persistence.
func SaveCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), saveTimeout)
}

// FormatIDR renders a whole-rupiah amount.
func FormatIDR(n float64) string {
	return money.FormatIDR(n)
}

// ProgressBar renders a ten-cell progress bar with the rounded percentage.
func ProgressBar(pct float64) string {
	filled := int(math.Round(pct / 10))
	if filled < 0 {
		filled = 0
	}

	if filled > 10 {
		filled = 10
	}

	return fmt.Sprintf("%s%s %d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", 10-filled),
		int(math.Round(pct)),
	)
}

// MonthLabel renders the long month/year label shown in the header.
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}
