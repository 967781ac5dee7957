// Package money normalizes messy user and CSV input into finite numbers
// and formats rupiah amounts for display.
package money

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numberToken matches the first signed decimal token in a string. Matching
// only the first occurrence is what makes "5-5" parse as 5 and "1.2.3" as
// 1.2 instead of failing outright.
var numberToken = regexp.MustCompile(`-?\d+(\.\d+)?`)

// Parse converts arbitrary input into a finite float64. Numbers pass
// through unchanged, nil and empty strings become 0, and strings are
// reduced to their first number-like token after thousands separators are
// stripped. Parse never fails; anything unusable collapses to 0.
func Parse(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		return ParseString(n)
	default:
		return ParseString(fmt.Sprint(v))
	}
}

// ParseString implements the string half of Parse.
func ParseString(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")

	token := numberToken.FindString(s)
	if token == "" {
		return 0
	}

	n, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}

	return finite(n)
}

func finite(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}

	return n
}

// idPrinter groups digits the way id-ID locales do: Rp12.345.
var idPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount as whole rupiah. Rounding happens here and
// only here; stored amounts keep whatever precision the parser produced.
func FormatIDR(n float64) string {
	if math.IsNaN(n) {
		return "-"
	}

	return idPrinter.Sprintf("Rp%d", int64(math.Round(n)))
}
