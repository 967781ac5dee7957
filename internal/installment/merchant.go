package installment

import "strings"

// merchantKeywords maps known substrings of transaction descriptions to a
// short merchant label. Checked in order; add new merchants by appending
// rows. The matching is intentionally approximate: it exists to group the
// insights view, not to categorize authoritatively.
var merchantKeywords = []struct {
	keyword string
	label   string
}{
	{"TOKOPEDIA", "Tokopedia"},
	{"SHOPEE", "Shopee"},
	{"MOBEE", "Mobee"},
	{"OTTENCOFFEE", "Ottencoffee"},
	{"LOTTE", "Lotte"},
	{"GLOBAL DIGITAL NIA", "Global Digital NIA"},
}

// MerchantOf derives a merchant label from a transaction description.
// Unknown merchants fall back to the first whitespace- or comma-delimited
// token, truncated to 14 characters; an empty fallback becomes "Other".
func MerchantOf(transaction string) string {
	upper := strings.ToUpper(transaction)

	for _, m := range merchantKeywords {
		if strings.Contains(upper, m.keyword) {
			return m.label
		}
	}

	token := transaction
	if i := strings.IndexAny(token, " \t\n,"); i >= 0 {
		token = token[:i]
	}

	if runes := []rune(token); len(runes) > 14 {
		token = string(runes[:14])
	}

	if token == "" {
		return "Other"
	}

	return token
}
