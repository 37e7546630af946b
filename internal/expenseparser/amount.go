package expenseparser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountStrategies are tried in order; the first strategy producing any
// match wins. The ordering is load-bearing: explicitly marked currency
// amounts beat bare numbers, so "$5" in "2 coffees $5" is preferred over
// the leading quantity.
var amountStrategies = []*regexp.Regexp{
	// $12.50, $12
	regexp.MustCompile(`\$\d+(?:\.\d{1,2})?\b`),
	// 12.50$, 12$
	regexp.MustCompile(`\b\d+(?:\.\d{1,2})?\$`),
	// bare number, last resort
	regexp.MustCompile(`\b\d+(?:\.\d{1,2})?\b`),
}

// ExtractAmount scans text for a monetary amount and returns it together
// with the residual description (the text with the matched substring
// removed and whitespace normalized). Within the winning strategy, the
// last occurrence in the text takes precedence, so a trailing amount
// overrides numbers that are part of the description. When nothing
// matches, the amount is zero and the text is returned unchanged.
func ExtractAmount(text string) (decimal.Decimal, string) {
	for _, strategy := range amountStrategies {
		locs := strategy.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}

		start, end := locs[len(locs)-1][0], locs[len(locs)-1][1]
		matched := strings.Trim(text[start:end], "$")
		amount, err := decimal.NewFromString(matched)
		if err != nil {
			continue
		}

		residual := normalizeSpace(text[:start] + text[end:])
		return amount, residual
	}
	return decimal.Zero, normalizeSpace(text)
}

// normalizeSpace collapses runs of whitespace to single spaces and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
