// Package parse converts free-form Indonesian text into numeric amounts.
//
// The parser is tolerant by design: digits, number words ("lima ribu"),
// mixed forms ("2 juta"), and thousands separators ("5.000") all resolve to
// the same value. A missing amount is a normal outcome, not an error.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// Amount is the result of parsing a piece of text.
// Found is false when no numeric value could be extracted; Currency is
// still populated (defaulting to IDR) so callers can keep the hint.
type Amount struct {
	Value    float64
	Currency string
	Found    bool
}

// Ordered replacements. Multi-word phrases come first so single-word scale
// substitutions cannot clobber them ("setengah juta" must not see "juta"
// replaced out from under it).
var replacements = []struct {
	phrase string
	digits string
}{
	{"setengah juta", "500000"},
	{"seperempat juta", "250000"},
	{"miliar", "000000000"},
	{"juta", "000000"},
	{"jt", "000000"},
	{"ribu", "000"},
	{"rb", "000"},
	{"satu", "1"},
	{"dua", "2"},
	{"tiga", "3"},
	{"empat", "4"},
	{"lima", "5"},
	{"enam", "6"},
	{"tujuh", "7"},
	{"delapan", "8"},
	{"sembilan", "9"},
}

var (
	nonAlnumRe  = regexp.MustCompile(`[^0-9a-z.,\s]`)
	currencyRe  = regexp.MustCompile(`\b(rp|idr|rupiah)\b`)
	usdHintRe   = regexp.MustCompile(`\$|usd|dollar|dolar`)
	eurHintRe   = regexp.MustCompile(`eur|€`)
	digitRunRe  = regexp.MustCompile(`\d+`)
	wordBoundRe = map[string]*regexp.Regexp{}
)

func init() {
	for _, r := range replacements {
		wordBoundRe[r.phrase] = regexp.MustCompile(`\b` + r.phrase + `\b`)
	}
}

// Parse extracts the first numeric value and a currency tag from text.
// Pure and idempotent: Parse of a parsed value's decimal form yields the
// same value.
func Parse(text string) Amount {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return Amount{Currency: "IDR"}
	}

	// Currency hints are checked before punctuation is stripped so that
	// literal $ and € still count. First match wins, USD before EUR.
	currency := "IDR"
	if usdHintRe.MatchString(t) {
		currency = "USD"
	} else if eurHintRe.MatchString(t) {
		currency = "EUR"
	}

	t = nonAlnumRe.ReplaceAllString(t, " ")
	t = currencyRe.ReplaceAllString(t, " ")

	for _, r := range replacements {
		t = wordBoundRe[r.phrase].ReplaceAllString(t, r.digits)
	}

	// Collapse whitespace and thousands separators so "5.000", "5 000"
	// and "5000" all read as one digit run.
	t = strings.NewReplacer(" ", "", "\t", "", "\n", "", ".", "", ",", "").Replace(t)

	run := digitRunRe.FindString(t)
	if run == "" {
		return Amount{Currency: currency}
	}
	v, err := strconv.ParseFloat(run, 64)
	if err != nil {
		return Amount{Currency: currency}
	}
	return Amount{Value: v, Currency: currency, Found: true}
}
