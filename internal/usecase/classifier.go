package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// LineKind is the classification of one raw document line.
type LineKind int

const (
	// LineDiscard marks noise: table-header boilerplate, price-only rows,
	// stray fragments.
	LineDiscard LineKind = iota

	// LineProduct marks a candidate product row to hand to ParseProductRow.
	LineProduct

	// LineCategoryHeader marks a bilingual category header that applies to
	// all following product rows.
	LineCategoryHeader
)

var (
	// A product row starts with a multi-digit identifier.
	productStartPattern = regexp.MustCompile(`^\d{5,}`)

	// Any currency-formatted amount disqualifies a line as a header.
	decimalAmountPattern = regexp.MustCompile(`[0-9]+\.[0-9]{2}`)
)

// boilerplateTokens appear in the table-header rows the document repeats on
// every page. A line containing any of them must never become a category.
var boilerplateTokens = []string{
	"Item No", "Product", "Wholesale", "Retail", "PV",
	"Unit", "LRP", "Point", "Redemption", "產品編號",
}

// Classify decides how a raw document line should be handled. The order of
// checks matters: product detection runs before the header check, so a row
// with an identifier and prices is never mistaken for a header.
func Classify(line string) LineKind {
	if productStartPattern.MatchString(line) && strings.Contains(line, ".") {
		return LineProduct
	}

	// Lines with a price pattern but no leading identifier are noise.
	if decimalAmountPattern.MatchString(line) {
		return LineDiscard
	}

	for _, tok := range boilerplateTokens {
		if strings.Contains(line, tok) {
			return LineDiscard
		}
	}

	// Headers have a real Latin-script name; short fragments are treated
	// as noise rather than risking corrupted category state.
	latin, _ := SplitBilingual(line)
	if utf8.RuneCountInString(latin) > 2 {
		return LineCategoryHeader
	}

	return LineDiscard
}
