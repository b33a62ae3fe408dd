package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/oilwatch/backend/internal/domain"
)

// Package-level compiled regex patterns for row parsing
var (
	// A trailing block of 2-4 currency-formatted numbers anchors every
	// product row.
	trailingPriceBlockPattern = regexp.MustCompile(`((?:\s+[0-9,]+\.\d{2}){2,4})$`)

	// Leading identifier followed by the row content.
	leadingItemNoPattern = regexp.MustCompile(`^(\d+)\s+(.*)`)

	// Size digits followed by a unit of letters/spaces/CJK/slashes, anchored
	// at the end of the content.
	sizeUnitPattern = regexp.MustCompile(`(\d+)\s*([a-zA-Z\s/]+[\x{4e00}-\x{9fff}/]*.*)$`)

	// A digit run that bled into the unit field during text extraction.
	strayDigitPattern = regexp.MustCompile(`\s+(\d+)$`)

	// Leading maximal run of CJK code points.
	leadingCJKPattern = regexp.MustCompile(`^[\x{4e00}-\x{9fff}]+`)
)

// splitPriceBlock locates the trailing price block and returns the rest of
// the line plus the first two amounts with thousands separators stripped.
func splitPriceBlock(line string) (rest, retailRaw, memberRaw string, ok bool) {
	loc := trailingPriceBlockPattern.FindStringIndex(line)
	if loc == nil {
		return "", "", "", false
	}

	prices := strings.Fields(line[loc[0]:])
	retailRaw = strings.ReplaceAll(prices[0], ",", "")
	memberRaw = strings.ReplaceAll(prices[1], ",", "")
	return strings.TrimSpace(line[:loc[0]]), retailRaw, memberRaw, true
}

// splitLeadingItemNo peels the identifier off the front of the remainder.
func splitLeadingItemNo(rest string) (itemNo, content string, ok bool) {
	m := leadingItemNoPattern.FindStringSubmatch(rest)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// splitSizeUnit extracts the size/unit suffix from the row content. When no
// size pattern is present the size defaults to "1" and the unit to "Count",
// with the whole content kept as the name.
func splitSizeUnit(content string) (name, size, unit string) {
	loc := sizeUnitPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return content, "1", "Count"
	}
	size = content[loc[2]:loc[3]]
	unit = strings.TrimSpace(content[loc[4]:loc[5]])
	name = strings.TrimSpace(content[:loc[0]])
	return name, size, unit
}

// fixStrayDigit reattaches a digit run that bled from the retail price into
// the unit field. The digits are prepended to the raw retail amount, never
// the member amount; this is a narrow, corpus-specific recovery and must
// not be generalized.
func fixStrayDigit(unit, retailRaw string) (string, string) {
	loc := strayDigitPattern.FindStringSubmatchIndex(unit)
	if loc == nil {
		return unit, retailRaw
	}
	retailRaw = unit[loc[2]:loc[3]] + retailRaw
	return strings.TrimSpace(unit[:loc[0]]), retailRaw
}

// splitUnit separates the raw unit string into Latin and CJK parts. A slash
// splits explicitly; otherwise a trailing CJK code point triggers the
// bilingual split. The CJK part is trimmed to its leading run of CJK code
// points to drop stray characters.
func splitUnit(raw string) (unitEN, unitCN string) {
	unitEN = raw
	switch {
	case strings.Contains(raw, "/"):
		parts := strings.Split(raw, "/")
		unitEN = strings.TrimSpace(parts[0])
		unitCN = strings.TrimSpace(parts[1])
	case raw != "":
		if r, _ := utf8.DecodeLastRuneInString(raw); isCJK(r) {
			unitEN, unitCN = SplitBilingual(raw)
		}
	}

	if lead := leadingCJKPattern.FindString(unitCN); lead != "" {
		unitCN = lead
	}
	return unitEN, unitCN
}

// ParseProductRow extracts a product record from a line classified as a
// product row. Every stage must succeed in order; any failure drops the
// line. Category and is_oil are attached by the traversal, not here.
func ParseProductRow(line string) (domain.ProductRecord, bool) {
	line = strings.TrimSpace(line)

	rest, retailRaw, memberRaw, ok := splitPriceBlock(line)
	if !ok {
		return domain.ProductRecord{}, false
	}

	itemNo, content, ok := splitLeadingItemNo(rest)
	if !ok {
		return domain.ProductRecord{}, false
	}

	rawName, size, rawUnit := splitSizeUnit(content)

	// Must run after the size/unit split and before assembly.
	rawUnit, retailRaw = fixStrayDigit(rawUnit, retailRaw)

	name, nameCN := SplitBilingual(rawName)
	if name == "" {
		// Never emit an empty display name.
		name = rawName
	}

	unit, unitCN := splitUnit(rawUnit)

	retail, err := strconv.ParseFloat(retailRaw, 64)
	if err != nil {
		return domain.ProductRecord{}, false
	}
	member, err := strconv.ParseFloat(memberRaw, 64)
	if err != nil {
		return domain.ProductRecord{}, false
	}

	return domain.ProductRecord{
		ItemNo:    itemNo,
		Name:      name,
		NameCN:    nameCN,
		Size:      size,
		Unit:      unit,
		UnitCN:    unitCN,
		RetailHKD: retail,
		MemberHKD: member,
	}, true
}
