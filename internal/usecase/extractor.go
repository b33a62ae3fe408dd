package usecase

import (
	"strings"

	"github.com/oilwatch/backend/internal/domain"
)

// CategoryState carries the most recently seen category header across the
// lines of one traversal. It is created fresh per traversal and never
// persisted.
type CategoryState struct {
	Type   string
	TypeCN string
}

// NewCategoryState returns the initial state used before any header is seen.
func NewCategoryState() CategoryState {
	return CategoryState{Type: "Uncategorized", TypeCN: ""}
}

// ExtractStats summarizes one traversal for the run log.
type ExtractStats struct {
	Pages        int
	Lines        int
	DroppedRows  int // candidate product rows that failed parsing
	CategoryHits int
}

// Extractor turns page-by-page document text into an ordered catalog.
type Extractor struct{}

// NewExtractor creates a new extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractCatalog walks the pages line by line in document order. Each line
// either yields a product record, updates the category state, or is
// discarded. Records inherit the current category and derive is_oil from
// the parsed unit.
func (e *Extractor) ExtractCatalog(pages []string) (domain.Catalog, ExtractStats) {
	state := NewCategoryState()
	stats := ExtractStats{Pages: len(pages)}

	var catalog domain.Catalog
	for _, page := range pages {
		for _, line := range strings.Split(page, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			stats.Lines++

			switch Classify(line) {
			case LineProduct:
				rec, ok := ParseProductRow(line)
				if !ok {
					stats.DroppedRows++
					continue
				}
				rec.Type = state.Type
				rec.TypeCN = state.TypeCN
				rec.IsOil = strings.Contains(rec.Unit, "mL")
				catalog = append(catalog, rec)

			case LineCategoryHeader:
				latin, cjk := SplitBilingual(line)
				state = CategoryState{Type: latin, TypeCN: cjk}
				stats.CategoryHits++
			}
		}
	}

	return catalog, stats
}
