package domain

// ProductRecord is one entry extracted from the bilingual price list.
// Field names match the snapshot file format exactly.
type ProductRecord struct {
	ItemNo    string  `json:"itemNo"`
	Name      string  `json:"name"`
	NameCN    string  `json:"nameCN"`
	Size      string  `json:"size"`
	Unit      string  `json:"unit"`
	UnitCN    string  `json:"unitCN"`
	RetailHKD float64 `json:"retail_hkd"`
	MemberHKD float64 `json:"member_hkd"`
	Type      string  `json:"type"`
	TypeCN    string  `json:"typeCN"`
	IsOil     bool    `json:"is_oil"`
}

// Catalog is one complete parse of the price list, in document order.
type Catalog []ProductRecord

// ByItemNo builds an identifier lookup over the catalog. When the document
// repeats an identifier, the last occurrence wins.
func (c Catalog) ByItemNo() map[string]ProductRecord {
	m := make(map[string]ProductRecord, len(c))
	for _, rec := range c {
		m[rec.ItemNo] = rec
	}
	return m
}
