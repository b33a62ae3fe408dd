package domain

// EncyclopediaEntry is one enriched catalog entry as returned by the
// text-generation service and stored in the encyclopedia file.
type EncyclopediaEntry struct {
	ID               string             `json:"id,omitempty"`
	ItemNo           string             `json:"itemNo"`
	Name             string             `json:"name"`
	Size             float64            `json:"size,omitempty"`
	Unit             string             `json:"unit,omitempty"`
	Prices           *EntryPrices       `json:"prices,omitempty"`
	Category         string             `json:"category,omitempty"`
	Usage            *Usage             `json:"usage,omitempty"`
	GeneralBenefits  map[string]Benefit `json:"generalBenefits,omitempty"`
	AtomicEffects    []AtomicEffect     `json:"atomicEffects,omitempty"`
	PrimaryCompounds []string           `json:"primaryCompounds,omitempty"`
	Evidence         *Evidence          `json:"evidence,omitempty"`
	References       *References        `json:"references,omitempty"`
	PIPURL           string             `json:"pip,omitempty"` // legacy flat field carried by older entries
	LastUpdated      string             `json:"lastUpdated,omitempty"`
}

// EntryPrices mirrors the snapshot prices inside an encyclopedia entry.
type EntryPrices struct {
	RetailHKD float64 `json:"retail_hkd"`
	MemberHKD float64 `json:"member_hkd"`
}

// UsageMode describes one route of use (aromatic, topical or internal).
type UsageMode struct {
	Allowed          bool   `json:"allowed"`
	Intent           string `json:"intent,omitempty"`
	DilutionGuidance string `json:"dilutionGuidance,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// Usage groups the three routes of use.
type Usage struct {
	Aromatic UsageMode `json:"aromatic"`
	Topical  UsageMode `json:"topical"`
	Internal UsageMode `json:"internal"`
}

// Benefit is a 1-5 score with a short factual summary for one canonical
// benefit category.
type Benefit struct {
	Score   int    `json:"score"`
	Summary string `json:"summary"`
}

// AtomicEffect references a biological system and a directional change.
type AtomicEffect struct {
	Mechanism   string `json:"mechanism"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
}

// Evidence records the evidence level and its verified source.
type Evidence struct {
	Level          string `json:"level"`
	VerifiedSource string `json:"verifiedSource"`
}

// References holds the external document URLs attached to an entry.
type References struct {
	ProductPage string `json:"productPage"`
	PIP         string `json:"PIP"`
}

// Identifier returns the entry's primary key: itemNo, falling back to the
// legacy id field.
func (e *EncyclopediaEntry) Identifier() string {
	if e.ItemNo != "" {
		return e.ItemNo
	}
	return e.ID
}

// PIPReference returns the PIP URL, preferring the legacy flat field over
// the nested references object.
func (e *EncyclopediaEntry) PIPReference() string {
	if e.PIPURL != "" {
		return e.PIPURL
	}
	if e.References != nil {
		return e.References.PIP
	}
	return ""
}

// PIPEntry is one row of the cross-reference file keyed by identifier.
type PIPEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	PIP  string `json:"pip"`
}
