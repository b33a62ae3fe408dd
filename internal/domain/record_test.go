package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestByItemNoLastWins(t *testing.T) {
	catalog := Catalog{
		{ItemNo: "A", MemberHKD: 100},
		{ItemNo: "B", MemberHKD: 200},
		{ItemNo: "A", MemberHKD: 150},
	}

	byID := catalog.ByItemNo()

	if len(byID) != 2 {
		t.Fatalf("len = %d, want 2", len(byID))
	}
	if byID["A"].MemberHKD != 150 {
		t.Errorf("A = %+v, want the last occurrence", byID["A"])
	}
}

func TestProductRecordJSONKeys(t *testing.T) {
	rec := ProductRecord{
		ItemNo: "30110001", Name: "Lavender", NameCN: "薰衣草",
		Size: "15", Unit: "mL", UnitCN: "支",
		RetailHKD: 520, MemberHKD: 390,
		Type: "Single Oils", TypeCN: "單方精油", IsOil: true,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}

	// Downstream consumers read these exact keys.
	for _, key := range []string{
		`"itemNo"`, `"name"`, `"nameCN"`, `"size"`, `"unit"`, `"unitCN"`,
		`"retail_hkd"`, `"member_hkd"`, `"type"`, `"typeCN"`, `"is_oil"`,
	} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshaled record missing %s:\n%s", key, data)
		}
	}
}
