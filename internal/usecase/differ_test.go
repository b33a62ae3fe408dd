package usecase

import (
	"reflect"
	"testing"

	"github.com/oilwatch/backend/internal/domain"
)

func rec(itemNo, name string, member float64) domain.ProductRecord {
	return domain.ProductRecord{ItemNo: itemNo, Name: name, MemberHKD: member}
}

func TestDiffSnapshots(t *testing.T) {
	t.Run("additions and price changes in document order", func(t *testing.T) {
		prev := domain.Catalog{rec("A", "Alpha", 100), rec("B", "Beta", 200)}
		next := domain.Catalog{rec("A", "Alpha", 150), rec("B", "Beta", 200), rec("C", "Gamma", 50)}

		diff := DiffSnapshots(prev, next)

		if !reflect.DeepEqual(diff.Added, []string{"C"}) {
			t.Errorf("Added = %v, want [C]", diff.Added)
		}
		if len(diff.Removed) != 0 {
			t.Errorf("Removed = %v, want empty", diff.Removed)
		}
		if !reflect.DeepEqual(diff.PriceChanges, []float64{50}) {
			t.Errorf("PriceChanges = %v, want [50]", diff.PriceChanges)
		}
	})

	t.Run("removals keep the old name", func(t *testing.T) {
		prev := domain.Catalog{rec("A", "Alpha", 100), rec("B", "Beta", 200)}
		next := domain.Catalog{rec("A", "Alpha", 100)}

		diff := DiffSnapshots(prev, next)

		want := []domain.RemovedItem{{ItemNo: "B", Name: "Beta"}}
		if !reflect.DeepEqual(diff.Removed, want) {
			t.Errorf("Removed = %v, want %v", diff.Removed, want)
		}
		if len(diff.Added) != 0 || len(diff.PriceChanges) != 0 {
			t.Errorf("unexpected Added %v or PriceChanges %v", diff.Added, diff.PriceChanges)
		}
	})

	t.Run("zero old price never divides", func(t *testing.T) {
		prev := domain.Catalog{rec("A", "Alpha", 0)}
		next := domain.Catalog{rec("A", "Alpha", 50)}

		diff := DiffSnapshots(prev, next)

		if len(diff.PriceChanges) != 0 {
			t.Errorf("PriceChanges = %v, want empty when the old price is zero", diff.PriceChanges)
		}
	})

	t.Run("price decrease is negative", func(t *testing.T) {
		prev := domain.Catalog{rec("A", "Alpha", 200)}
		next := domain.Catalog{rec("A", "Alpha", 150)}

		diff := DiffSnapshots(prev, next)

		if !reflect.DeepEqual(diff.PriceChanges, []float64{-25}) {
			t.Errorf("PriceChanges = %v, want [-25]", diff.PriceChanges)
		}
	})

	t.Run("duplicate identifiers resolve to the last occurrence", func(t *testing.T) {
		prev := domain.Catalog{rec("A", "Alpha", 100)}
		next := domain.Catalog{rec("A", "Alpha", 100), rec("A", "Alpha", 200)}

		diff := DiffSnapshots(prev, next)

		if !reflect.DeepEqual(diff.PriceChanges, []float64{100}) {
			t.Errorf("PriceChanges = %v, want [100]", diff.PriceChanges)
		}
	})

	t.Run("empty previous snapshot marks everything added", func(t *testing.T) {
		next := domain.Catalog{rec("A", "Alpha", 100), rec("B", "Beta", 200)}

		diff := DiffSnapshots(nil, next)

		if !reflect.DeepEqual(diff.Added, []string{"A", "B"}) {
			t.Errorf("Added = %v, want [A B]", diff.Added)
		}
	})

	t.Run("identical snapshots yield an empty diff", func(t *testing.T) {
		cat := domain.Catalog{rec("A", "Alpha", 100)}

		diff := DiffSnapshots(cat, cat)

		if len(diff.Added) != 0 || len(diff.Removed) != 0 || len(diff.PriceChanges) != 0 {
			t.Errorf("diff = %+v, want empty", diff)
		}
	})
}

func TestAveragePriceChange(t *testing.T) {
	diff := domain.SnapshotDiff{PriceChanges: []float64{50, -25, 5}}
	avg, ok := diff.AveragePriceChange()
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if avg != 10 {
		t.Errorf("avg = %v, want 10", avg)
	}

	if _, ok := (domain.SnapshotDiff{}).AveragePriceChange(); ok {
		t.Error("ok = true for empty changes, want false")
	}
}
