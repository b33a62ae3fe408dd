package usecase

import "github.com/oilwatch/backend/internal/domain"

// DiffSnapshots compares two catalog snapshots by identifier. Added and
// price-change entries follow the new catalog's document order; removed
// entries follow the old catalog's order. Neither input is modified.
//
// A member price of zero in the old snapshot skips the percentage
// computation rather than dividing by zero. Duplicate identifiers resolve
// to their last occurrence, a data-quality condition this deliberately
// does not defend against.
func DiffSnapshots(prev, next domain.Catalog) domain.SnapshotDiff {
	prevByID := prev.ByItemNo()
	nextByID := next.ByItemNo()

	var diff domain.SnapshotDiff

	seen := make(map[string]bool, len(next))
	for _, rec := range next {
		id := rec.ItemNo
		if seen[id] {
			continue
		}
		seen[id] = true

		oldRec, exists := prevByID[id]
		if !exists {
			diff.Added = append(diff.Added, id)
			continue
		}

		newRec := nextByID[id]
		if oldRec.MemberHKD != newRec.MemberHKD && oldRec.MemberHKD > 0 {
			pct := (newRec.MemberHKD - oldRec.MemberHKD) / oldRec.MemberHKD * 100
			diff.PriceChanges = append(diff.PriceChanges, pct)
		}
	}

	seen = make(map[string]bool, len(prev))
	for _, rec := range prev {
		id := rec.ItemNo
		if seen[id] {
			continue
		}
		seen[id] = true

		if _, exists := nextByID[id]; !exists {
			diff.Removed = append(diff.Removed, domain.RemovedItem{
				ItemNo: id,
				Name:   prevByID[id].Name,
			})
		}
	}

	return diff
}
