package domain

import "time"

// RemovedItem pairs a removed identifier with its old display name for reporting.
type RemovedItem struct {
	ItemNo string `json:"itemNo"`
	Name   string `json:"name"`
}

// SnapshotDiff is the result of comparing two catalog snapshots by identifier.
type SnapshotDiff struct {
	Added        []string      `json:"added"`
	Removed      []RemovedItem `json:"removed"`
	PriceChanges []float64     `json:"priceChanges"` // percentage deltas of member_hkd
}

// AveragePriceChange returns the mean percentage change across all detected
// price changes. The second return is false when no prices changed.
func (d SnapshotDiff) AveragePriceChange() (float64, bool) {
	if len(d.PriceChanges) == 0 {
		return 0, false
	}
	var sum float64
	for _, pct := range d.PriceChanges {
		sum += pct
	}
	return sum / float64(len(d.PriceChanges)), true
}

// RunSummary records the outcome of one scraper run for the history archive.
type RunSummary struct {
	RunAt        time.Time `db:"run_at" json:"runAt"`
	Total        int       `db:"total" json:"total"`
	Added        int       `db:"added" json:"added"`
	Removed      int       `db:"removed" json:"removed"`
	PriceChanges int       `db:"price_changes" json:"priceChanges"`
	AvgChangePct float64   `db:"avg_change_pct" json:"avgChangePct"`
}
