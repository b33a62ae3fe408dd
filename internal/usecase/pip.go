package usecase

import "github.com/oilwatch/backend/internal/domain"

// GeneratePIPIndex extracts a deduplicated PIP reference list from the
// encyclopedia: one {id, name, pip} row per identifier, first occurrence
// wins. Entries without an identifier are skipped.
func GeneratePIPIndex(entries []domain.EncyclopediaEntry) []domain.PIPEntry {
	index := make([]domain.PIPEntry, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for i := range entries {
		entry := entries[i]
		id := entry.Identifier()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		index = append(index, domain.PIPEntry{
			ID:   id,
			Name: entry.Name,
			PIP:  entry.PIPReference(),
		})
	}

	return index
}

// MergePIPIndex writes PIP URLs from the index back into the encyclopedia
// entries by identifier. It returns the merged entries plus the updated and
// missing counts. The input slice is not modified.
func MergePIPIndex(entries []domain.EncyclopediaEntry, index []domain.PIPEntry) ([]domain.EncyclopediaEntry, int, int) {
	pipByID := make(map[string]string, len(index))
	for _, e := range index {
		pipByID[e.ID] = e.PIP
	}

	merged := make([]domain.EncyclopediaEntry, len(entries))
	copy(merged, entries)

	updated, missing := 0, 0
	for i := range merged {
		pip, ok := pipByID[merged[i].ItemNo]
		if !ok {
			missing++
			continue
		}
		if merged[i].References == nil {
			merged[i].References = &domain.References{}
		} else {
			refs := *merged[i].References
			merged[i].References = &refs
		}
		merged[i].References.PIP = pip
		updated++
	}

	return merged, updated, missing
}
