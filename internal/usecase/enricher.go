package usecase

import (
	"context"
	"log"
	"time"

	"github.com/oilwatch/backend/internal/domain"
)

// EnrichmentResult holds the outcome of one enrichment batch.
type EnrichmentResult struct {
	Entries []domain.EncyclopediaEntry
	PIP     []domain.PIPEntry

	Total           int
	SkippedExisting int
	Enriched        int
	Failed          int
}

// EnrichmentService drives per-item enrichment of a catalog. Items already
// present in the encyclopedia are skipped; a failed call counts the item as
// failed and moves on, never aborting the batch.
type EnrichmentService struct {
	client domain.Enricher
	now    func() time.Time
}

// NewEnrichmentService creates an enrichment service around the given client.
func NewEnrichmentService(client domain.Enricher) *EnrichmentService {
	return &EnrichmentService{
		client: client,
		now:    time.Now,
	}
}

// EnrichCatalog enriches every catalog record not yet in the encyclopedia,
// one record per call, collecting PIP references alongside. Existing
// entries are carried over unchanged.
func (s *EnrichmentService) EnrichCatalog(
	ctx context.Context,
	source domain.Catalog,
	existing []domain.EncyclopediaEntry,
) EnrichmentResult {
	result := EnrichmentResult{
		Total:   len(source),
		Entries: make([]domain.EncyclopediaEntry, 0, len(existing)+len(source)),
		PIP:     make([]domain.PIPEntry, 0, len(existing)+len(source)),
	}

	existingIDs := make(map[string]bool, len(existing))
	for i := range existing {
		entry := existing[i]
		existingIDs[entry.Identifier()] = true
		result.Entries = append(result.Entries, entry)
		result.PIP = append(result.PIP, domain.PIPEntry{
			ID:   entry.Identifier(),
			Name: entry.Name,
			PIP:  entry.PIPReference(),
		})
	}

	for _, rec := range source {
		if existingIDs[rec.ItemNo] {
			result.SkippedExisting++
			continue
		}

		log.Printf("[ENRICH] processing %s (%s)", rec.Name, rec.ItemNo)

		entry, err := s.client.Enrich(ctx, rec)
		if err != nil {
			result.Failed++
			log.Printf("[ENRICH] failed %s (%s): %v", rec.Name, rec.ItemNo, err)
			continue
		}

		entry.LastUpdated = s.now().UTC().Format("2006-01-02")

		result.Entries = append(result.Entries, *entry)
		existingIDs[rec.ItemNo] = true
		result.PIP = append(result.PIP, domain.PIPEntry{
			ID:   entry.Identifier(),
			Name: entry.Name,
			PIP:  entry.PIPReference(),
		})
		result.Enriched++
	}

	result.PIP = dedupePIP(result.PIP)
	return result
}

// dedupePIP keeps the first PIP entry per identifier and drops entries
// with no identifier at all.
func dedupePIP(entries []domain.PIPEntry) []domain.PIPEntry {
	seen := make(map[string]bool, len(entries))
	clean := make([]domain.PIPEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" || seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		clean = append(clean, e)
	}
	return clean
}
