package domain

import (
	"context"
	"time"
)

// DocumentSource fetches the price-list document and returns its text,
// one string per page, in document order.
type DocumentSource interface {
	FetchPages(ctx context.Context) ([]string, error)
}

// Enricher generates one encyclopedia entry for one catalog record.
// Implementations process a single record per call.
type Enricher interface {
	Enrich(ctx context.Context, rec ProductRecord) (*EncyclopediaEntry, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RunArchive persists scraper run summaries for trend inspection.
type RunArchive interface {
	RecordRun(ctx context.Context, run RunSummary) error
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)
}
