package domain

import "errors"

var (
	// ErrFetchFailed is returned when the price-list document cannot be downloaded
	ErrFetchFailed = errors.New("price list fetch failed")

	// ErrDocumentUnreadable is returned when the downloaded document yields no text
	ErrDocumentUnreadable = errors.New("price list document could not be read")

	// ErrEnrichmentFailed is returned when the enrichment API call fails
	ErrEnrichmentFailed = errors.New("enrichment request failed")

	// ErrEmptyCompletion is returned when the enrichment API returns no content
	ErrEmptyCompletion = errors.New("enrichment returned empty completion")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrNotFound is returned when an identifier is absent from the catalog or encyclopedia
	ErrNotFound = errors.New("item not found")
)
