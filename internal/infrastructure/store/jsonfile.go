// Package store reads and writes the pipeline's JSON artifacts: the catalog
// snapshot, the encyclopedia, and the PIP cross-reference file.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/oilwatch/backend/internal/domain"
)

// LoadCatalog reads a prior snapshot. A missing or corrupt file is treated
// as no prior snapshot, not an error: the next diff then reports everything
// as added.
func LoadCatalog(path string) domain.Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		log.Printf("[STORE] ignoring unreadable catalog %s: %v", path, err)
		return nil
	}
	return catalog
}

// SaveCatalog overwrites the snapshot file with the new catalog.
func SaveCatalog(path string, catalog domain.Catalog) error {
	return writeJSON(path, catalog)
}

// LoadEncyclopedia reads the enriched entries. Missing or corrupt files
// yield an empty encyclopedia so an enrichment batch can start fresh.
func LoadEncyclopedia(path string) []domain.EncyclopediaEntry {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entries []domain.EncyclopediaEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("[STORE] ignoring unreadable encyclopedia %s: %v", path, err)
		return nil
	}
	return entries
}

// SaveEncyclopedia overwrites the encyclopedia file.
func SaveEncyclopedia(path string, entries []domain.EncyclopediaEntry) error {
	return writeJSON(path, entries)
}

// LoadPIPIndex reads the PIP cross-reference file. Unlike the snapshot, a
// merge cannot proceed without it, so failures are returned.
func LoadPIPIndex(path string) ([]domain.PIPEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PIP index: %w", err)
	}

	var index []domain.PIPEntry
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to decode PIP index: %w", err)
	}
	return index, nil
}

// SavePIPIndex overwrites the PIP cross-reference file.
func SavePIPIndex(path string, index []domain.PIPEntry) error {
	return writeJSON(path, index)
}

// writeJSON marshals v with two-space indentation and without HTML escaping
// so CJK text and URLs stay readable in the file.
func writeJSON(path string, v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
