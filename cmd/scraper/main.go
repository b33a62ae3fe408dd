package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/oilwatch/backend/config"
	"github.com/oilwatch/backend/internal/domain"
	"github.com/oilwatch/backend/internal/infrastructure/archive"
	"github.com/oilwatch/backend/internal/infrastructure/pricelist"
	"github.com/oilwatch/backend/internal/infrastructure/store"
	"github.com/oilwatch/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting oilwatch scraper v1.0.0")
	log.Printf("Source: %s", cfg.Source.URL)

	client := pricelist.NewClient(cfg.Source.URL)
	if cfg.Server.Environment == "development" {
		client.SetDebug(true)
	}

	ctx := context.Background()

	log.Printf("[SCRAPER] fetching price list...")
	pages, err := client.FetchPages(ctx)
	if err != nil {
		log.Fatalf("CRITICAL: %v", err)
	}
	log.Printf("[SCRAPER] scanning %d pages...", len(pages))

	extractor := usecase.NewExtractor()
	catalog, stats := extractor.ExtractCatalog(pages)
	log.Printf("[SCRAPER] parsed %d products from %d lines (%d candidate rows dropped, %d categories)",
		len(catalog), stats.Lines, stats.DroppedRows, stats.CategoryHits)

	prev := store.LoadCatalog(cfg.Files.Catalog)
	diff := usecase.DiffSnapshots(prev, catalog)

	if err := store.SaveCatalog(cfg.Files.Catalog, catalog); err != nil {
		log.Fatalf("Failed to save catalog: %v", err)
	}

	usecase.WriteSummary(os.Stdout, len(catalog), diff)

	recordRun(ctx, cfg.Archive.Path, len(catalog), diff)

	log.Printf("Success! Scraped %d products.", len(catalog))

	if len(catalog) > 0 {
		sample, _ := json.MarshalIndent(catalog[0], "", "  ")
		fmt.Printf("\nSample Output:\n%s\n", sample)
	}
}

// recordRun appends the run summary to the history archive. Archive
// failures are logged, never fatal: the snapshot file is the source of
// truth.
func recordRun(ctx context.Context, path string, total int, diff domain.SnapshotDiff) {
	arch, err := archive.Open(path)
	if err != nil {
		log.Printf("[SCRAPER] run archive unavailable: %v", err)
		return
	}
	defer arch.Close()

	avg, _ := diff.AveragePriceChange()
	run := domain.RunSummary{
		RunAt:        time.Now().UTC(),
		Total:        total,
		Added:        len(diff.Added),
		Removed:      len(diff.Removed),
		PriceChanges: len(diff.PriceChanges),
		AvgChangePct: avg,
	}

	if err := arch.RecordRun(ctx, run); err != nil {
		log.Printf("[SCRAPER] failed to record run: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
