package main

import (
	"context"
	"log"
	"os"

	"github.com/oilwatch/backend/config"
	"github.com/oilwatch/backend/internal/infrastructure/deepseek"
	"github.com/oilwatch/backend/internal/infrastructure/store"
	"github.com/oilwatch/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	apiKey, err := cfg.DeepSeek.ResolveAPIKey()
	if err != nil {
		log.Fatalf("Failed to resolve API key: %v", err)
	}

	catalog := store.LoadCatalog(cfg.Files.Catalog)
	if len(catalog) == 0 {
		log.Fatalf("No products in %s (run the scraper first)", cfg.Files.Catalog)
	}

	existing := store.LoadEncyclopedia(cfg.Files.Encyclopedia)

	log.Printf("Starting oilwatch enrichment v1.0.0")
	log.Printf("Model: %s via %s", cfg.DeepSeek.Model, cfg.DeepSeek.BaseURL)
	log.Printf("Total source items: %d", len(catalog))
	log.Printf("Existing encyclopedia entries: %d", len(existing))

	client := deepseek.NewClient(apiKey, cfg.DeepSeek.BaseURL, cfg.DeepSeek.Model, cfg.DeepSeek.RequestDelay)
	if cfg.Server.Environment == "development" {
		client.SetDebug(true)
	}

	service := usecase.NewEnrichmentService(client)
	result := service.EnrichCatalog(context.Background(), catalog, existing)

	if err := store.SaveEncyclopedia(cfg.Files.Encyclopedia, result.Entries); err != nil {
		log.Fatalf("Failed to save encyclopedia: %v", err)
	}
	if err := store.SavePIPIndex(cfg.Files.PIPIndex, result.PIP); err != nil {
		log.Fatalf("Failed to save PIP index: %v", err)
	}

	usecase.WriteEnrichmentSummary(os.Stdout, result, cfg.Files.Encyclopedia, cfg.Files.PIPIndex)
	log.Printf("Done.")
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
