package main

import (
	"fmt"
	"log"
	"os"

	"github.com/oilwatch/backend/config"
	httpDelivery "github.com/oilwatch/backend/internal/delivery/http"
	"github.com/oilwatch/backend/internal/infrastructure/archive"
	"github.com/oilwatch/backend/internal/infrastructure/cache"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting oilwatch backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog: %s", cfg.Files.Catalog)
	log.Printf("Encyclopedia: %s", cfg.Files.Encyclopedia)

	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// The run history is optional; the API serves 503 for /runs without it.
	var runArchive *archive.Archive
	if cfg.Archive.Path != "" {
		runArchive, err = archive.Open(cfg.Archive.Path)
		if err != nil {
			log.Printf("WARNING: run archive unavailable: %v", err)
			runArchive = nil
		} else {
			defer runArchive.Close()
		}
	}

	handler := newHandler(cfg, memoryCache, runArchive)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newHandler wires the handler with a nil-safe archive dependency.
func newHandler(cfg *config.Config, memoryCache *cache.MemoryCache, runArchive *archive.Archive) *httpDelivery.Handler {
	if runArchive == nil {
		return httpDelivery.NewHandler(memoryCache, nil, cfg.Files.Catalog, cfg.Files.Encyclopedia, cfg.Cache.TTL)
	}
	return httpDelivery.NewHandler(memoryCache, runArchive, cfg.Files.Catalog, cfg.Files.Encyclopedia, cfg.Cache.TTL)
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
