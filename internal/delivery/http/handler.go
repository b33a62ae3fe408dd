package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oilwatch/backend/internal/domain"
	"github.com/oilwatch/backend/internal/infrastructure/store"
)

const (
	catalogCacheKey      = "catalog"
	encyclopediaCacheKey = "encyclopedia"
)

// Handler serves the pipeline's artifacts read-only: the catalog snapshot,
// the encyclopedia, and the run history.
type Handler struct {
	cache            domain.CacheRepository
	archive          domain.RunArchive
	catalogPath      string
	encyclopediaPath string
	cacheTTL         time.Duration
}

// NewHandler creates a new HTTP handler. archive may be nil when no run
// history database is configured.
func NewHandler(cache domain.CacheRepository, archive domain.RunArchive, catalogPath, encyclopediaPath string, cacheTTL time.Duration) *Handler {
	if cacheTTL == 0 {
		cacheTTL = time.Minute
	}
	return &Handler{
		cache:            cache,
		archive:          archive,
		catalogPath:      catalogPath,
		encyclopediaPath: encyclopediaPath,
		cacheTTL:         cacheTTL,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "oilwatch-backend",
		"version": "1.0.0",
	})
}

// ListCatalog returns the latest catalog snapshot in document order.
func (h *Handler) ListCatalog(c *gin.Context) {
	catalog := h.loadCatalog(c)
	c.JSON(http.StatusOK, gin.H{
		"total":    len(catalog),
		"products": catalog,
	})
}

// GetProduct returns one catalog record by identifier.
func (h *Handler) GetProduct(c *gin.Context) {
	itemNo := c.Param("itemNo")

	rec, ok := h.loadCatalog(c).ByItemNo()[itemNo]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GetEncyclopediaEntry returns one enriched entry by identifier.
func (h *Handler) GetEncyclopediaEntry(c *gin.Context) {
	itemNo := c.Param("itemNo")

	for _, entry := range h.loadEncyclopedia(c) {
		if entry.Identifier() == itemNo {
			c.JSON(http.StatusOK, entry)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNotFound.Error()})
}

// ListRuns returns the most recent scraper run summaries.
func (h *Handler) ListRuns(c *gin.Context) {
	if h.archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run history not configured"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
		return
	}

	runs, err := h.archive.ListRuns(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read run history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// loadCatalog returns the cached catalog, re-reading the snapshot file on
// cache expiry. A missing file is an empty catalog, matching the pipeline's
// treatment of absent snapshots.
func (h *Handler) loadCatalog(c *gin.Context) domain.Catalog {
	ctx := c.Request.Context()

	if v, err := h.cache.Get(ctx, catalogCacheKey); err == nil {
		if catalog, ok := v.(domain.Catalog); ok {
			return catalog
		}
	}

	catalog := store.LoadCatalog(h.catalogPath)
	h.cache.Set(ctx, catalogCacheKey, catalog, h.cacheTTL)
	return catalog
}

// loadEncyclopedia mirrors loadCatalog for the enriched entries.
func (h *Handler) loadEncyclopedia(c *gin.Context) []domain.EncyclopediaEntry {
	ctx := c.Request.Context()

	if v, err := h.cache.Get(ctx, encyclopediaCacheKey); err == nil {
		if entries, ok := v.([]domain.EncyclopediaEntry); ok {
			return entries
		}
	}

	entries := store.LoadEncyclopedia(h.encyclopediaPath)
	h.cache.Set(ctx, encyclopediaCacheKey, entries, h.cacheTTL)
	return entries
}
