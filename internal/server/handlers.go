package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kimberlythegeek/accessibility-dashboard/internal/aggregate"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/app/output"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/site"
)

type handlers struct {
	cache *aggregate.Cache
}

// snapshot serves the cached pass, refreshing lazily when the cache is cold
// (first request before the initial refresh succeeded, or after an explicit
// invalidation).
func (h *handlers) snapshot(ctx *gin.Context) ([]site.Site, time.Time, bool) {
	sites, refreshed, ok := h.cache.Snapshot()
	if ok {
		return sites, refreshed, true
	}

	sites, err := h.cache.Refresh(ctx.Request.Context())
	if err != nil {
		log.Printf("[server] lazy refresh failed: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "manifest unavailable"})
		return nil, time.Time{}, false
	}
	return sites, time.Now(), true
}

func (h *handlers) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) sites(ctx *gin.Context) {
	sites, refreshed, ok := h.snapshot(ctx)
	if !ok {
		return
	}

	ordered := make([]site.Site, len(sites))
	copy(ordered, sites)
	output.SortSites(ordered)

	ctx.JSON(http.StatusOK, gin.H{
		"refreshed_at": refreshed.UTC().Format(time.RFC3339),
		"sites":        ordered,
	})
}

func (h *handlers) site(ctx *gin.Context) {
	name := ctx.Param("name")

	sites, _, ok := h.snapshot(ctx)
	if !ok {
		return
	}

	for _, s := range sites {
		if s.Name == name {
			ctx.JSON(http.StatusOK, s)
			return
		}
	}
	ctx.JSON(http.StatusNotFound, gin.H{"error": "unknown site: " + name})
}

func (h *handlers) refresh(ctx *gin.Context) {
	sites, err := h.cache.Refresh(ctx.Request.Context())
	if err != nil {
		log.Printf("[server] refresh failed: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "refresh failed"})
		return
	}
	log.Printf("[server] refreshed %d sites on request", len(sites))
	ctx.JSON(http.StatusOK, gin.H{"sites": len(sites)})
}

func (h *handlers) index(ctx *gin.Context) {
	sites, refreshed, ok := h.snapshot(ctx)
	if !ok {
		return
	}

	ctx.Header("Content-Type", "text/html; charset=utf-8")
	ctx.Status(http.StatusOK)
	if err := output.RenderHTML(ctx.Writer, output.BuildReportData(sites, refreshed)); err != nil {
		log.Printf("[server] render failed: %v", err)
	}
}
