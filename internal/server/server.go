package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kimberlythegeek/accessibility-dashboard/internal/aggregate"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/config"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/engine"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/history"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/manifest"
)

const refreshTimeout = 2 * time.Minute

// Run wires the fetch stack, primes the snapshot cache, and serves the
// dashboard API until the process exits.
func Run(cfg config.Config) error {
	// No request budget on the long-lived server client; the budget guards a
	// single CLI pass, not a process that refreshes forever.
	client, _ := engine.NewBoundedClient(cfg.FetchTimeout(), 0, cfg.Hosts())
	loader := manifest.NewLoader(cfg.ManifestURL, client)
	fetcher := history.NewFetcher(cfg.DataURL, client)
	cache := aggregate.NewCache(loader, aggregate.NewPipeline(fetcher))

	log.Printf("[server] manifest: %s", cfg.ManifestURL)
	log.Printf("[server] data service: %s", cfg.DataURL)

	if _, err := refresh(cache); err != nil {
		// Keep serving; the manifest host may come back before a client asks.
		log.Printf("[server] initial refresh failed: %v", err)
	}

	if interval := cfg.RefreshInterval(); interval > 0 {
		go refreshLoop(cache, interval)
	}

	r := newRouter(cache)

	srv := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   0,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	log.Printf("[server] listening on %s", srv.Addr)
	return srv.ListenAndServe()
}

func refresh(cache *aggregate.Cache) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	sites, err := cache.Refresh(ctx)
	if err != nil {
		return 0, err
	}
	return len(sites), nil
}

func refreshLoop(cache *aggregate.Cache, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		n, err := refresh(cache)
		if err != nil {
			log.Printf("[server] scheduled refresh failed: %v", err)
			continue
		}
		log.Printf("[server] refreshed %d sites", n)
	}
}

func newRouter(cache *aggregate.Cache) *gin.Engine {
	r := gin.Default()
	h := &handlers{cache: cache}

	r.GET("/", h.index)
	r.GET("/healthz", h.health)
	r.GET("/api/sites", h.sites)
	r.GET("/api/sites/:name", h.site)
	r.POST("/api/refresh", h.refresh)

	return r
}
