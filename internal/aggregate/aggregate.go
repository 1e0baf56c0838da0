package aggregate

import (
	"context"
	"log"
	"sync"

	"github.com/kimberlythegeek/accessibility-dashboard/internal/severity"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/site"
)

// HistoryFetcher is the per-site data source the pipeline fans out to.
type HistoryFetcher interface {
	Fetch(ctx context.Context, siteName string) ([]site.ScanRecord, error)
}

// Pipeline merges the manifest descriptors with each site's scan history into
// the scored view-model collection.
type Pipeline struct {
	History HistoryFetcher
}

func NewPipeline(history HistoryFetcher) *Pipeline {
	return &Pipeline{History: history}
}

// Aggregate issues one history fetch per descriptor, all in flight at once,
// and collects the results after every fetch settles. Each goroutine only
// ever produces its own Site; nothing shared is mutated during the fan-out.
//
// Best-effort policy: a site whose fetch fails stays in the collection as a
// placeholder with empty history and Unavailable set, so the dashboard always
// shows one entry per manifest descriptor. Collection order follows fetch
// completion order; callers needing a stable order sort downstream.
//
// Cancelling ctx aborts the in-flight fetches; their sites come back as
// placeholders alongside whatever had already completed.
func (p *Pipeline) Aggregate(ctx context.Context, descriptors []site.Descriptor) []site.Site {
	if len(descriptors) == 0 {
		return []site.Site{}
	}

	results := make(chan site.Site, len(descriptors))
	var wg sync.WaitGroup
	for _, d := range descriptors {
		wg.Add(1)
		go func(d site.Descriptor) {
			defer wg.Done()
			results <- p.buildSite(ctx, d)
		}(d)
	}
	wg.Wait()
	close(results)

	sites := make([]site.Site, 0, len(descriptors))
	for s := range results {
		sites = append(sites, s)
	}
	return sites
}

func (p *Pipeline) buildSite(ctx context.Context, d site.Descriptor) site.Site {
	records, err := p.History.Fetch(ctx, d.Name)
	if err != nil {
		log.Printf("[aggregate] history fetch failed for %s: %v", d.Name, err)
		return site.Site{
			Name:        d.Name,
			URL:         d.URL,
			History:     []site.ScanRecord{},
			Category:    site.CategoryInfo,
			Unavailable: true,
		}
	}

	s := site.Site{
		Name:    d.Name,
		URL:     d.URL,
		History: records,
	}

	// The data service defines "latest": the last element as returned.
	var violations []site.Violation
	if len(records) > 0 {
		s.LatestScan = &records[len(records)-1]
		violations = s.LatestScan.Violations
	}

	result := severity.Score(violations)
	s.Score = result.Score
	s.Category = result.Category
	return s
}
