package aggregate

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimberlythegeek/accessibility-dashboard/internal/site"
)

type fakeFetcher struct {
	histories map[string][]site.ScanRecord
	failing   map[string]bool
}

func (f *fakeFetcher) Fetch(ctx context.Context, siteName string) ([]site.ScanRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.failing[siteName] {
		return nil, &site.FetchError{URL: "/" + siteName, Status: 500}
	}
	records, ok := f.histories[siteName]
	if !ok {
		return nil, &site.FetchError{URL: "/" + siteName, Status: 404}
	}
	return records, nil
}

func descriptors(names ...string) []site.Descriptor {
	ds := make([]site.Descriptor, 0, len(names))
	for _, n := range names {
		ds = append(ds, site.Descriptor{Name: n, URL: "https://" + n + ".example.com"})
	}
	return ds
}

func byName(sites []site.Site) map[string]site.Site {
	m := make(map[string]site.Site, len(sites))
	for _, s := range sites {
		m[s.Name] = s
	}
	return m
}

func TestAggregateScoresLatestScan(t *testing.T) {
	fetcher := &fakeFetcher{histories: map[string][]site.ScanRecord{
		"a": {
			{Violations: []site.Violation{{Impact: site.ImpactCritical}}, LastUpdated: 1000},
		},
		"b": {
			{Violations: []site.Violation{}, LastUpdated: 2000},
		},
	}}

	sites := NewPipeline(fetcher).Aggregate(context.Background(), descriptors("a", "b"))
	require.Len(t, sites, 2)
	got := byName(sites)

	a := got["a"]
	assert.Equal(t, 15, a.Score)
	assert.Equal(t, site.CategorySuccess, a.Category)
	require.NotNil(t, a.LatestScan)
	assert.Equal(t, int64(1000), a.LatestScan.LastUpdated)

	b := got["b"]
	assert.Equal(t, 0, b.Score)
	assert.Equal(t, site.CategoryInfo, b.Category)
	assert.Equal(t, "https://b.example.com", b.URL)
}

func TestAggregateLatestIsLastElement(t *testing.T) {
	fetcher := &fakeFetcher{histories: map[string][]site.ScanRecord{
		"a": {
			{Violations: []site.Violation{{Impact: site.ImpactMinor}}, LastUpdated: 100},
			{Violations: []site.Violation{{Impact: site.ImpactSerious}}, LastUpdated: 200},
			{Violations: []site.Violation{{Impact: site.ImpactCritical}, {Impact: site.ImpactCritical}}, LastUpdated: 300},
		},
	}}

	sites := NewPipeline(fetcher).Aggregate(context.Background(), descriptors("a"))
	require.Len(t, sites, 1)

	s := sites[0]
	require.NotNil(t, s.LatestScan)
	assert.Equal(t, int64(300), s.LatestScan.LastUpdated)
	assert.Equal(t, 30, s.Score)
	assert.Equal(t, site.CategoryWarning, s.Category)
	// Full history retained in service order.
	require.Len(t, s.History, 3)
	assert.Equal(t, int64(100), s.History[0].LastUpdated)
}

func TestAggregateFailedSiteBecomesPlaceholder(t *testing.T) {
	fetcher := &fakeFetcher{
		histories: map[string][]site.ScanRecord{
			"up": {{Violations: nil, LastUpdated: 10}},
		},
		failing: map[string]bool{"down": true},
	}
	pipeline := NewPipeline(fetcher)

	// Same failure pattern, same count, on every run.
	for run := 0; run < 5; run++ {
		sites := pipeline.Aggregate(context.Background(), descriptors("up", "down"))
		require.Len(t, sites, 2, "run %d", run)

		down := byName(sites)["down"]
		assert.True(t, down.Unavailable)
		assert.Empty(t, down.History)
		assert.Nil(t, down.LatestScan)
		assert.Equal(t, 0, down.Score)
		assert.Equal(t, site.CategoryInfo, down.Category)

		up := byName(sites)["up"]
		assert.False(t, up.Unavailable)
	}
}

func TestAggregateEmptyHistoryIsNotUnavailable(t *testing.T) {
	fetcher := &fakeFetcher{histories: map[string][]site.ScanRecord{
		"fresh": {},
	}}

	sites := NewPipeline(fetcher).Aggregate(context.Background(), descriptors("fresh"))
	require.Len(t, sites, 1)

	s := sites[0]
	assert.False(t, s.Unavailable)
	assert.Nil(t, s.LatestScan)
	assert.Equal(t, site.CategoryInfo, s.Category)
}

func TestAggregateIdempotentUpToOrdering(t *testing.T) {
	fetcher := &fakeFetcher{histories: map[string][]site.ScanRecord{}}
	var names []string
	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("site-%02d", i)
		names = append(names, name)
		fetcher.histories[name] = []site.ScanRecord{
			{Violations: []site.Violation{{Impact: site.ImpactModerate}}, LastUpdated: int64(i)},
		}
	}

	pipeline := NewPipeline(fetcher)
	first := pipeline.Aggregate(context.Background(), descriptors(names...))
	second := pipeline.Aggregate(context.Background(), descriptors(names...))

	sort.Slice(first, func(i, j int) bool { return first[i].Name < first[j].Name })
	sort.Slice(second, func(i, j int) bool { return second[i].Name < second[j].Name })
	assert.Equal(t, first, second)
}

func TestAggregateCancelledContextYieldsPlaceholders(t *testing.T) {
	fetcher := &fakeFetcher{histories: map[string][]site.ScanRecord{
		"a": {{LastUpdated: 1}},
		"b": {{LastUpdated: 2}},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sites := NewPipeline(fetcher).Aggregate(ctx, descriptors("a", "b"))
	require.Len(t, sites, 2)
	for _, s := range sites {
		assert.True(t, s.Unavailable, "site %s should be a placeholder after cancellation", s.Name)
	}
}

func TestAggregateNoDescriptors(t *testing.T) {
	sites := NewPipeline(&fakeFetcher{}).Aggregate(context.Background(), nil)
	assert.NotNil(t, sites)
	assert.Empty(t, sites)
}

type fakeManifest struct {
	descriptors []site.Descriptor
	err         error
	calls       int
}

func (m *fakeManifest) Load(ctx context.Context) ([]site.Descriptor, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.descriptors, nil
}

func TestCacheLifecycle(t *testing.T) {
	fetcher := &fakeFetcher{histories: map[string][]site.ScanRecord{
		"a": {{Violations: nil, LastUpdated: 1}},
	}}
	loader := &fakeManifest{descriptors: descriptors("a")}
	cache := NewCache(loader, NewPipeline(fetcher))

	_, _, ok := cache.Snapshot()
	assert.False(t, ok, "empty cache must not serve a snapshot")

	sites, err := cache.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, sites, 1)

	cached, refreshed, ok := cache.Snapshot()
	require.True(t, ok)
	assert.Equal(t, sites, cached)
	assert.False(t, refreshed.IsZero())
	assert.Equal(t, 1, loader.calls, "snapshot must not re-fetch")

	cache.Invalidate()
	_, _, ok = cache.Snapshot()
	assert.False(t, ok)
}

func TestCacheManifestFailureKeepsPreviousSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{histories: map[string][]site.ScanRecord{
		"a": {{LastUpdated: 1}},
	}}
	loader := &fakeManifest{descriptors: descriptors("a")}
	cache := NewCache(loader, NewPipeline(fetcher))

	_, err := cache.Refresh(context.Background())
	require.NoError(t, err)

	loader.err = &site.FetchError{URL: "/sites.json", Status: 500}
	_, err = cache.Refresh(context.Background())
	require.Error(t, err)

	var fetchErr *site.FetchError
	assert.ErrorAs(t, err, &fetchErr, "manifest failure must surface unrecovered")

	cached, _, ok := cache.Snapshot()
	require.True(t, ok, "failed refresh must keep serving the last good snapshot")
	assert.Len(t, cached, 1)
}
