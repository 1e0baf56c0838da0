package output

import (
	"fmt"
	"sort"
	"time"

	"github.com/kimberlythegeek/accessibility-dashboard/internal/app/ui"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/site"
)

// SortSites orders a collection by site name for display. The pipeline emits
// in completion order; every renderer re-sorts.
func SortSites(sites []site.Site) {
	sort.Slice(sites, func(i, j int) bool {
		return sites[i].Name < sites[j].Name
	})
}

func CategoryColor(c site.Category) string {
	switch c {
	case site.CategoryDanger:
		return ui.ColorDanger
	case site.CategoryWarning:
		return ui.ColorWarning
	case site.CategorySuccess:
		return ui.ColorSuccess
	case site.CategoryInfo:
		return ui.ColorInfo
	default:
		return ui.ColorWhite
	}
}

// CountByCategory tallies sites per display category.
func CountByCategory(sites []site.Site) map[site.Category]int {
	counts := make(map[site.Category]int, 4)
	for _, s := range sites {
		counts[s.Category]++
	}
	return counts
}

// PrintSites prints the dashboard list to the console.
func PrintSites(sites []site.Site) {
	if len(sites) == 0 {
		fmt.Printf("%sNo sites in manifest.%s\n", ui.ColorGray, ui.ColorReset)
		return
	}

	ordered := make([]site.Site, len(sites))
	copy(ordered, sites)
	SortSites(ordered)

	fmt.Printf("\n%sMonitored sites:%s\n", ui.ColorWhite, ui.ColorReset)
	for _, s := range ordered {
		color := CategoryColor(s.Category)
		fmt.Printf("\n%s[%s] %s%s (score %d)\n", color, s.Category, s.Name, ui.ColorReset, s.Score)
		fmt.Printf("%s - %s%s\n", ui.ColorGray, s.URL, ui.ColorReset)

		if s.Unavailable {
			fmt.Printf("%s - scan data unavailable%s\n", ui.ColorYellow, ui.ColorReset)
			continue
		}
		if s.LatestScan == nil {
			fmt.Printf("%s - no scans recorded yet%s\n", ui.ColorGray, ui.ColorReset)
			continue
		}

		scanned := time.Unix(s.LatestScan.LastUpdated, 0).Format("2006-01-02 15:04")
		fmt.Printf("%s - last scanned: %s | violations: %d | scans on record: %d%s\n",
			ui.ColorGray, scanned, len(s.LatestScan.Violations), len(s.History), ui.ColorReset)
	}
}

// PrintSummary prints the footer with category counts and fetch metrics.
func PrintSummary(sites []site.Site, elapsed time.Duration, requests int64, requestTime time.Duration) {
	counts := CountByCategory(sites)
	fmt.Printf("\n%sSummary:%s %s%d danger%s, %s%d warning%s, %s%d success%s, %s%d info%s\n",
		ui.ColorWhite, ui.ColorReset,
		ui.ColorDanger, counts[site.CategoryDanger], ui.ColorReset,
		ui.ColorWarning, counts[site.CategoryWarning], ui.ColorReset,
		ui.ColorSuccess, counts[site.CategorySuccess], ui.ColorReset,
		ui.ColorInfo, counts[site.CategoryInfo], ui.ColorReset)
	fmt.Printf("%sCompleted in %s (%d requests, %s on the wire)%s\n",
		ui.ColorGray, elapsed.Round(time.Millisecond), requests, requestTime.Round(time.Millisecond), ui.ColorReset)
}
