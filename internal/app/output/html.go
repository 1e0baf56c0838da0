package output

import (
	"html/template"
	"io"
	"time"

	"github.com/kimberlythegeek/accessibility-dashboard/internal/severity"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/site"
)

type TrendPoint struct {
	Scanned    string
	Score      int
	Violations int
}

type SiteRow struct {
	Name        string
	URL         string
	Score       int
	Category    site.Category
	LastScanned string
	Unavailable bool
	Trend       []TrendPoint
}

type ReportData struct {
	GeneratedAt  string
	TotalSites   int
	DangerCount  int
	WarningCount int
	SuccessCount int
	InfoCount    int
	Sites        []SiteRow
}

// BuildReportData flattens the collection into template rows, scoring each
// historical scan so the trend table mirrors the chart on the hosted
// dashboard.
func BuildReportData(sites []site.Site, generatedAt time.Time) ReportData {
	ordered := make([]site.Site, len(sites))
	copy(ordered, sites)
	SortSites(ordered)

	counts := CountByCategory(ordered)
	data := ReportData{
		GeneratedAt:  generatedAt.Format("2006-01-02 15:04:05"),
		TotalSites:   len(ordered),
		DangerCount:  counts[site.CategoryDanger],
		WarningCount: counts[site.CategoryWarning],
		SuccessCount: counts[site.CategorySuccess],
		InfoCount:    counts[site.CategoryInfo],
	}

	for _, s := range ordered {
		row := SiteRow{
			Name:        s.Name,
			URL:         s.URL,
			Score:       s.Score,
			Category:    s.Category,
			Unavailable: s.Unavailable,
		}
		if s.LatestScan != nil {
			row.LastScanned = time.Unix(s.LatestScan.LastUpdated, 0).Format("2006-01-02 15:04")
		}
		for _, record := range s.History {
			row.Trend = append(row.Trend, TrendPoint{
				Scanned:    time.Unix(record.LastUpdated, 0).Format("2006-01-02"),
				Score:      severity.Score(record.Violations).Score,
				Violations: len(record.Violations),
			})
		}
		data.Sites = append(data.Sites, row)
	}
	return data
}

// RenderHTML writes a standalone HTML report.
func RenderHTML(w io.Writer, data ReportData) error {
	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Accessibility Dashboard</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 960px; color: #222; }
h1 { font-size: 1.5rem; }
.summary span { display: inline-block; margin-right: 1rem; padding: 0.2rem 0.6rem; border-radius: 4px; color: #fff; }
.summary .danger { background: #d9534f; }
.summary .warning { background: #f0ad4e; }
.summary .success { background: #5cb85c; }
.summary .info { background: #5bc0de; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { text-align: left; padding: 0.4rem 0.6rem; border-bottom: 1px solid #ddd; }
.badge { padding: 0.1rem 0.5rem; border-radius: 4px; color: #fff; font-size: 0.85rem; }
.badge.danger { background: #d9534f; }
.badge.warning { background: #f0ad4e; }
.badge.success { background: #5cb85c; }
.badge.info { background: #5bc0de; }
.trend { font-size: 0.85rem; color: #555; }
.unavailable { color: #a94442; font-style: italic; }
.meta { color: #777; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>Accessibility Dashboard</h1>
<p class="meta">Generated {{.GeneratedAt}} &middot; {{.TotalSites}} sites</p>
<p class="summary">
<span class="danger">{{.DangerCount}} danger</span>
<span class="warning">{{.WarningCount}} warning</span>
<span class="success">{{.SuccessCount}} success</span>
<span class="info">{{.InfoCount}} info</span>
</p>
{{range .Sites}}
<h2>{{.Name}} <span class="badge {{.Category}}">{{.Category}}</span></h2>
<p class="meta"><a href="{{.URL}}">{{.URL}}</a>
{{if .Unavailable}}<span class="unavailable"> &mdash; scan data unavailable</span>
{{else if .LastScanned}} &mdash; last scanned {{.LastScanned}}, score {{.Score}}
{{else}} &mdash; no scans recorded yet
{{end}}</p>
{{if .Trend}}
<table class="trend">
<tr><th>Scanned</th><th>Score</th><th>Violations</th></tr>
{{range .Trend}}<tr><td>{{.Scanned}}</td><td>{{.Score}}</td><td>{{.Violations}}</td></tr>
{{end}}
</table>
{{end}}
{{end}}
</body>
</html>
`
