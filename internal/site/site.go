package site

import "encoding/json"

type Impact string
type Category string

const (
	ImpactCritical Impact = "critical"
	ImpactSerious  Impact = "serious"
	ImpactModerate Impact = "moderate"
	ImpactMinor    Impact = "minor"

	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryWarning Category = "warning"
	CategoryDanger  Category = "danger"
)

// Descriptor is one manifest entry. Name is the identity of a site and is
// unique within a manifest; the manifest is trusted static data.
type Descriptor struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Violation is one accessibility rule failure as reported by the upstream
// scanner. Impact values outside the known set are a data-quality defect of
// the scanner and are carried through untouched.
type Violation struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Help        string            `json:"help"`
	HelpURL     string            `json:"helpUrl"`
	Impact      Impact            `json:"impact"`
	Tags        []string          `json:"tags"`
	Nodes       []json.RawMessage `json:"nodes,omitempty"`
}

// ScanRecord is one historical audit result. LastUpdated is epoch seconds;
// converting it to a display date is the presentation layer's job.
type ScanRecord struct {
	Violations  []Violation `json:"violations"`
	LastUpdated int64       `json:"last_updated"`
}

// Site is the aggregated, scored view-model consumed by the renderers and the
// HTTP API. History keeps the order the data service returned; LatestScan is
// the last element of History, nil when the history is empty. The collection
// a Site belongs to is rebuilt wholesale on every aggregation pass.
type Site struct {
	Name        string       `json:"name"`
	URL         string       `json:"url"`
	LatestScan  *ScanRecord  `json:"latest_scan,omitempty"`
	History     []ScanRecord `json:"history"`
	Score       int          `json:"score"`
	Category    Category     `json:"category"`
	Unavailable bool         `json:"unavailable,omitempty"`
}
