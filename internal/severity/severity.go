package severity

import "github.com/kimberlythegeek/accessibility-dashboard/internal/site"

// Scoring policy. The weights and thresholds are compatibility constants
// shared with the hosted dashboard; do not tune them without migrating both.
const (
	weightCritical = 15
	weightSerious  = 9
	weightModerate = 5
	weightMinor    = 1

	maxScore         = 100
	dangerThreshold  = 60
	warningThreshold = 20
)

type Result struct {
	Score    int           `json:"score"`
	Category site.Category `json:"category"`
}

// Score maps a scan's violations to a bounded severity score and a display
// category. Violations with an unrecognized impact are excluded from the
// weighted sum rather than treated as an error.
func Score(violations []site.Violation) Result {
	var critical, serious, moderate, minor int
	for _, v := range violations {
		switch v.Impact {
		case site.ImpactCritical:
			critical++
		case site.ImpactSerious:
			serious++
		case site.ImpactModerate:
			moderate++
		case site.ImpactMinor:
			minor++
		}
	}

	score := weightCritical*critical + weightSerious*serious + weightModerate*moderate + weightMinor*minor
	if score > maxScore {
		score = maxScore
	}

	return Result{Score: score, Category: categorize(score, len(violations))}
}

func categorize(score, violationCount int) site.Category {
	switch {
	case score == 0 && violationCount == 0:
		return site.CategoryInfo
	case score >= dangerThreshold:
		return site.CategoryDanger
	case score >= warningThreshold:
		return site.CategoryWarning
	default:
		return site.CategorySuccess
	}
}
