package output

import (
	"encoding/json"
	"io"

	"github.com/kimberlythegeek/accessibility-dashboard/internal/site"
)

// WriteJSON dumps the sorted collection for scripting consumers.
func WriteJSON(w io.Writer, sites []site.Site) error {
	ordered := make([]site.Site, len(sites))
	copy(ordered, sites)
	SortSites(ordered)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ordered)
}
