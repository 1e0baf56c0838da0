package history

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kimberlythegeek/accessibility-dashboard/internal/engine"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/site"
)

// Fetcher retrieves one site's historical scan results from the data service.
type Fetcher struct {
	baseURL string
	client  *http.Client
}

func NewFetcher(baseURL string, client *http.Client) *Fetcher {
	if client == nil {
		client = engine.NewHTTPClient(0)
	}
	return &Fetcher{baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

// Fetch GETs <base>/<siteName> and returns the scan records in the order the
// service produced them. The service owns the ordering contract; callers must
// not re-sort.
func (f *Fetcher) Fetch(ctx context.Context, siteName string) ([]site.ScanRecord, error) {
	url := f.baseURL + "/" + siteName

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &site.FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &site.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &site.FetchError{URL: url, Status: resp.StatusCode}
	}

	body, err := engine.ReadBody(resp)
	if err != nil {
		return nil, &site.FetchError{URL: url, Err: err}
	}

	var records []site.ScanRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &site.ParseError{URL: url, Err: err}
	}
	return records, nil
}
