package manifest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kimberlythegeek/accessibility-dashboard/internal/engine"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/site"
)

// Loader fetches the static manifest of monitored sites. Every Load is a
// fresh GET; the manifest is small and the dashboard reloads rarely.
type Loader struct {
	url    string
	client *http.Client
}

func NewLoader(url string, client *http.Client) *Loader {
	if client == nil {
		client = engine.NewHTTPClient(0)
	}
	return &Loader{url: url, client: client}
}

// Load returns the manifest descriptors as-is. The manifest is trusted static
// data; no schema validation beyond JSON shape.
func (l *Loader) Load(ctx context.Context) ([]site.Descriptor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, &site.FetchError{URL: l.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &site.FetchError{URL: l.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &site.FetchError{URL: l.url, Status: resp.StatusCode}
	}

	body, err := engine.ReadBody(resp)
	if err != nil {
		return nil, &site.FetchError{URL: l.url, Err: err}
	}

	var descriptors []site.Descriptor
	if err := json.Unmarshal(body, &descriptors); err != nil {
		return nil, &site.ParseError{URL: l.url, Err: err}
	}
	return descriptors, nil
}
