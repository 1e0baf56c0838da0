package engine

import (
	"net/http"
	"time"
)

// NewBoundedClient stacks the dashboard transports onto a fresh client:
// metrics innermost, then the host boundary, then the request budget (0
// disables the cap). The returned MetricsTransport feeds the report footer.
func NewBoundedClient(timeout time.Duration, budget int64, allowedHosts []string) (*http.Client, *MetricsTransport) {
	client := NewHTTPClient(timeout)

	metrics := &MetricsTransport{Base: client.Transport}
	var rt http.RoundTripper = metrics

	if len(allowedHosts) > 0 {
		roots := make([]string, 0, len(allowedHosts))
		for _, host := range allowedHosts {
			if root := AllowedRootDomain(host); root != "" {
				roots = append(roots, root)
			}
		}
		rt = &HostBoundaryTransport{Base: rt, AllowedRootDomains: roots}
	}

	if budget > 0 {
		rt = &RequestBudgetTransport{Base: rt, Max: budget}
	}

	client.Transport = rt
	return client, metrics
}
