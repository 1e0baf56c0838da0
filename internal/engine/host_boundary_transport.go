package engine

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// HostBoundaryTransport blocks requests outside the configured root domains.
// The dashboard only ever talks to the manifest host and the scan data
// service; anything else is a config mistake.
type HostBoundaryTransport struct {
	Base               http.RoundTripper
	AllowedRootDomains []string
}

func (t *HostBoundaryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	host := strings.ToLower(req.URL.Hostname())
	if host == "" {
		return nil, fmt.Errorf("blocked request: empty host")
	}

	if len(t.AllowedRootDomains) > 0 && !t.allowed(host) {
		return nil, fmt.Errorf("blocked request to %s: not an allowed dashboard host", host)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

func (t *HostBoundaryTransport) allowed(host string) bool {
	root, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		root = host
	}
	for _, allowed := range t.AllowedRootDomains {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == "" {
			continue
		}
		if root == allowed || host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}

// AllowedRootDomain extracts the registrable domain of a configured URL host
// so both endpoints can be fed to the boundary transport.
func AllowedRootDomain(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return ""
	}
	root, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return root
}
