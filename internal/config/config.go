package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up relative to the working directory when no --config
// flag is given.
const DefaultPath = "dashboard.yml"

// Config is the application-shell configuration. The core pipeline never
// reads this directly; the CLI and the server wire the values in.
type Config struct {
	ManifestURL        string `yaml:"manifest_url"`
	DataURL            string `yaml:"data_url"`
	FetchTimeoutSecs   int    `yaml:"fetch_timeout_seconds"`
	RequestBudget      int64  `yaml:"request_budget"`
	RefreshIntervalMin int    `yaml:"refresh_interval_minutes"`
	ListenAddr         string `yaml:"listen_addr"`
}

func Default() Config {
	return Config{
		ManifestURL:        "https://kimberlythegeek.github.io/accessibility-dashboard/sites.json",
		DataURL:            "https://a11y-scan-data.herokuapp.com/api/results",
		FetchTimeoutSecs:   11,
		RequestBudget:      0, // 0 means auto-calculate from the site count
		RefreshIntervalMin: 15,
		ListenAddr:         ":8000",
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error; the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	for _, u := range []string{c.ManifestURL, c.DataURL} {
		parsed, err := url.Parse(u)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("not an absolute URL: %q", u)
		}
	}
	if c.FetchTimeoutSecs < 0 {
		return fmt.Errorf("fetch_timeout_seconds must not be negative")
	}
	return nil
}

func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSecs) * time.Second
}

func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalMin) * time.Minute
}

// Hosts returns the endpoint hostnames for the fetch boundary.
func (c Config) Hosts() []string {
	var hosts []string
	for _, u := range []string{c.ManifestURL, c.DataURL} {
		if parsed, err := url.Parse(u); err == nil && parsed.Hostname() != "" {
			hosts = append(hosts, parsed.Hostname())
		}
	}
	return hosts
}
