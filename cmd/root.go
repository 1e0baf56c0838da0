/*
Copyright (c) 2026 kimberlythegeek
*/

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kimberlythegeek/accessibility-dashboard/internal/aggregate"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/app/output"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/app/ui"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/config"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/engine"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/history"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/manifest"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/site"
	appver "github.com/kimberlythegeek/accessibility-dashboard/internal/version"
)

var (
	version = appver.Value

	configPath  string
	jsonOutput  bool
	htmlOutput  string
	timeoutSecs int
)

var rootCmd = &cobra.Command{
	Use:   "a11ydash",
	Short: "a11ydash aggregates accessibility scan results for a manifest of monitored sites into a scored dashboard.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDashboard(); err != nil {
			fmt.Printf("%sDashboard load failed: %v%s\n", ui.ColorRed, err, ui.ColorReset)
			os.Exit(1)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to dashboard.yml (default: ./dashboard.yml)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the site collection as JSON")
	rootCmd.Flags().StringVar(&htmlOutput, "html", "", "Write an HTML report to the given file")
	rootCmd.Flags().IntVar(&timeoutSecs, "timeout", 0, "Per-fetch timeout in seconds (overrides config)")

	rootCmd.Long = ui.AsciiArt + `
a11ydash loads the site manifest, fetches every site's accessibility scan
history from the data service, scores the latest scan of each site, and
renders the aggregated dashboard.

Usage:
  a11ydash [flags]
  a11ydash serve

Example:
  a11ydash
  a11ydash --json
  a11ydash --html report.html
  a11ydash serve --config dashboard.yml

A failing site never aborts the pass; it shows up as unavailable. A failing
manifest fetch aborts the whole load, since no sites can be known without it.
`
}

func runDashboard() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if timeoutSecs > 0 {
		cfg.FetchTimeoutSecs = timeoutSecs
	}

	budget := cfg.RequestBudget
	if budget == 0 {
		budget = 500 // manifest + one history fetch per site, with slack
	}
	client, metrics := engine.NewBoundedClient(cfg.FetchTimeout(), budget, cfg.Hosts())

	loader := manifest.NewLoader(cfg.ManifestURL, client)
	fetcher := history.NewFetcher(cfg.DataURL, client)
	pipeline := aggregate.NewPipeline(fetcher)

	ctx, cancel := ui.WaitForCancel(context.Background())
	defer cancel()

	start := time.Now()

	descriptors, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}
	fmt.Printf("%sManifest loaded: %d sites%s\n", ui.ColorWhite, len(descriptors), ui.ColorReset)

	sites := pipeline.Aggregate(ctx, descriptors)
	elapsed := time.Since(start)

	if jsonOutput {
		return output.WriteJSON(os.Stdout, sites)
	}

	if htmlOutput != "" {
		if err := writeHTMLReport(htmlOutput, sites); err != nil {
			return err
		}
		fmt.Printf("%sHTML report written to %s%s\n", ui.ColorGreen, htmlOutput, ui.ColorReset)
	}

	output.PrintSites(sites)
	requests, requestTime := metrics.Snapshot()
	output.PrintSummary(sites, elapsed, requests, requestTime)
	return nil
}

func writeHTMLReport(path string, sites []site.Site) error {
	if _, err := os.Stat(path); err == nil {
		ok, err := ui.Confirm(fmt.Sprintf("%s exists, overwrite?", path))
		if err != nil || !ok {
			return fmt.Errorf("refusing to overwrite %s", path)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	return output.RenderHTML(f, output.BuildReportData(sites, time.Now()))
}
