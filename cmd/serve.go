/*
Copyright (c) 2026 kimberlythegeek
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kimberlythegeek/accessibility-dashboard/internal/app/ui"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/config"
	"github.com/kimberlythegeek/accessibility-dashboard/internal/server"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard API and HTML view over HTTP",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("%s%v%s\n", ui.ColorRed, err, ui.ColorReset)
			os.Exit(1)
		}
		if listenAddr != "" {
			cfg.ListenAddr = listenAddr
		}

		if err := server.Run(cfg); err != nil {
			fmt.Printf("%sServer failed: %v%s\n", ui.ColorRed, err, ui.ColorReset)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (overrides config, e.g. :8000)")
	rootCmd.AddCommand(serveCmd)
}
