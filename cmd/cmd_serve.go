// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jcodagnone/storelocator/admin"
	"github.com/jcodagnone/storelocator/observability"
)

var serveOptions struct {
	Listen    string
	MarkerDir string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the administration API",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)

		a, err := newApp(context.Background(), metrics)
		if err != nil {
			return err
		}
		defer a.Close()

		server := admin.NewServer(admin.Options{
			Stores:    a.service,
			Settings:  a.settings,
			Tokens:    a.authorizer,
			Metrics:   metrics,
			Gatherer:  reg,
			MarkerDir: serveOptions.MarkerDir,
		})

		return server.Run(serveOptions.Listen)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveOptions.Listen, "listen", "localhost:8080", "Address to listen on")
	serveCmd.Flags().StringVar(&serveOptions.MarkerDir, "markers", "img/markers", "Directory with the marker images")
}
