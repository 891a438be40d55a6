// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "storelocator",
	Short: "store locator administration backend",
	Long: `
storelocator keeps a directory of physical stores. Addresses are geocoded
through the Google Maps Geocoding API, and the map settings used by the
public locator are validated before they are saved.
`,
	SilenceUsage: true,
}

var Version = "dev"

func Execute(version string) {
	Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&rootOptions.DbPath,
		"db-path",
		"db",
		"Directory holding the database",
	)
	rootCmd.PersistentFlags().BoolVar(
		&rootOptions.EnableHTTPTrace,
		"http-trace",
		false,
		"Trace outgoing HTTP requests and responses to stderr",
	)
	rootCmd.PersistentFlags().DurationVar(
		&rootOptions.GeocodeTimeout,
		"geocode-timeout",
		5*time.Second,
		"Timeout of a single geocoding request",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootOptions.GCPProject,
		"gcp-project",
		"",
		"Project used to look up the API key when the default credentials carry none",
	)
}
