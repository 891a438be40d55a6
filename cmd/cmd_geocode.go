// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jcodagnone/storelocator/geocode"
	"github.com/jcodagnone/storelocator/settings"
	"github.com/jcodagnone/storelocator/store"
)

var geocodeLanguage string

var geocodeCmd = &cobra.Command{
	Use:   "geocode",
	Short: "Geocode addresses read from stdin",
	Long: `Reads one address per line as street,city,zip,country and prints the
address followed by the geocoding result.

$ echo "Dam 1,Amsterdam,1012 JS,Netherlands" | storelocator geocode
Dam 1,Amsterdam,1012 JS,Netherlands		{"Status":"OK","Point":{"lat":52.37,"lng":4.89},"Country":"Netherlands","CountryISO":"NL"}
`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()

		cfg, err := loadSettings(ctx)
		if err != nil {
			return err
		}

		g := newGeocoder(ctx, cfg, nil)

		params := geocodeParams(cfg, geocodeLanguage)

		input := os.Stdin
		if isatty.IsTerminal(input.Fd()) {
			fmt.Fprintln(os.Stderr, "Enter addresses as street,city,zip,country, one per line…")
		}

		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			res, err := g.Geocode(ctx, parseAddress(line), params)
			if err != nil {
				fmt.Printf("%s\t%s: %q\n", line, geocode.TypeOf(err), err)

				continue
			}

			s, err := json.Marshal(res)
			if err != nil {
				return err
			}

			fmt.Printf("%s\t\t%s\n", line, s)
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		return nil
	},
}

// geocodeParams uses the saved settings, with language overriding the saved
// api_language when given.
func geocodeParams(cfg settings.Settings, language string) geocode.Params {
	params := store.GeocodeParams(cfg)
	if language != "" {
		params.Language = language
	}

	return params
}

func parseAddress(line string) geocode.Address {
	parts := strings.SplitN(line, ",", 4)
	for len(parts) < 4 {
		parts = append(parts, "")
	}

	return geocode.Address{
		Street:  strings.TrimSpace(parts[0]),
		City:    strings.TrimSpace(parts[1]),
		Zip:     strings.TrimSpace(parts[2]),
		Country: strings.TrimSpace(parts[3]),
	}
}

func init() {
	rootCmd.AddCommand(geocodeCmd)
	geocodeCmd.Flags().StringVar(&geocodeLanguage, "language", "", "Language of the returned country name, overrides the saved api_language")
}
