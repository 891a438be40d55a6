// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jcodagnone/storelocator/geocode"
	"github.com/jcodagnone/storelocator/store"
)

var storeInput store.Input

var listOptions struct {
	Active string
	Limit  int
	Offset int
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the store directory",
}

var storeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a store, geocoding its address unless --lat or --lng is given",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return saveStore(store.SaveRequest{Mode: store.ModeCreate, Input: storeInput})
	},
}

var storeUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace the details of a store",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		return saveStore(store.SaveRequest{Mode: store.ModeUpdate, ID: id, Input: storeInput})
	},
}

var storeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a store",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()

		a, err := newApp(ctx, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		// the operator is local, so the token is issued on the spot
		if err := a.service.Delete(ctx, id, a.authorizer.Token(id)); err != nil {
			return describe(err)
		}

		fmt.Printf("Store %d deleted.\n", id)

		return nil
	},
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stores",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		filter := store.ListFilter{Limit: listOptions.Limit, Offset: listOptions.Offset}

		if listOptions.Active != "" {
			active, err := strconv.ParseBool(listOptions.Active)
			if err != nil {
				return fmt.Errorf("invalid --active value %q", listOptions.Active)
			}

			filter.Active = &active
		}

		ctx := context.Background()

		a, err := newApp(ctx, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		page, err := a.service.List(ctx, filter)
		if err != nil {
			return err
		}

		a1, b, c, d := strings.Repeat("─", 6), strings.Repeat("─", 30), strings.Repeat("─", 24), strings.Repeat("─", 22)
		fmt.Printf("╭─%6s─┬─%-30s─┬─%-24s─┬─%-22s─╮\n", a1, b, c, d)
		fmt.Printf("│ %6s │ %-30s │ %-24s │ %-22s │\n", "Id", "Store", "City", "Location")
		fmt.Printf("├─%6s─┼─%-30s─┼─%-24s─┼─%-22s─┤\n", a1, b, c, d)

		for _, s := range page.Stores {
			name := s.Name
			if !s.Active {
				name = "(" + name + ")"
			}

			fmt.Printf("│ %6d │ %-30.30s │ %-24.24s │ %-22.22s │\n", s.ID, name, s.City, s.Point)
		}

		fmt.Printf("╰─%6s─┴─%-30s─┴─%-24s─┴─%-22s─╯\n", a1, b, c, d)
		fmt.Printf("%d of %d stores\n", len(page.Stores), page.Total)

		return nil
	},
}

var storeImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Add every store of a JSON array of store forms",
	Long: `Reads a JSON array whose elements use the same keys as the store form
(store, street, city, zip, country, lat, lng, ...) and adds each one. Entries
that fail are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		var inputs []store.Input
		if err := json.Unmarshal(data, &inputs); err != nil {
			return fmt.Errorf("decoding %s: %w", args[0], err)
		}

		ctx := context.Background()

		a, err := newApp(ctx, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		cfg, err := a.settings.Load(ctx)
		if err != nil {
			return err
		}

		var bar *progressbar.ProgressBar
		if isatty.IsTerminal(os.Stderr.Fd()) {
			bar = progressbar.NewOptions(len(inputs),
				progressbar.OptionSetDescription("Importing "+args[0]),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		var added, failed int

		for i, in := range inputs {
			_, err := a.service.Save(ctx, cfg, store.SaveRequest{Mode: store.ModeCreate, Input: in})
			if err != nil {
				failed++
				log.Printf("entry %d (%s): %v", i, in.Name, describe(err))

				if geocode.IsQuotaExceededError(err) {
					return fmt.Errorf("stopping import after %d stores: %w", added, describe(err))
				}
			} else {
				added++
			}

			if bar == nil {
				log.Printf("Imported %d/%d", i+1, len(inputs))
			} else if err := bar.Add(1); err != nil {
				return fmt.Errorf("updating progress bar: %w", err)
			}
		}

		fmt.Printf("%d stores added, %d failed\n", added, failed)

		return nil
	},
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid store id %q", arg)
	}

	return id, nil
}

func saveStore(req store.SaveRequest) error {
	ctx := context.Background()

	a, err := newApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg, err := a.settings.Load(ctx)
	if err != nil {
		return err
	}

	res, err := a.service.Save(ctx, cfg, req)
	if err != nil {
		return describe(err)
	}

	fmt.Println(res.Message)

	out, err := json.MarshalIndent(res.Store, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}

// describe turns pipeline errors into the message shown to the operator.
func describe(err error) error {
	var (
		vErr *store.ValidationError
		gErr *geocode.GeocodingError
		pErr *store.PersistenceError
	)

	switch {
	case errors.As(err, &vErr):
		return fmt.Errorf("%s Missing: %s", vErr.Message(), strings.Join(vErr.Fields, ", "))
	case errors.As(err, &gErr):
		return errors.New(gErr.Type.Message())
	case errors.As(err, &pErr):
		return errors.New(pErr.Kind.Message())
	default:
		return err
	}
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeAddCmd, storeUpdateCmd, storeDeleteCmd, storeListCmd, storeImportCmd)

	for _, c := range []*cobra.Command{storeAddCmd, storeUpdateCmd} {
		f := c.Flags()
		f.StringVar(&storeInput.Name, "name", "", "Store name (required)")
		f.StringVar(&storeInput.Street, "street", "", "Street address (required)")
		f.StringVar(&storeInput.City, "city", "", "City (required)")
		f.StringVar(&storeInput.State, "state", "", "State or province")
		f.StringVar(&storeInput.Zip, "zip", "", "Zip or postal code (required)")
		f.StringVar(&storeInput.Country, "country", "", "Country (required)")
		f.StringVar(&storeInput.CountryISO, "country-iso", "", "Two letter country code, used with --lat/--lng")
		f.StringVar(&storeInput.Lat, "lat", "", "Latitude, skips geocoding")
		f.StringVar(&storeInput.Lng, "lng", "", "Longitude, skips geocoding")
		f.StringVar(&storeInput.Description, "description", "", "Description")
		f.StringVar(&storeInput.Phone, "phone", "", "Phone")
		f.StringVar(&storeInput.Fax, "fax", "", "Fax")
		f.StringVar(&storeInput.URL, "url", "", "Website")
		f.StringVar(&storeInput.Email, "email", "", "Email")
		f.StringVar(&storeInput.Hours, "hours", "", "Opening hours")
		f.StringVar(&storeInput.ThumbID, "thumb-id", "", "Thumbnail attachment id")
	}

	storeUpdateCmd.Flags().BoolVar((*bool)(&storeInput.Active), "active", true, "Whether the store is shown")

	storeListCmd.Flags().StringVar(&listOptions.Active, "active", "", "Only active (true) or inactive (false) stores")
	storeListCmd.Flags().IntVar(&listOptions.Limit, "limit", 0, "Maximum number of stores")
	storeListCmd.Flags().IntVar(&listOptions.Offset, "offset", 0, "Stores to skip")
}
