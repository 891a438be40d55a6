// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcodagnone/storelocator/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change the locator settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved settings",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadSettings(context.Background())
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))

		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set key=value...",
	Short: "Change settings",
	Long: `Applies the given key=value pairs on top of the saved settings and saves
the result after validation. Checkboxes are turned off with an empty value,
for example "streetview=". Invalid values fall back to their default and a
warning is printed for the ones that need attention.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ctx := context.Background()

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := settings.NewRepository(db)
		if err := repo.CreateSchema(); err != nil {
			return fmt.Errorf("creating settings schema: %w", err)
		}

		current, err := repo.Load(ctx)
		if err != nil {
			return err
		}

		raw, err := applyPairs(current.Raw(), args)
		if err != nil {
			return err
		}

		cfg, defaulted := settings.Sanitize(raw)
		if err := repo.Save(ctx, cfg); err != nil {
			return err
		}

		for _, w := range defaulted.Warnings() {
			fmt.Printf("warning: %s\n", w.Message())
		}

		fmt.Println("Settings saved.")

		return nil
	},
}

// loadSettings returns the saved settings, Defaults when none were saved.
func loadSettings(ctx context.Context) (settings.Settings, error) {
	db, err := openDB()
	if err != nil {
		return settings.Settings{}, err
	}
	defer db.Close()

	repo := settings.NewRepository(db)
	if err := repo.CreateSchema(); err != nil {
		return settings.Settings{}, fmt.Errorf("creating settings schema: %w", err)
	}

	return repo.Load(ctx)
}

// applyPairs sets every key=value of args on raw. An empty value on a
// checkbox removes it.
func applyPairs(raw settings.Raw, args []string) (settings.Raw, error) {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}

		if value == "" && settings.IsCheckbox(key) {
			delete(raw, key)

			continue
		}

		raw[key] = value
	}

	return raw, nil
}

func printOptions(options []settings.Option) {
	for _, o := range options {
		fmt.Printf("%-6s %s\n", o.Code, o.Name)
	}
}

var settingsLanguagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages accepted as api_language",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printOptions(settings.Languages)
	},
}

var settingsRegionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regions accepted as api_region",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printOptions(settings.Regions)
	},
}

var settingsZoomLevelsCmd = &cobra.Command{
	Use:   "zoom-levels",
	Short: "List the accepted zoom levels",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printOptions(settings.ZoomLevels())
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsLanguagesCmd, settingsRegionsCmd, settingsZoomLevelsCmd)
}
