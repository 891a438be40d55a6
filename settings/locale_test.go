// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocaleListsStartWithEmptyChoice(t *testing.T) {
	for name, list := range map[string][]Option{"languages": Languages, "regions": Regions} {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, list[0].Code)

			seen := map[string]bool{}
			for _, o := range list[1:] {
				assert.NotEmpty(t, o.Name)
				assert.NotEmpty(t, o.Code, o.Name)
				assert.False(t, seen[o.Code], "duplicate code %s", o.Code)
				seen[o.Code] = true
			}
		})
	}
}

func TestLanguagesContainRegionalVariants(t *testing.T) {
	assert.Contains(t, Languages, Option{Name: "English (Great Britain)", Code: "en-GB"})
	assert.Contains(t, Languages, Option{Name: "Chinese (Traditional)", Code: "zh-TW"})
}

func TestFindOption(t *testing.T) {
	o, ok := FindOption(Regions, "mq")
	assert.True(t, ok)
	assert.Equal(t, "Martinique", o.Name)

	_, ok = FindOption(Languages, "xx")
	assert.False(t, ok)
}
