// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jcodagnone/storelocator/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
