// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command dawgbench builds dawgidx indices over a text file and
// measures Locate throughput across variants and level-ancestor
// strategies.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dawgbench",
	Short: "build and benchmark dawgidx full-text indices",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(benchCmd)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Lmicroseconds)
}
