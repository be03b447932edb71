// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaissmai/dawgidx"
)

var buildVariant string

var buildCmd = &cobra.Command{
	Use:   "build <text-file>",
	Short: "build an index over a text file and print its structural stats",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildVariant, "variant", "simple", "simple|packed|postree|heavypath")
}

func runBuild(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	// packed accepts only bounded strategies.
	strategy := dawgidx.StrategyBP
	if buildVariant == "packed" {
		strategy = dawgidx.StrategyMemo8
	}

	ts := time.Now()
	idx, err := buildIndex(buildVariant, text, strategy)
	if err != nil {
		return err
	}
	log.Printf("build %s: %v, size: %d", buildVariant, time.Since(ts), idx.NumBytes())

	stats := idx.Stats()
	log.Printf("stats: states=%d edges=%d heavy=%d light=%d", stats.NumStates, stats.NumEdges, stats.NumHeavy, stats.NumLight)

	fmt.Printf("variant=%s textlen=%d numbytes=%d\n", buildVariant, len(text), idx.NumBytes())
	return nil
}

// buildIndex constructs the named variant. strategy only applies to
// the packed and postree variants.
func buildIndex(variant string, text []byte, strategy dawgidx.Strategy) (dawgidx.Index, error) {
	switch variant {
	case "simple":
		return dawgidx.NewSimple(text), nil
	case "packed":
		return dawgidx.NewHeavyTreePacked(text, dawgidx.WithLevelAncestor(strategy))
	case "postree":
		return dawgidx.NewHeavyTree(text, dawgidx.WithLevelAncestor(strategy))
	case "heavypath":
		return dawgidx.NewHeavyPath(text), nil
	default:
		return nil, fmt.Errorf("dawgbench: unknown variant %q", variant)
	}
}
