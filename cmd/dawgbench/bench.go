// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gaissmai/dawgidx"
)

var (
	benchVariants   []string
	benchStrategies []string
	benchQueries    int
	benchCSVPath    string
)

var benchCmd = &cobra.Command{
	Use:   "bench <text-file>",
	Short: "run randomised Locate queries across variants/strategies and report a CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringSliceVar(&benchVariants, "variants", []string{"simple", "packed", "postree", "heavypath"}, "variants to benchmark")
	benchCmd.Flags().StringSliceVar(&benchStrategies, "strategies", []string{"memo8", "bp"}, "level-ancestor strategies for packed/postree; combinations a variant rejects are skipped")
	benchCmd.Flags().IntVar(&benchQueries, "queries", 10000, "number of random substring queries per combination")
	benchCmd.Flags().StringVar(&benchCSVPath, "csv", "", "write CSV output to this path instead of stdout")
}

func runBench(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	log.Printf("bench run %s: textlen=%d, variants=%v, strategies=%v, queries=%d", runID, len(text), benchVariants, benchStrategies, benchQueries)
	rng := rand.New(rand.NewPCG(1, uint64(len(text))))

	var rows []benchRow
	for _, variant := range benchVariants {
		strategies := benchStrategies
		if variant == "simple" || variant == "heavypath" {
			strategies = []string{"n/a"}
		}

		for _, strategyName := range strategies {
			strategy, _ := parseStrategy(strategyName)

			buildStart := time.Now()
			idx, err := buildIndex(variant, text, strategy)
			if errors.Is(err, dawgidx.ErrStrategyMismatch) {
				log.Printf("skip %s/%s: %v", variant, strategyName, err)
				continue
			}
			if err != nil {
				return fmt.Errorf("dawgbench: building %s/%s: %w", variant, strategyName, err)
			}
			log.Printf("build %s/%s: %v, size: %d", variant, strategyName, time.Since(buildStart), idx.NumBytes())

			patterns := randomSubstrings(rng, text, benchQueries)

			start := time.Now()
			for _, p := range patterns {
				idx.Locate(p)
			}
			elapsed := time.Since(start)
			log.Printf("query %s/%s: %v, queries: %d", variant, strategyName, elapsed, len(patterns))

			rows = append(rows, benchRow{
				runID:      runID,
				variant:    variant,
				strategy:   strategyName,
				textLen:    len(text),
				numBytes:   idx.NumBytes(),
				numQueries: len(patterns),
				elapsedNS:  elapsed.Nanoseconds(),
				nsPerQuery: float64(elapsed.Nanoseconds()) / float64(len(patterns)),
			})
		}
	}

	out := os.Stdout
	if benchCSVPath != "" {
		f, err := os.Create(benchCSVPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return writeBenchCSV(f, rows)
	}

	return writeBenchCSV(out, rows)
}

// randomSubstrings draws n random (possibly empty) substrings of text.
func randomSubstrings(rng *rand.Rand, text []byte, n int) [][]byte {
	if len(text) == 0 {
		return make([][]byte, n)
	}

	patterns := make([][]byte, n)
	for i := range patterns {
		start := rng.IntN(len(text))
		end := start + rng.IntN(len(text)-start+1)
		patterns[i] = text[start:end]
	}
	return patterns
}
