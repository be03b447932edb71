// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaissmai/dawgidx"
)

var (
	queryVariant  string
	queryStrategy string
)

var queryCmd = &cobra.Command{
	Use:   "query <text-file> <pattern>",
	Short: "locate a single pattern and print the resulting state",
	Args:  cobra.ExactArgs(2),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryVariant, "variant", "simple", "simple|packed|postree|heavypath")
	queryCmd.Flags().StringVar(&queryStrategy, "strategy", "bp", "naive|exp-doubling|memo8|hpd|bp")
}

func runQuery(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	strategy, err := parseStrategy(queryStrategy)
	if err != nil {
		return err
	}

	idx, err := buildIndex(queryVariant, text, strategy)
	if err != nil {
		return err
	}

	state, ok := idx.Locate([]byte(args[1]))
	if !ok {
		fmt.Println("not found")
		return nil
	}

	fmt.Printf("found at state %d\n", state)
	return nil
}

func parseStrategy(s string) (dawgidx.Strategy, error) {
	switch s {
	case "naive":
		return dawgidx.StrategyNaive, nil
	case "exp-doubling":
		return dawgidx.StrategyExpDoubling, nil
	case "memo8":
		return dawgidx.StrategyMemo8, nil
	case "hpd":
		return dawgidx.StrategyHPD, nil
	case "bp":
		return dawgidx.StrategyBP, nil
	default:
		return 0, fmt.Errorf("dawgbench: unknown strategy %q", s)
	}
}
