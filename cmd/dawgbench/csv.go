// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"io"
	"strconv"
)

// benchRow is one line of a benchmark run's CSV output.
type benchRow struct {
	runID      string
	variant    string
	strategy   string
	textLen    int
	numBytes   uint64
	numQueries int
	elapsedNS  int64
	nsPerQuery float64
}

func writeBenchCSV(w io.Writer, rows []benchRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"run_id", "variant", "strategy", "text_len", "num_bytes", "num_queries", "elapsed_ns", "ns_per_query"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			r.runID,
			r.variant,
			r.strategy,
			strconv.Itoa(r.textLen),
			strconv.FormatUint(r.numBytes, 10),
			strconv.Itoa(r.numQueries),
			strconv.FormatInt(r.elapsedNS, 10),
			strconv.FormatFloat(r.nsPerQuery, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	return cw.Error()
}
