// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dawgidx

import (
	"github.com/gaissmai/dawgidx/internal/automaton"
	"github.com/gaissmai/dawgidx/internal/bytemap"
)

// Simple is the baseline full-text index (§4.4.1): one byte-map
// transition per pattern byte, no heavy-path decomposition at all.
// It exists to cross-check the other variants, not for production use
// on long patterns.
type Simple struct {
	ch    []bytemap.Sorted[int32]
	stats BuildStats
}

// NewSimple builds a Simple index over text.
func NewSimple(text []byte) *Simple {
	frozen := automaton.Build(text).Freeze()

	stats := BuildStats{NumStates: frozen.NumStates()}
	for x := 0; x < stats.NumStates; x++ {
		stats.NumEdges += frozen.Ch[x].Len()
	}
	// Simple performs no heavy-path decomposition, so it has no
	// heavy/light edge split to report.

	return &Simple{ch: frozen.Ch, stats: stats}
}

// Stats implements Index.
func (s *Simple) Stats() BuildStats {
	return s.stats
}

// Locate implements Index.
func (s *Simple) Locate(pattern []byte) (State, bool) {
	x := int32(0)
	for _, c := range pattern {
		y, ok := s.ch[x].Find(c)
		if !ok {
			return 0, false
		}
		x = y
	}
	return State(x), true
}

// NumBytes implements Index.
func (s *Simple) NumBytes() uint64 {
	var size uint64
	for _, m := range s.ch {
		size += m.NumBytes()
	}
	return size + 24
}
