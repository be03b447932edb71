// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package dawgidx builds compact full-text indices over a fixed byte
// string from a directed acyclic word graph (a suffix automaton) and
// its heavy-path decomposition. Given text T, every variant answers
// Locate(P): does P occur in T, and if so, which automaton state does
// reading P end on.
//
// Four variants trade construction cost, memory, and query shape
// against each other:
//
//   - Simple walks one byte-map transition per pattern byte. It is the
//     correctness baseline every other variant is tested against.
//   - HeavyTreePacked compares up to 8 pattern bytes at a time against
//     a packed 64-bit head label, advancing along the heavy path with
//     a bounded (k≤8) level-ancestor strategy.
//   - HeavyTree compares runs of arbitrary length against the stored
//     text directly, advancing with an unbounded level-ancestor
//     strategy.
//   - HeavyPath flattens every heavy path into one contiguous byte
//     string, degenerating the level-ancestor step to integer
//     addition.
//
// None of the four variants is safe for concurrent writes, but all
// are immutable and safe for concurrent reads after their constructor
// returns: construction mutates growable internal state, which the
// constructor discards once it freezes the result.
package dawgidx

import (
	"github.com/gaissmai/dawgidx/internal/automaton"
	"github.com/gaissmai/dawgidx/internal/heavy"
)

// State identifies a node of the underlying automaton. In every
// variant except HeavyPath, which renumbers states, the zero State is
// the initial state (the empty pattern).
type State int32

// Index is implemented by every full-text index variant.
type Index interface {
	// Locate returns the state reached by reading pattern from the
	// initial state, and whether pattern occurs in the indexed text.
	Locate(pattern []byte) (State, bool)

	// NumBytes reports the approximate in-memory footprint in bytes.
	NumBytes() uint64

	// Stats reports the structural counters recorded at construction
	// time.
	Stats() BuildStats
}

// BuildStats reports the structural sizes of a built index: number of
// states, transitions, and how the heavy/light edge split breaks
// down. It mirrors the construction-time diagnostics the original
// implementation logged to stderr.
type BuildStats struct {
	NumStates int // |V|
	NumEdges  int // |E|
	NumHeavy  int // |H|, number of states with a heavy child
	NumLight  int // |L|, number of light (non-heavy) transitions
}

// core holds the shared post-freeze representation every
// Heavy-Tree/Heavy-Path variant is built from: the frozen automaton
// and its heavy-path decomposition.
type core struct {
	frozen *automaton.Frozen
	decomp *heavy.Decomposition
	text   []byte
}

func buildCore(text []byte) *core {
	frozen := automaton.Build(text).Freeze()
	decomp := heavy.Decompose(heavy.NewChildren(frozen.Ch), len(text))
	return &core{
		frozen: frozen,
		decomp: decomp,
		text:   append([]byte(nil), text...),
	}
}

// Stats computes BuildStats from the frozen automaton and its
// decomposition.
func (c *core) Stats() BuildStats {
	stats := BuildStats{NumStates: c.frozen.NumStates()}
	for x := 0; x < stats.NumStates; x++ {
		stats.NumEdges += c.frozen.Ch[x].Len()
		stats.NumLight += c.decomp.LightEdges[x].Len()
		if c.decomp.HeavyChild[x] != heavy.NoChild {
			stats.NumHeavy++
		}
	}
	return stats
}

// Option configures a Heavy-Tree index at construction time.
type Option func(*options)

type options struct {
	strategy    Strategy
	hasStrategy bool
}

// WithLevelAncestor selects the level-ancestor query algorithm. Each
// Heavy-Tree constructor restricts which strategies it accepts;
// passing an incompatible one returns ErrStrategyMismatch.
func WithLevelAncestor(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
		o.hasStrategy = true
	}
}

func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
