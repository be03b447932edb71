// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package automaton builds the directed acyclic word graph (DAWG, a.k.a.
// suffix automaton) of a text using Blumer's online construction, with
// suffix links and node cloning.
//
// Grounded on includes/dawg.hpp's DAWGBase.add_node from the retrieved
// original source, rewritten as an exported, idiomatic-Go online
// builder over growable internal/bytemap.HashMap child tables, frozen
// into internal/bytemap.Sorted tables once construction ends.
package automaton

import "github.com/gaissmai/dawgidx/internal/bytemap"

// noLink is the suffix-link value of the initial state.
const noLink = -1

// State is one node of the DAWG under construction.
type State struct {
	Len   int32
	SLink int32
	Ch    *bytemap.HashMap[int32]
}

func newState(length int32) *State {
	return &State{Len: length, SLink: noLink, Ch: bytemap.NewHashMap[int32]()}
}

// cloneChildren returns a new, independent copy of a state's children,
// used when a state is cloned during construction (§4.2 step 4).
func cloneChildren(ch *bytemap.HashMap[int32]) *bytemap.HashMap[int32] {
	clone := bytemap.NewHashMap[int32]()
	for _, e := range ch.Items() {
		clone.Add(e.Key, e.Val)
	}
	return clone
}

// Frozen is the read-only representation of a DAWG once construction
// has finished: parallel arrays indexed by state id, with each state's
// children stored in the binary-searched bytemap.Sorted form.
type Frozen struct {
	Len   []int32
	SLink []int32
	Ch    []bytemap.Sorted[int32]
	Sink  int32
}

// NumStates returns the number of states, including the initial state.
func (f *Frozen) NumStates() int {
	return len(f.Len)
}

// NumBytes reports the approximate in-memory footprint, for the §6
// num_bytes diagnostic.
func (f *Frozen) NumBytes() uint64 {
	size := uint64(len(f.Len))*4 + uint64(len(f.SLink))*4 + 16
	for _, ch := range f.Ch {
		size += ch.NumBytes()
	}
	return size
}
