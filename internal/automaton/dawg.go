// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package automaton

import (
	"fmt"

	"github.com/gaissmai/dawgidx/internal/bytemap"
)

// Automaton is a DAWG under online construction.
type Automaton struct {
	states []*State
	last   int32 // the state corresponding to the current prefix
}

// Build constructs the DAWG of text in O(|text|) amortised time.
// Construction is total: it never fails on any byte input, including
// the empty slice.
func Build(text []byte) *Automaton {
	a := &Automaton{
		states: []*State{newState(0)},
		last:   0,
	}

	for i, c := range text {
		a.extend(int32(i), c)
	}

	if debugBuild {
		a.checkInvariants(len(text))
	}

	return a
}

// extend performs one step of §4.2's construction: create the state
// for the new longest prefix, walk suffix links installing missing
// transitions, and clone a state if an existing transition's target
// cannot represent the new prefix's equivalence class.
func (a *Automaton) extend(i int32, c byte) {
	cur := int32(len(a.states))
	a.states = append(a.states, newState(i+1))

	p := a.last
	for p != noLink {
		if _, ok := a.states[p].Ch.Find(c); ok {
			break
		}
		a.states[p].Ch.Add(c, cur)
		p = a.states[p].SLink
	}

	switch {
	case p == noLink:
		a.states[cur].SLink = 0

	default:
		q, _ := a.states[p].Ch.Find(c)

		if a.states[p].Len+1 == a.states[q].Len {
			a.states[cur].SLink = q
			break
		}

		clone := int32(len(a.states))
		cloned := newState(a.states[p].Len + 1)
		cloned.Ch = cloneChildren(a.states[q].Ch)
		cloned.SLink = a.states[q].SLink
		a.states = append(a.states, cloned)

		for p != noLink {
			v, ok := a.states[p].Ch.Find(c)
			if !ok || v != q {
				break
			}
			a.states[p].Ch.Add(c, clone)
			p = a.states[p].SLink
		}

		a.states[q].SLink = clone
		a.states[cur].SLink = clone
	}

	a.last = cur
}

// Sink returns the state reached by reading the whole text, i.e. the
// state corresponding to the longest prefix.
func (a *Automaton) Sink() int32 {
	return a.last
}

// NumStates returns the number of states, including the initial state.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// Freeze converts the growable construction-time representation into
// the immutable, binary-searched form used by every query-time index.
// Construction never mutates states again afterwards.
func (a *Automaton) Freeze() *Frozen {
	n := len(a.states)
	f := &Frozen{
		Len:   make([]int32, n),
		SLink: make([]int32, n),
		Ch:    make([]bytemap.Sorted[int32], n),
		Sink:  a.last,
	}

	for i, s := range a.states {
		f.Len[i] = s.Len
		f.SLink[i] = s.SLink
		f.Ch[i] = bytemap.NewSorted(s.Ch.Items())
	}

	return f
}

// checkInvariants verifies §3's invariants: a single root, monotone
// suffix links, and the ≤2n+1 state bound. It is only compiled into
// -tags dawgdebug builds.
func (a *Automaton) checkInvariants(textLen int) {
	n := len(a.states)

	if max := 2*textLen + 1; n > max {
		panic(fmt.Sprintf("automaton: %d states exceeds bound 2n+1=%d", n, max))
	}

	if a.states[0].Len != 0 || a.states[0].SLink != noLink {
		panic("automaton: state 0 must have len=0, slink=-1")
	}

	for x := 1; x < n; x++ {
		s := a.states[x]
		if s.SLink == noLink {
			panic(fmt.Sprintf("automaton: non-initial state %d has no suffix link", x))
		}
		if sl := a.states[s.SLink]; sl.Len >= s.Len {
			panic(fmt.Sprintf("automaton: state %d: len(slink)=%d >= len=%d", x, sl.Len, s.Len))
		}
	}
}
