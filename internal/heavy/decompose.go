// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package heavy implements the heavy-path decomposition of a frozen
// DAWG (§4.3 of the specification): topological order, per-state
// root-to-sink path counts, the heavy child/label selection, the
// light-edge tables, the packed 8-byte head labels, and the
// text-position labels. All of it is a standalone pass over integer-
// indexed arrays, never a method on the automaton's own state
// objects, so the post-freeze contract of the automaton stays clearly
// read-only (§9).
package heavy

import "github.com/gaissmai/dawgidx/internal/bytemap"

// NoChild marks a state with no heavy child (only the sink).
const NoChild = -1

// Decomposition holds every attribute §3 defines as a "heavy-
// decomposition attribute", indexed by (unrenumbered) state id.
type Decomposition struct {
	PathCnt    []int64
	HeavyChild []int32
	HeavyLabel []byte
	LightEdges []bytemap.Sorted[int32]
	Head       []uint64
	Pos        []int32
	Sink       int32
}

// NumStates returns the number of states.
func (d *Decomposition) NumStates() int {
	return len(d.PathCnt)
}

// NumBytes reports the approximate in-memory footprint.
func (d *Decomposition) NumBytes() uint64 {
	n := uint64(len(d.PathCnt))
	size := n*8 + n*4 + n + n*8 + n*4 + 16
	for _, le := range d.LightEdges {
		size += le.NumBytes()
	}
	return size
}

// Children is the minimal view Decompose needs of a frozen DAWG: for
// each state, its outgoing transitions in ascending byte order.
type Children interface {
	NumStates() int
	ItemsOf(state int32) []bytemap.Entry[int32]
}

// frozenChildren adapts automaton.Frozen without internal/heavy
// depending on internal/automaton, keeping the two passes decoupled
// exactly as §9 asks ("standalone functions over integer-index
// arrays").
type frozenChildren struct {
	ch []bytemap.Sorted[int32]
}

func (f frozenChildren) NumStates() int { return len(f.ch) }
func (f frozenChildren) ItemsOf(state int32) []bytemap.Entry[int32] {
	return f.ch[state].Items()
}

// NewChildren adapts a frozen DAWG's per-state sorted child maps into
// the Children view Decompose consumes.
func NewChildren(ch []bytemap.Sorted[int32]) Children {
	return frozenChildren{ch: ch}
}

// Decompose computes the heavy-path decomposition of a frozen DAWG
// with textLen bytes of underlying text.
func Decompose(ch Children, textLen int) *Decomposition {
	n := ch.NumStates()

	order, sink := topoSort(ch, n)

	d := &Decomposition{
		PathCnt:    make([]int64, n),
		HeavyChild: make([]int32, n),
		HeavyLabel: make([]byte, n),
		LightEdges: make([]bytemap.Sorted[int32], n),
		Head:       make([]uint64, n),
		Pos:        make([]int32, n),
		Sink:       sink,
	}
	for i := range d.HeavyChild {
		d.HeavyChild[i] = NoChild
	}

	// reverse topological order: path_cnt, heavy child/label.
	for i := n - 1; i >= 0; i-- {
		x := order[i]

		if x == sink {
			d.PathCnt[x] = 1
			continue
		}

		var maxCnt int64 = -1
		for _, e := range ch.ItemsOf(x) {
			d.PathCnt[x] += d.PathCnt[e.Val]
			if d.PathCnt[e.Val] > maxCnt {
				maxCnt = d.PathCnt[e.Val]
				d.HeavyChild[x] = e.Val
				d.HeavyLabel[x] = e.Key
			}
		}
	}

	// light edges: every transition except the heavy one.
	for x := 0; x < n; x++ {
		items := ch.ItemsOf(int32(x))
		light := make([]bytemap.Entry[int32], 0, len(items))
		for _, e := range items {
			if d.HeavyChild[x] == NoChild || e.Key != d.HeavyLabel[x] {
				light = append(light, e)
			}
		}
		d.LightEdges[x] = bytemap.NewSorted(light)
	}

	// packed heads and text positions, again in reverse topological
	// order so a state's heavy child is always processed first.
	d.Pos[sink] = int32(textLen)
	for i := n - 1; i >= 0; i-- {
		x := order[i]
		if x == sink {
			continue
		}
		y := d.HeavyChild[x]
		d.Head[x] = uint64(d.HeavyLabel[x]) | d.Head[y]<<8
		d.Pos[x] = d.Pos[y] - 1
	}

	return d
}

// topoSort runs Kahn's algorithm over the transition DAG, starting at
// state 0, visiting children in ascending byte order so that ties in
// later heavy-child selection are resolved deterministically (§4.3.3).
func topoSort(ch Children, n int) (order []int32, sink int32) {
	indeg := make([]int32, n)
	for x := 0; x < n; x++ {
		for _, e := range ch.ItemsOf(int32(x)) {
			indeg[e.Val]++
		}
	}

	order = make([]int32, 0, n)
	queue := make([]int32, 0, n)
	queue = append(queue, 0)

	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		order = append(order, x)

		for _, e := range ch.ItemsOf(x) {
			indeg[e.Val]--
			if indeg[e.Val] == 0 {
				queue = append(queue, e.Val)
			}
		}
	}

	if len(order) != n {
		panic("heavy: transition graph is not a DAG reachable from state 0")
	}

	return order, order[len(order)-1]
}
