// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dawgidx

import "github.com/gaissmai/dawgidx/internal/bytemap"

// HeavyPath is the flattened Heavy-Path index (§4.4.5): the
// heavy-only tree is itself decomposed into heavy paths one level up,
// so every maximal chain of "heaviest of the heavy" edges occupies a
// contiguous id range. Concatenating each chain's edge labels yields
// one flat byte string hh_string of length |V|, and the level-ancestor
// step degenerates to plain integer addition: get_anc(x, lcp) = x+lcp.
type HeavyPath struct {
	hhString   []byte
	lightEdges []bytemap.Sorted[int32]
	source     int32
	stats      BuildStats
}

type labeledChild struct {
	label byte
	child int32
}

// NewHeavyPath builds a HeavyPath index over text.
func NewHeavyPath(text []byte) *HeavyPath {
	c := buildCore(text)
	stats := c.Stats()
	n := c.frozen.NumStates()
	heavyChild := c.decomp.HeavyChild
	heavyLabel := c.decomp.HeavyLabel
	sink := c.decomp.Sink

	// The heavy-only tree, rooted at sink: state x (x != sink) is a
	// child of heavyChild[x], reached by heavyLabel[x].
	heavyTreeChildren := make([][]labeledChild, n)
	for x := 0; x < n; x++ {
		if int32(x) == sink {
			continue
		}
		y := heavyChild[x]
		heavyTreeChildren[y] = append(heavyTreeChildren[y], labeledChild{heavyLabel[x], int32(x)})
	}

	// BFS order from sink; its reverse is a valid bottom-up (children
	// before parent) processing order for a tree.
	bfsOrder := make([]int32, 0, n)
	bfsOrder = append(bfsOrder, sink)
	for i := 0; i < len(bfsOrder); i++ {
		x := bfsOrder[i]
		for _, lc := range heavyTreeChildren[x] {
			bfsOrder = append(bfsOrder, lc.child)
		}
	}

	// Second-level heavy decomposition of the heavy-only tree: for
	// each node, pick its own heaviest child (by sub-chain path
	// count) as the chain's continuation.
	pathCnt := make([]int64, n)
	hhNext := make([]int32, n) // x -> its chosen heavy-of-heavy child, or -1
	hhPrev := make([]int32, n) // y -> x such that hhNext[x]==y, or -1
	for i := range hhNext {
		hhNext[i] = -1
		hhPrev[i] = -1
	}

	for i := len(bfsOrder) - 1; i >= 0; i-- {
		x := bfsOrder[i]
		kids := heavyTreeChildren[x]
		if len(kids) == 0 {
			pathCnt[x] = 1
			continue
		}

		var maxCnt int64 = -1
		for _, lc := range kids {
			y := lc.child
			pathCnt[x] += pathCnt[y]
			if pathCnt[y] > maxCnt {
				maxCnt = pathCnt[y]
				hhNext[x] = y
			}
		}
		hhPrev[hhNext[x]] = x
	}

	// Lay out every chain contiguously: each chain starts at a
	// heavy-only-tree leaf (hhNext[i]==-1) and walks toward sink via
	// hhPrev, which is only set along chosen heavy-of-heavy edges.
	pathNodes := make([]int32, n)
	pathNodesInv := make([]int32, n)
	hhString := make([]byte, n)

	cnt := 0
	for i := 0; i < n; i++ {
		if hhNext[i] != -1 {
			continue
		}
		for x := int32(i); x != -1; x = hhPrev[x] {
			pathNodes[cnt] = x
			pathNodesInv[x] = int32(cnt)
			if hhPrev[x] != -1 {
				hhString[cnt] = heavyLabel[x]
			}
			cnt++
		}
	}

	lightEdges := make([]bytemap.Sorted[int32], n)
	for i := 0; i < n; i++ {
		x := pathNodes[i]
		items := c.frozen.Ch[x].Items()
		light := make([]bytemap.Entry[int32], 0, len(items))
		for _, e := range items {
			if e.Key != hhString[i] {
				light = append(light, bytemap.Entry[int32]{Key: e.Key, Val: pathNodesInv[e.Val]})
			}
		}
		lightEdges[i] = bytemap.NewSorted(light)
	}

	return &HeavyPath{
		hhString:   hhString,
		lightEdges: lightEdges,
		source:     pathNodesInv[0],
		stats:      stats,
	}
}

// Stats implements Index.
func (h *HeavyPath) Stats() BuildStats {
	return h.stats
}

// Locate implements Index.
func (h *HeavyPath) Locate(pattern []byte) (State, bool) {
	x := h.source
	i := 0

	for i < len(pattern) {
		maxLen := len(pattern) - i
		if rem := len(h.hhString) - int(x); rem < maxLen {
			maxLen = rem
		}

		lcp := commonPrefixLen(pattern[i:i+maxLen], h.hhString[x:int(x)+maxLen])
		x += int32(lcp)
		i += lcp

		if i == len(pattern) {
			break
		}

		y, ok := h.lightEdges[x].Find(pattern[i])
		if !ok {
			return 0, false
		}
		x = y
		i++
	}

	return State(x), true
}

// NumBytes implements Index.
func (h *HeavyPath) NumBytes() uint64 {
	size := uint64(len(h.hhString))
	for _, m := range h.lightEdges {
		size += m.NumBytes()
	}
	return size + 16
}
