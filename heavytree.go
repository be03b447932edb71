// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dawgidx

import (
	"encoding/binary"
	"math/bits"

	"github.com/gaissmai/dawgidx/internal/bytemap"
)

// HeavyTreePacked is the packed-head Heavy-Tree index (§4.4.2): it
// compares up to 8 pattern bytes at a time against a 64-bit packed
// head label and advances along the heavy path with a bounded (k≤8)
// level-ancestor strategy. Valid strategies are StrategyExpDoubling
// and StrategyMemo8; the default is StrategyMemo8.
type HeavyTreePacked struct {
	head       []uint64
	pos        []int32 // text offset of the heavy path reaching x, bounds head[x]'s real length
	textLen    int32
	lightEdges []bytemap.Sorted[int32]
	la         levelAncestor
	stats      BuildStats
}

// NewHeavyTreePacked builds a HeavyTreePacked index over text.
func NewHeavyTreePacked(text []byte, opts ...Option) (*HeavyTreePacked, error) {
	o := resolveOptions(opts)
	strategy := StrategyMemo8
	if o.hasStrategy {
		strategy = o.strategy
	}

	c := buildCore(text)
	la, err := newBoundedLevelAncestor(strategy, c.decomp.HeavyChild)
	if err != nil {
		return nil, err
	}

	return &HeavyTreePacked{
		head:       c.decomp.Head,
		pos:        c.decomp.Pos,
		textLen:    int32(len(text)),
		lightEdges: c.decomp.LightEdges,
		la:         la,
		stats:      c.Stats(),
	}, nil
}

// Stats implements Index.
func (h *HeavyTreePacked) Stats() BuildStats {
	return h.stats
}

// Locate implements Index.
func (h *HeavyTreePacked) Locate(pattern []byte) (State, bool) {
	x := int32(0)
	i := 0

	for i < len(pattern) {
		maxLen := len(pattern) - i
		if maxLen > 8 {
			maxLen = 8
		}
		// head[x] is zero-padded past the heavy path's real remaining
		// length (textLen-pos[x]); without this bound the padding can
		// spuriously match a pattern's own trailing zero bytes and
		// overshoot past the text's actual content.
		if real := int(h.textLen - h.pos[x]); real < maxLen {
			maxLen = real
		}

		var buf [8]byte
		copy(buf[:], pattern[i:i+maxLen])
		xorv := binary.LittleEndian.Uint64(buf[:]) ^ h.head[x]

		lcp := 8
		if xorv != 0 {
			lcp = bits.TrailingZeros64(xorv) / 8
		}
		if lcp > maxLen {
			lcp = maxLen
		}

		x = h.la.Anc(x, lcp)
		i += lcp

		if i == len(pattern) {
			break
		}
		// a full 8-byte match may continue along the heavy path, so
		// light edges are only consulted after a mismatch.
		if lcp == 8 {
			continue
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
func (h *HeavyTreePacked) NumBytes() uint64 {
	size := uint64(len(h.head))*8 + uint64(len(h.pos))*4
	for _, m := range h.lightEdges {
		size += m.NumBytes()
	}
	return size + h.la.NumBytes() + 16
}

// HeavyTree is the position-based Heavy-Tree index (§4.4.3): it
// compares runs of the pattern against the stored text directly,
// bounded only by however much text and pattern remain, and advances
// with an unbounded level-ancestor strategy. Valid strategies are
// StrategyNaive, StrategyHPD and StrategyBP; the default is
// StrategyBP, the pairing the specification's construction notes
// call out as preferred.
type HeavyTree struct {
	text       []byte
	pos        []int32
	lightEdges []bytemap.Sorted[int32]
	la         levelAncestor
	stats      BuildStats
}

// NewHeavyTree builds a HeavyTree index over text.
func NewHeavyTree(text []byte, opts ...Option) (*HeavyTree, error) {
	o := resolveOptions(opts)
	strategy := StrategyBP
	if o.hasStrategy {
		strategy = o.strategy
	}

	c := buildCore(text)
	la, err := newUnboundedLevelAncestor(strategy, c.decomp.HeavyChild, c.decomp.Sink)
	if err != nil {
		return nil, err
	}

	return &HeavyTree{
		text:       c.text,
		pos:        c.decomp.Pos,
		lightEdges: c.decomp.LightEdges,
		la:         la,
		stats:      c.Stats(),
	}, nil
}

// Stats implements Index.
func (h *HeavyTree) Stats() BuildStats {
	return h.stats
}

// Locate implements Index.
func (h *HeavyTree) Locate(pattern []byte) (State, bool) {
	x := int32(0)
	i := 0

	for i < len(pattern) {
		p := int(h.pos[x])

		maxLen := len(h.text) - p
		if rem := len(pattern) - i; rem < maxLen {
			maxLen = rem
		}

		lcp := commonPrefixLen(h.text[p:p+maxLen], pattern[i:i+maxLen])

		x = h.la.Anc(x, lcp)
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
func (h *HeavyTree) NumBytes() uint64 {
	size := uint64(len(h.text)) + uint64(len(h.pos))*4
	for _, m := range h.lightEdges {
		size += m.NumBytes()
	}
	return size + h.la.NumBytes() + 16
}

// commonPrefixLen returns the length of the common prefix of a and b,
// which must have equal length (the caller bounds that length to
// min(text-remaining, pattern-remaining) before slicing, so neither
// slice is ever over-read). It compares 8 bytes at a time via an
// unaligned little-endian load, falling back to a byte-at-a-time scan
// for the final, possibly-shorter tail.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	i := 0
	for i+8 <= n {
		va := binary.LittleEndian.Uint64(a[i : i+8])
		vb := binary.LittleEndian.Uint64(b[i : i+8])
		if va != vb {
			return i + bits.TrailingZeros64(va^vb)/8
		}
		i += 8
	}
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
