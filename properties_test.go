// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dawgidx

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStatsConsistency(t *testing.T) {
	t.Parallel()

	c := buildCore([]byte("mississippi"))
	stats := c.Stats()

	require.Equal(t, c.frozen.NumStates(), stats.NumStates)
	assert.Equal(t, stats.NumStates-1, stats.NumHeavy, "every state but the sink has a heavy child")
	assert.GreaterOrEqual(t, stats.NumEdges, stats.NumHeavy)
	assert.Equal(t, stats.NumEdges-stats.NumHeavy, stats.NumLight)
}

func TestSizeBounds(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("abc", 200)
	c := buildCore([]byte(text))

	if max := 2*len(text) + 1; c.frozen.NumStates() > max {
		t.Fatalf("NumStates=%d exceeds 2n+1=%d", c.frozen.NumStates(), max)
	}
	if max := 3 * len(text); c.Stats().NumEdges > max {
		t.Fatalf("NumEdges=%d exceeds 3n=%d", c.Stats().NumEdges, max)
	}
}

// TestRandomPatternsAgree builds a moderately sized random text and
// checks every variant against a brute-force substring search over a
// mix of true substrings and random noise.
func TestRandomPatternsAgree(t *testing.T) {
	t.Parallel()

	rng := rand.NewPCG(1, 2)
	r := rand.New(rng)

	alphabet := []byte("abcd")
	text := make([]byte, 300)
	for i := range text {
		text[i] = alphabet[r.IntN(len(alphabet))]
	}

	indexes := buildAll(t, string(text))

	for i := 0; i < 200; i++ {
		var pattern []byte
		if r.IntN(2) == 0 && len(text) > 0 {
			start := r.IntN(len(text))
			end := start + r.IntN(len(text)-start+1)
			pattern = text[start:end]
		} else {
			pattern = make([]byte, r.IntN(6))
			for j := range pattern {
				pattern[j] = alphabet[r.IntN(len(alphabet))]
			}
		}

		want := strings.Contains(string(text), string(pattern))

		for name, idx := range indexes {
			_, got := idx.Locate(pattern)
			if got != want {
				t.Fatalf("pattern=%q: %s found=%v, want %v", pattern, name, got, want)
			}
		}
	}
}

func TestIdempotentConstruction(t *testing.T) {
	t.Parallel()

	text := []byte("the quick brown fox jumps over the lazy dog")

	a := buildCore(text).Stats()
	b := buildCore(text).Stats()

	require.Equal(t, a, b, "Stats must not depend on construction order")
}
