// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ladder

import "testing"

func chain(n int) []int32 {
	parent := make([]int32, n)
	parent[0] = -1
	for x := 1; x < n; x++ {
		parent[x] = int32(x - 1)
	}
	return parent
}

func TestLevelAncestorChain(t *testing.T) {
	t.Parallel()

	parent := chain(13)
	l := Build(parent, 0)

	for x := 1; x < 13; x++ {
		for k := 0; k <= x; k++ {
			want := int32(x - k)
			got := l.LevelAncestor(int32(x), k)
			if got != want {
				t.Fatalf("LevelAncestor(%d, %d) = %d, want %d", x, k, got, want)
			}
		}
	}
}

func TestLevelAncestorBranching(t *testing.T) {
	t.Parallel()

	// same tree shape as the rankbv sibling-subtree test.
	parent := []int32{-1, 0, 0, 0, 1, 4, 2, 6}
	l := Build(parent, 0)

	cases := []struct {
		node, k, want int32
	}{
		{5, 0, 5},
		{5, 1, 4},
		{5, 2, 1},
		{5, 3, 0},
		{7, 2, 2},
		{3, 1, 0},
	}
	for _, c := range cases {
		got := l.LevelAncestor(c.node, int(c.k))
		if got != c.want {
			t.Errorf("LevelAncestor(%d, %d) = %d, want %d", c.node, c.k, got, c.want)
		}
	}
}

func TestPathsCoverAllNodes(t *testing.T) {
	t.Parallel()

	parent := []int32{-1, 0, 0, 0, 1, 4, 2, 6}
	l := Build(parent, 0)

	for x := 0; x < len(parent); x++ {
		if l.pathOf[x] < 0 || int(l.pathOf[x]) >= len(l.paths) {
			t.Fatalf("node %d: invalid path index %d", x, l.pathOf[x])
		}
		path := l.paths[l.pathOf[x]]
		pos := l.posInPath[x]
		if int(pos) >= len(path) || path[pos] != int32(x) {
			t.Fatalf("node %d: posInPath inconsistent with its own path", x)
		}
	}
}

func TestPreorderIsPermutation(t *testing.T) {
	t.Parallel()

	parent := chain(20)
	l := Build(parent, 0)

	seen := make([]bool, 20)
	for x := 0; x < 20; x++ {
		id := l.Preorder(int32(x))
		if id < 0 || int(id) >= 20 || seen[id] {
			t.Fatalf("node %d: preorder id %d is not a valid permutation entry", x, id)
		}
		seen[id] = true
		if l.FromPreorder(id) != int32(x) {
			t.Fatalf("node %d: FromPreorder(Preorder(%d))=%d, want %d", x, x, l.FromPreorder(id), x)
		}
	}
}
