// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package automaton

import (
	"strings"
	"testing"
)

// walk mirrors §4.4.1's Simple index: follow Ch transitions one byte
// at a time from the initial state.
func walk(f *Frozen, pattern string) (int32, bool) {
	x := int32(0)
	for i := 0; i < len(pattern); i++ {
		y, ok := f.Ch[x].Find(pattern[i])
		if !ok {
			return 0, false
		}
		x = y
	}
	return x, true
}

func allSubstrings(text string) map[string]bool {
	set := map[string]bool{"": true}
	for i := range text {
		for j := i + 1; j <= len(text); j++ {
			set[text[i:j]] = true
		}
	}
	return set
}

func TestBuildEmptyText(t *testing.T) {
	t.Parallel()

	a := Build(nil)
	if a.NumStates() != 1 {
		t.Fatalf("NumStates, expected 1, got %d", a.NumStates())
	}
	if a.Sink() != 0 {
		t.Fatalf("Sink, expected 0, got %d", a.Sink())
	}

	f := a.Freeze()
	if x, ok := walk(f, ""); !ok || x != 0 {
		t.Fatalf("walk(\"\"), expected (0, true), got (%d, %v)", x, ok)
	}
}

func TestSubstringCompleteness(t *testing.T) {
	t.Parallel()

	texts := []string{"abcbc", "banana", "mississippi", "aaaaaaaa", "abab", ""}

	for _, text := range texts {
		text := text
		t.Run(text, func(t *testing.T) {
			t.Parallel()

			f := Build([]byte(text)).Freeze()

			for s := range allSubstrings(text) {
				if _, ok := walk(f, s); !ok {
					t.Errorf("text=%q: substring %q should be found, was not", text, s)
				}
			}

			// a handful of strings that are not substrings must miss.
			for _, s := range []string{"zzz", text + "zzz", "\x00not-there\x00"} {
				if strings.Contains(text, s) {
					continue
				}
				if _, ok := walk(f, s); ok {
					t.Errorf("text=%q: %q is not a substring but was found", text, s)
				}
			}
		})
	}
}

func TestBuildAcceptsNulByte(t *testing.T) {
	t.Parallel()

	// Construction is total (§4.2): a literal 0x00 byte in the text
	// must not panic, and must be indexed like any other byte.
	text := []byte{0, 'a', 0, 'b', 0}
	f := Build(text).Freeze()

	for _, s := range []string{"\x00", "\x00a", "a\x00", "\x00a\x00b\x00", "\x00b\x00"} {
		if _, ok := walk(f, s); !ok {
			t.Errorf("text=%q: substring %q should be found, was not", text, s)
		}
	}

	if _, ok := walk(f, "\x00\x00\x00"); ok {
		t.Errorf("text=%q: %q is not a substring but was found", text, "\x00\x00\x00")
	}
}

func TestBananaScenario(t *testing.T) {
	t.Parallel()

	f := Build([]byte("banana")).Freeze()

	present := []string{
		"", "b", "ba", "ban", "bana", "banan", "banana",
		"a", "an", "ana", "anan", "anana",
		"n", "na", "nan", "nana",
	}
	for _, p := range present {
		if _, ok := walk(f, p); !ok {
			t.Errorf("banana: %q expected present, was absent", p)
		}
	}

	absent := []string{"c", "ab", "bab"}
	for _, p := range absent {
		if _, ok := walk(f, p); ok {
			t.Errorf("banana: %q expected absent, was present", p)
		}
	}
}

func TestMississippiStatesDiffer(t *testing.T) {
	t.Parallel()

	f := Build([]byte("mississippi")).Freeze()

	issi, ok := walk(f, "issi")
	if !ok {
		t.Fatalf("issi expected present")
	}
	_ = issi

	issis, ok := walk(f, "issis")
	if !ok {
		t.Fatalf("issis expected present")
	}

	issip, ok := walk(f, "issip")
	if !ok {
		t.Fatalf("issip expected present")
	}

	if issis == issip {
		t.Fatalf("issis and issip must resolve to different states, both got %d", issis)
	}

	if _, ok := walk(f, "issiz"); ok {
		t.Fatalf("issiz must be absent")
	}
}

func TestStateCountBound(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("ab", 500) + "xyzzy"
	a := Build([]byte(text))

	if max := 2*len(text) + 1; a.NumStates() > max {
		t.Fatalf("NumStates=%d exceeds bound 2n+1=%d", a.NumStates(), max)
	}
}

func TestIdempotentBuild(t *testing.T) {
	t.Parallel()

	text := []byte("mississippi river")
	a1 := Build(text)
	a2 := Build(text)

	if a1.NumStates() != a2.NumStates() {
		t.Fatalf("NumStates differ: %d vs %d", a1.NumStates(), a2.NumStates())
	}

	f1, f2 := a1.Freeze(), a2.Freeze()
	for i := range f1.Len {
		if f1.Len[i] != f2.Len[i] || f1.SLink[i] != f2.SLink[i] {
			t.Fatalf("state %d differs between identical builds", i)
		}
	}
}

func TestSuffixLinksFormATree(t *testing.T) {
	t.Parallel()

	f := Build([]byte("mississippi")).Freeze()

	for x := 1; x < f.NumStates(); x++ {
		// walking slink pointers from any state must terminate at 0
		// without cycling, since len strictly decreases (§3).
		seen := map[int32]bool{}
		for y := int32(x); y != 0; y = f.SLink[y] {
			if seen[y] {
				t.Fatalf("slink cycle detected starting at state %d", x)
			}
			seen[y] = true
			if f.Len[f.SLink[y]] >= f.Len[y] {
				t.Fatalf("state %d: len(slink) not strictly smaller", y)
			}
		}
	}
}
