// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

//go:build !dawgdebug

package automaton

// debugBuild is false in normal builds; the invariant walker in
// dawg.go is compiled out entirely. Build with -tags dawgdebug to
// enable it, mirroring how the teacher keeps expensive invariant
// walks out of the hot path and only runs them in dedicated test/debug
// builds.
const debugBuild = false
