// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

//go:build dawgdebug

package automaton

const debugBuild = true
