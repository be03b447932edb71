// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package dawgidx

import "errors"

// ErrStrategyMismatch is returned by a HeavyTree constructor when the
// supplied level-ancestor Strategy cannot answer arbitrary-length
// queries but the variant requires one (or vice versa).
var ErrStrategyMismatch = errors.New("dawgidx: level-ancestor strategy incompatible with index variant")
