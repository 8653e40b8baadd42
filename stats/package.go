// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats provides scalar continuous distributions and routines for
// drawing random samples from them by inverse-transform and rejection
// sampling, plus goodness-of-fit checks for the results.
package stats // import "github.com/vasalf/go-sampling/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
