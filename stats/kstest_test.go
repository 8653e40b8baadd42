// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestKolmogorovSmirnovByHand(t *testing.T) {
	// For {-1, 0, 1} against the unit Laplace, the deviation is
	// largest at the first step: F(-1) = e⁻¹/2 ≈ 0.18394 against
	// an empirical CDF of 0.
	res := KolmogorovSmirnovTest(Sample{Xs: []float64{1, -1, 0}}, LaplaceDist{})
	assert.Equal(t, 3, res.N)
	assert.InDelta(t, 0.18393972058572117, res.D, 1e-12)
	assert.InDelta(t, 0.9996561149830032, res.P, 1e-9)
}

func TestKolmogorovSmirnovRejectsWrongDist(t *testing.T) {
	// Samples from a Laplace centered at 3 look nothing like a
	// flat-topped Laplace at 0.
	src := rand.NewSource(5)
	xs := make([]float64, 500)
	for i := range xs {
		xs[i] = LaplaceDist{Mu: 3, Src: src}.Rand()
	}

	res := KolmogorovSmirnovTest(Sample{Xs: xs}, FlatLaplaceDist{A: 0.5})
	assert.Greater(t, res.D, 0.3)
	assert.Less(t, res.P, 1e-6)
}

func TestKolmogorovSmirnovSortedInputUnchanged(t *testing.T) {
	xs := []float64{3, 1, 2}
	KolmogorovSmirnovTest(Sample{Xs: xs}, LaplaceDist{})
	assert.Equal(t, []float64{3, 1, 2}, xs, "test must not reorder the caller's slice")
}
