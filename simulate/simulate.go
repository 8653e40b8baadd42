// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// simulate compares the empirical distribution of a sampler's output
// against the true CDF of the distribution it samples from, rendering
// both curves through a pluggable renderer.
package simulate // import "github.com/vasalf/go-sampling/simulate"

import (
	"gonum.org/v1/gonum/floats"

	"github.com/vasalf/go-sampling/stats"
)

// A Curve is a labelled sequence of (X[i], Y[i]) points.
type Curve struct {
	Label string
	X, Y  []float64
}

// A Renderer consumes labelled curves and produces a comparison
// artifact named by sink, typically an image file. Renderers only see
// numeric coordinate sequences; what a sink name means is entirely up
// to the implementation.
type Renderer interface {
	Render(sink string, curves ...Curve) error
}

// A Comparison draws samples from Sampler and compares their
// empirical CDF against the CDF of Dist. If Sampler really samples
// from Dist, the two curves should visually coincide up to sampling
// noise.
type Comparison struct {
	// Dist is the distribution Sampler is supposed to draw from.
	Dist stats.Dist

	// Sampler produces the samples under scrutiny.
	Sampler stats.Sampler

	// N is the number of samples to draw.
	N int

	// Points is the number of grid points the true CDF is
	// evaluated on. If Points is 0, a 100 point grid is used. A
	// grid needs both of its endpoints, so values below 2 are
	// raised to 2.
	Points int
}

// Run draws c.N samples, sorts them, and hands r two curves: the true
// CDF of c.Dist on an evenly spaced grid over c.Dist.Bounds(), and
// the empirical CDF step points (x_(i), i/N) of the sorted sample.
// It returns the sorted sample so callers can inspect it further.
func (c Comparison) Run(r Renderer, sink string) (stats.Sample, error) {
	xs := make([]float64, c.N)
	for i := range xs {
		xs[i] = c.Sampler.Rand()
	}
	s := stats.Sample{Xs: xs}
	s.Sort()

	points := c.Points
	if points == 0 {
		points = 100
	} else if points < 2 {
		points = 2
	}
	lo, hi := c.Dist.Bounds()
	grid := floats.Span(make([]float64, points), lo, hi)

	ys := make([]float64, c.N)
	for i := range ys {
		ys[i] = float64(i) / float64(c.N)
	}

	err := r.Render(sink,
		Curve{Label: "Real CDF", X: grid, Y: stats.CDFEach(c.Dist, grid)},
		Curve{Label: "Heuristic CDF", X: s.Xs, Y: ys},
	)
	return s, err
}
