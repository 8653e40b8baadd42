// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
)

// FlatLaplaceDist is a flat-topped Laplace distribution: a uniform
// plateau of density on [-A, A] with exponential rate-1 tails on
// either side. The plateau height is the normalizing constant
//
//	c = 1 / (2·exp(-A) + 2·A)
//
// and the tails are c·exp(-|x|). The CDF is continuous at the plateau
// edges even though the density steps down from c to c·exp(-A) there.
type FlatLaplaceDist struct {
	// A is the half-width of the uniform plateau. A must be > 0;
	// the methods do not validate this and a non-positive A
	// propagates as NaN or ±Inf through the formulas.
	A float64

	// Src is the source of uniform variates for Rand. If Src is
	// nil, Rand uses the shared global source.
	Src rand.Source
}

// c returns the normalizing constant of the distribution, which is
// also the height of the density plateau.
func (d FlatLaplaceDist) c() float64 {
	return 1 / (2*math.Exp(-d.A) + 2*d.A)
}

// PDF returns the density of d at x.
func (d FlatLaplaceDist) PDF(x float64) float64 {
	c := d.c()
	if math.Abs(x) > d.A {
		return c * math.Exp(-math.Abs(x))
	}
	return c
}

// CDF returns the cumulative distribution of d at x. It is continuous
// at the plateau edges ±A and has the usual limits 0 and 1 at ∓∞.
func (d FlatLaplaceDist) CDF(x float64) float64 {
	a, c := d.A, d.c()
	switch {
	case x < -a:
		return c * math.Exp(x)
	case x < a:
		return c * (math.Exp(-a) + x + a)
	default:
		return c * (2*math.Exp(-a) + 2*a - math.Exp(-x))
	}
}

// InvCDF returns the inverse of the CDF for y in [0, 1). The three
// branches mirror the CDF's and partition [0, 1) exactly; any y that
// floating-point rounding pushes out of the tail branches lands on
// the plateau branch. InvCDF(0) is -Inf.
func (d FlatLaplaceDist) InvCDF(y float64) float64 {
	a, c := d.A, d.c()
	switch {
	case y < c*math.Exp(-a):
		return math.Log(y / c)
	case 1-y < c*math.Exp(-a):
		return -math.Log((1 - y) / c)
	default:
		return y/c - math.Exp(-a) - a
	}
}

// Bounds returns the interval containing all but 0.1% of the weight
// of d.
func (d FlatLaplaceDist) Bounds() (float64, float64) {
	return d.InvCDF(0.0005), d.InvCDF(0.9995)
}

// Rand returns one sample drawn from d by inverse-transform sampling:
// it applies InvCDF to a single uniform variate in [0, 1).
func (d FlatLaplaceDist) Rand() float64 {
	var u float64
	if d.Src == nil {
		u = rand.Float64()
	} else {
		u = rand.New(d.Src).Float64()
	}
	return d.InvCDF(u)
}

// RatioBound returns an upper bound M on the ratio of d's density to
// the density of the unit LaplaceDist, valid over the whole real
// line:
//
//	M = max(c/0.5, 2/c)
//
// This is the envelope constant a RejectionSampler needs to sample
// from d with a unit Laplace proposal.
func (d FlatLaplaceDist) RatioBound() float64 {
	c := d.c()
	return math.Max(c/0.5, 2/c)
}
