// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
)

// LaplaceDist is a Laplace (double exponential) distribution with
// location Mu and scale Scale. The zero value is the standard unit
// Laplace distribution, which makes a good heavy-tailed rejection
// proposal: LaplaceDist{} has density exp(-|x|)/2.
type LaplaceDist struct {
	// Mu is the location of the peak.
	Mu float64

	// Scale is the diversity b of the distribution. A Scale of 0
	// is treated as 1 so that the zero value is usable.
	Scale float64

	// Src is the source of uniform variates for Rand. If Src is
	// nil, Rand uses the shared global source.
	Src rand.Source
}

func (d LaplaceDist) scale() float64 {
	if d.Scale == 0 {
		return 1
	}
	return d.Scale
}

// PDF returns the density of d at x, exp(-|x-Mu|/b) / (2b).
func (d LaplaceDist) PDF(x float64) float64 {
	b := d.scale()
	return math.Exp(-math.Abs(x-d.Mu)/b) / (2 * b)
}

// CDF returns the cumulative distribution of d at x.
func (d LaplaceDist) CDF(x float64) float64 {
	z := (x - d.Mu) / d.scale()
	if z < 0 {
		return 0.5 * math.Exp(z)
	}
	return 1 - 0.5*math.Exp(-z)
}

// InvCDF returns the inverse of the CDF for y in [0, 1). The two
// branches meet at the median y = 0.5; InvCDF(0) is -Inf.
func (d LaplaceDist) InvCDF(y float64) float64 {
	b := d.scale()
	if y < 0.5 {
		return d.Mu + b*math.Log(2*y)
	}
	return d.Mu - b*math.Log(2-2*y)
}

// Bounds returns the interval containing all but 0.1% of the weight
// of d.
func (d LaplaceDist) Bounds() (float64, float64) {
	return d.InvCDF(0.0005), d.InvCDF(0.9995)
}

// Rand returns one sample drawn from d by inverse-transform sampling.
func (d LaplaceDist) Rand() float64 {
	var u float64
	if d.Src == nil {
		u = rand.Float64()
	} else {
		u = rand.New(d.Src).Float64()
	}
	return d.InvCDF(u)
}
