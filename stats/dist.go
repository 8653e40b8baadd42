// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from -inf to x.
	CDF(x float64) float64

	// InvCDF returns the generalized inverse of the CDF for y.
	// That is, InvCDF(CDF(x)) = x. The value of y must be in
	// [0, 1].
	InvCDF(y float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A RandDist is a Dist that can draw random samples from itself.
type RandDist interface {
	Dist

	// Rand returns one random sample drawn from this
	// distribution.
	Rand() float64
}

// A Density is anything that can evaluate a probability density. It
// is the minimal capability a rejection sampler needs from its
// target.
type Density interface {
	// PDF returns the value of the probability density function
	// at x.
	PDF(x float64) float64
}

// DensityFunc adapts a plain function to the Density interface.
type DensityFunc func(x float64) float64

func (f DensityFunc) PDF(x float64) float64 { return f(x) }

// PDFEach returns d.PDF(xs[i]) for each i.
func PDFEach(d Dist, xs []float64) []float64 {
	return eachFloat64(d.PDF, xs)
}

// CDFEach returns d.CDF(xs[i]) for each i.
func CDFEach(d Dist, xs []float64) []float64 {
	return eachFloat64(d.CDF, xs)
}

// InvCDFEach returns d.InvCDF(ys[i]) for each i.
func InvCDFEach(d Dist, ys []float64) []float64 {
	return eachFloat64(d.InvCDF, ys)
}

func eachFloat64(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}
