// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "sort"

// ECDF returns the empirical cumulative distribution function of the
// sample as a Dist. The CDF is the step function that increases by
// 1/N (or the normalized weight) at each sample point; the i'th
// smallest of N samples estimates the point where the true CDF of the
// sampled distribution equals i/N, which makes the ECDF the natural
// comparand for judging a sampler against the distribution it claims
// to draw from.
//
// The sample must be non-empty and unweighted.
func ECDF(s Sample) Dist {
	if len(s.Xs) == 0 {
		panic("ECDF of empty sample")
	}
	if s.Weights != nil {
		panic("ECDF of weighted sample is not implemented")
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return ecdfDist{s.Xs}
}

type ecdfDist struct {
	// xs is sorted ascending.
	xs []float64
}

// PDF of a step function is not well-defined; it is 0 everywhere
// except the sample points, where the distribution places atoms.
func (d ecdfDist) PDF(x float64) float64 {
	i := sort.SearchFloat64s(d.xs, x)
	if i < len(d.xs) && d.xs[i] == x {
		return inf
	}
	return 0
}

func (d ecdfDist) CDF(x float64) float64 {
	// Count the samples <= x.
	i := sort.Search(len(d.xs), func(i int) bool { return d.xs[i] > x })
	return float64(i) / float64(len(d.xs))
}

// InvCDF returns the generalized inverse inf{x : CDF(x) >= y}, which
// is the ceil(y·N)'th order statistic.
func (d ecdfDist) InvCDF(y float64) float64 {
	n := len(d.xs)
	i := int(float64(n) * y)
	if float64(i) == float64(n)*y && i > 0 {
		i-- // y falls exactly on a step
	}
	if i < 0 {
		i = 0
	} else if i >= n {
		i = n - 1
	}
	return d.xs[i]
}

func (d ecdfDist) Bounds() (float64, float64) {
	return d.xs[0], d.xs[len(d.xs)-1]
}
