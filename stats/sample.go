// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Bounds returns the minimum and maximum values of the sample.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	min, max = s.Xs[0], s.Xs[0]
	for _, x := range s.Xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// Sum returns the (possibly weighted) sum of the sample.
func (s Sample) Sum() float64 {
	sum := 0.0
	if s.Weights == nil {
		for _, x := range s.Xs {
			sum += x
		}
	} else {
		for i, x := range s.Xs {
			sum += x * s.Weights[i]
		}
	}
	return sum
}

// Weight returns the total weight of the sample, which is the sample
// size if the sample is unweighted.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	w := 0.0
	for _, wi := range s.Weights {
		w += wi
	}
	return w
}

// Mean returns the arithmetic mean of the sample, or NaN if the
// sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return s.Sum() / s.Weight()
}

// Variance returns the unbiased sample variance of the sample, or
// NaN if the sample has fewer than two points.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	if s.Weights != nil {
		panic("Variance of weighted sample is not implemented")
	}
	mean := s.Mean()
	ss := 0.0
	for _, x := range s.Xs {
		ss += (x - mean) * (x - mean)
	}
	return ss / float64(len(s.Xs)-1)
}

// StdDev returns the sample standard deviation of the sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Copy returns a copy of the Sample. The returned Sample shares no
// state with s, so they can both be modified.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)

	var weights []float64
	if s.Weights != nil {
		weights = make([]float64, len(s.Weights))
		copy(weights, s.Weights)
	}

	return &Sample{xs, weights, s.Sorted}
}

// Sort sorts the samples in place in s and returns s.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else if s.Weights == nil {
		sort.Float64s(s.Xs)
	} else {
		sort.Stable(&sampleSorter{s.Xs, s.Weights})
	}
	s.Sorted = true
	return s
}

type sampleSorter struct {
	xs, weights []float64
}

func (p *sampleSorter) Len() int { return len(p.xs) }

func (p *sampleSorter) Less(i, j int) bool { return p.xs[i] < p.xs[j] }

func (p *sampleSorter) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}

// Quantile returns the q'th sample quantile using the quantile
// estimator of Hyndman and Fan's definition 8. q values outside
// [0, 1] are clamped, so Quantile(0) and Quantile(1) are the sample
// minimum and maximum. The sample must be unweighted; Quantile
// panics on a weighted sample.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if s.Weights != nil {
		panic("Quantile of weighted sample is not implemented")
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	n := float64(len(s.Xs))
	h := (n+1.0/3)*q + 1.0/3
	fl := math.Floor(h)
	switch {
	case fl < 1:
		return s.Xs[0]
	case fl >= n:
		return s.Xs[len(s.Xs)-1]
	}
	lo := s.Xs[int(fl)-1]
	hi := s.Xs[int(fl)]
	return lo + (h-fl)*(hi-lo)
}

// Percentile is an alias of Quantile. The p'th percentile is given
// as a fraction in [0, 1], not a percentage.
func (s Sample) Percentile(p float64) float64 {
	return s.Quantile(p)
}
