// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "golang.org/x/exp/rand"

// A Sampler draws random samples, one per call to Rand. Samples from
// a given Sampler are independent and identically distributed.
type Sampler interface {
	// Rand returns one random sample.
	Rand() float64
}

// An InvCDFSampler draws samples from Dist by inverse-transform
// sampling: each sample is Dist.InvCDF(u) for an independent uniform
// u in [0, 1). By the probability integral transform this produces
// exact samples from Dist for any correctly inverted CDF.
type InvCDFSampler struct {
	// Dist is the distribution to sample from. Only its InvCDF
	// method is used.
	Dist Dist

	// Src is the source of uniform variates. If Src is nil, the
	// shared global source is used.
	Src rand.Source
}

// Rand returns one sample drawn from s.Dist.
func (s InvCDFSampler) Rand() float64 {
	var u float64
	if s.Src == nil {
		u = rand.Float64()
	} else {
		u = rand.New(s.Src).Float64()
	}
	return s.Dist.InvCDF(u)
}
