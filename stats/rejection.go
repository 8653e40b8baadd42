// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// ErrNoAccept is returned by RejectionSampler.Sample when no proposal
// is accepted within MaxTries draws.
var ErrNoAccept = errors.New("rejection sampler: no proposal accepted")

// A RejectionSampler draws exact samples from a target density by
// drawing proposals from an auxiliary distribution and accepting each
// proposal η with probability
//
//	f(η) / (M · q(η))
//
// where f is the target density, q the proposal density, and M an
// upper bound on f(x)/q(x) over the whole support.
//
// M must really bound the density ratio everywhere: the sampler does
// not verify this, and an M below the true supremum silently biases
// the output. Set Debug to check the bound on every draw. The
// expected number of proposal draws per accepted sample is M.
type RejectionSampler struct {
	// Target is the density f to sample from.
	Target Density

	// Proposal is the distribution q proposals are drawn from. It
	// supplies both the draws and the density the acceptance test
	// divides by. Its tails must dominate Target's so that a
	// finite M exists.
	Proposal RandDist

	// M bounds Target.PDF(x)/Proposal.PDF(x) for all x.
	M float64

	// Src is the source of the uniform variates used in the
	// acceptance test. If Src is nil, the shared global source is
	// used.
	Src rand.Source

	// MaxTries caps the number of proposal draws in Sample. If
	// MaxTries is 0, Sample retries forever, like Rand.
	MaxTries int

	// Debug makes every draw assert that the density ratio at the
	// proposal does not exceed M, panicking otherwise.
	Debug bool
}

// Rand returns one sample drawn from s.Target. It retries until a
// proposal is accepted, so a mis-parameterized sampler (non-finite M,
// zero target density) does not terminate; use Sample with MaxTries
// set for a bounded variant.
func (s RejectionSampler) Rand() float64 {
	for {
		if x, ok := s.try(); ok {
			return x
		}
	}
}

// Sample returns one sample drawn from s.Target. If s.MaxTries > 0
// and no proposal is accepted within that many draws, it returns
// ErrNoAccept.
func (s RejectionSampler) Sample() (float64, error) {
	for i := 0; s.MaxTries == 0 || i < s.MaxTries; i++ {
		if x, ok := s.try(); ok {
			return x, nil
		}
	}
	return nan, errors.WithMessagef(ErrNoAccept, "give up after %d draws", s.MaxTries)
}

// try draws one proposal and runs the acceptance test. The test
// compares f(η) > M·u·q(η) rather than forming the ratio f/q so a
// zero proposal density rejects instead of producing NaN.
func (s RejectionSampler) try() (float64, bool) {
	eta := s.Proposal.Rand()
	var u float64
	if s.Src == nil {
		u = rand.Float64()
	} else {
		u = rand.New(s.Src).Float64()
	}
	f, q := s.Target.PDF(eta), s.Proposal.PDF(eta)
	if s.Debug && f > s.M*q {
		panic(fmt.Sprintf("rejection sampler: density ratio %v at %v exceeds envelope M=%v", f/q, eta, s.M))
	}
	return eta, f > s.M*u*q
}

// RatioBound estimates the supremum of f(x)/q(x) by evaluating the
// ratio on an n-point grid over [lo, hi]. It is a convenience for
// checking a candidate envelope constant before handing it to a
// RejectionSampler; it is only as good as the grid, so callers should
// make [lo, hi] generously cover both distributions' weight.
func RatioBound(f, q Density, lo, hi float64, n int) float64 {
	sup := 0.0
	for _, x := range floats.Span(make([]float64, n), lo, hi) {
		if r := f.PDF(x) / q.PDF(x); r > sup {
			sup = r
		}
	}
	return sup
}
