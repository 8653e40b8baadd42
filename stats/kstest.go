// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A KSTestResult is the result of a one-sample Kolmogorov-Smirnov
// test.
type KSTestResult struct {
	// N is the size of the tested sample.
	N int

	// D is the Kolmogorov-Smirnov statistic: the supremum over x
	// of the absolute difference between the sample's empirical
	// CDF and the hypothesized CDF.
	D float64

	// P is the asymptotic two-sided p-value of D: the probability
	// of a statistic at least this large under the null
	// hypothesis that the sample was drawn from the hypothesized
	// distribution. The approximation is good for N ≳ 35 and
	// conservative below that.
	P float64
}

// KolmogorovSmirnovTest performs a one-sample Kolmogorov-Smirnov test
// of the null hypothesis that sample s was drawn from distribution
// dist.
//
// The empirical CDF of a sample from dist converges to dist's CDF, so
// a large D (equivalently, a small P) is evidence that s was drawn
// from some other distribution. This is the standard check that a
// sampler actually produces the distribution it was built for.
func KolmogorovSmirnovTest(s Sample, dist Dist) KSTestResult {
	if s.Weights != nil {
		panic("KS test of weighted sample is not implemented")
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	// At the i'th order statistic (1-indexed) the empirical CDF
	// jumps from (i-1)/n to i/n, so the supremum of the deviation
	// is attained at a sample point from one side or the other.
	n := len(s.Xs)
	d := 0.0
	for i, x := range s.Xs {
		f := dist.CDF(x)
		if hi := float64(i+1)/float64(n) - f; hi > d {
			d = hi
		}
		if lo := f - float64(i)/float64(n); lo > d {
			d = lo
		}
	}

	return KSTestResult{N: n, D: d, P: ksProb(n, d)}
}

// ksProb returns the asymptotic probability that the KS statistic of
// an n point sample exceeds d under the null hypothesis, using the
// Kolmogorov limiting distribution with the finite-n correction of
// Stephens (1970).
func ksProb(n int, d float64) float64 {
	if d <= 0 {
		return 1
	}
	sqrtN := math.Sqrt(float64(n))
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d

	// Q(λ) = 2 Σ_{k≥1} (-1)^{k-1} exp(-2k²λ²). The terms shrink
	// extremely fast; 100 terms is far more than enough for any λ
	// that doesn't underflow the first term.
	sum := 0.0
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := sign * math.Exp(-2*float64(k)*float64(k)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-12*math.Abs(sum) {
			break
		}
		sign = -sign
	}
	p := 2 * sum
	// Clamp the tails where the series is numerically rough.
	return math.Max(0, math.Min(1, p))
}
