// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestLaplaceAgainstDistuv cross-checks LaplaceDist against gonum's
// reference implementation.
func TestLaplaceAgainstDistuv(t *testing.T) {
	cases := []struct {
		mine LaplaceDist
		ref  distuv.Laplace
	}{
		{LaplaceDist{}, distuv.Laplace{Mu: 0, Scale: 1}},
		{LaplaceDist{Mu: 1.5, Scale: 2}, distuv.Laplace{Mu: 1.5, Scale: 2}},
	}
	for _, c := range cases {
		for x := -6.0; x <= 6; x += 0.125 {
			if want, got := c.ref.Prob(x), c.mine.PDF(x); !aeq(want, got) {
				t.Errorf("%+v: want PDF(%v)=%v, got %v", c.mine, x, want, got)
			}
			if want, got := c.ref.CDF(x), c.mine.CDF(x); !aeq(want, got) {
				t.Errorf("%+v: want CDF(%v)=%v, got %v", c.mine, x, want, got)
			}
		}
		for y := 0.01; y < 1; y += 0.01 {
			if want, got := c.ref.Quantile(y), c.mine.InvCDF(y); !aeq(want, got) {
				t.Errorf("%+v: want InvCDF(%v)=%v, got %v", c.mine, y, want, got)
			}
		}
	}
}

func TestLaplaceZeroValue(t *testing.T) {
	// The zero value is the unit Laplace distribution.
	zero, unit := LaplaceDist{}, LaplaceDist{Scale: 1}
	testFunc(t, "PDF", zero.PDF, map[float64]float64{
		-1: 0.5 * math.Exp(-1),
		0:  0.5,
		1:  0.5 * math.Exp(-1),
	})
	for x := -5.0; x <= 5; x += 0.25 {
		if zero.PDF(x) != unit.PDF(x) || zero.CDF(x) != unit.CDF(x) {
			t.Errorf("zero-value and Scale=1 disagree at %v", x)
		}
	}
}

func TestLaplaceInvCDFRoundTrip(t *testing.T) {
	for _, dist := range []LaplaceDist{{}, {Mu: -2, Scale: 0.5}} {
		for y := 0.001; y < 1; y += 0.001 {
			x := dist.InvCDF(y)
			if got := dist.CDF(x); math.Abs(got-y) > 1e-9 {
				t.Fatalf("%+v: want CDF(InvCDF(%v))=%v, got %v", dist, y, y, got)
			}
		}
	}
}

func TestLaplaceRand(t *testing.T) {
	d1 := LaplaceDist{Src: rand.NewSource(7)}
	d2 := LaplaceDist{Src: rand.NewSource(7)}
	for i := 0; i < 100; i++ {
		if x1, x2 := d1.Rand(), d2.Rand(); x1 != x2 {
			t.Fatalf("same seed diverged at draw %d: %v != %v", i, x1, x2)
		}
	}
}
