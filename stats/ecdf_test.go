// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestECDF(t *testing.T) {
	d := ECDF(Sample{Xs: []float64{3, 1, 2}})

	testFunc(t, "CDF", d.CDF, map[float64]float64{
		0.5: 0,
		1:   1.0 / 3,
		1.5: 1.0 / 3,
		2:   2.0 / 3,
		2.5: 2.0 / 3,
		3:   1,
		3.5: 1,
	})

	testFunc(t, "InvCDF", d.InvCDF, map[float64]float64{
		0.2: 1,
		0.5: 2,
		0.9: 3,
		1:   3,
	})

	if lo, hi := d.Bounds(); lo != 1 || hi != 3 {
		t.Errorf("want bounds [1, 3], got [%v, %v]", lo, hi)
	}

	if got := d.PDF(1.5); got != 0 {
		t.Errorf("want PDF=0 off the sample points, got %v", got)
	}
	if got := d.PDF(2); !math.IsInf(got, 1) {
		t.Errorf("want an atom at a sample point, got PDF=%v", got)
	}
}

func TestECDFMatchesQuantiles(t *testing.T) {
	// On a big sample of a known distribution, the ECDF tracks
	// the true CDF.
	dist := FlatLaplaceDist{A: 0.5}
	ys := make([]float64, 2000)
	for i := range ys {
		ys[i] = (float64(i) + 0.5) / float64(len(ys))
	}
	d := ECDF(Sample{Xs: InvCDFEach(dist, ys)})
	for x := -4.0; x <= 4; x += 0.125 {
		if want, got := dist.CDF(x), d.CDF(x); math.Abs(want-got) > 1e-3 {
			t.Errorf("want ECDF(%v)≈%v, got %v", x, want, got)
		}
	}
}
