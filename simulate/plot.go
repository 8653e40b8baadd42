// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulate

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// A PlotRenderer renders curves to an image file with gonum/plot. The
// sink is the output file name; its extension selects the image
// format. The zero value is a usable 6x4 inch renderer.
type PlotRenderer struct {
	// Width and Height are the dimensions of the rendered plot.
	// If either is 0, it defaults to 6 or 4 inches respectively.
	Width, Height vg.Length
}

// Render plots each curve as a line and writes the image to sink.
func (pr PlotRenderer) Render(sink string, curves ...Curve) error {
	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "P(X ≤ x)"

	for i, c := range curves {
		xys := make(plotter.XYs, len(c.X))
		for j := range xys {
			xys[j].X, xys[j].Y = c.X[j], c.Y[j]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return errors.Wrapf(err, "plotting curve %q", c.Label)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(c.Label, line)
	}
	p.Legend.Top = true

	w, h := pr.Width, pr.Height
	if w == 0 {
		w = 6 * vg.Inch
	}
	if h == 0 {
		h = 4 * vg.Inch
	}
	return errors.Wrapf(p.Save(w, h, sink), "saving %q", sink)
}
