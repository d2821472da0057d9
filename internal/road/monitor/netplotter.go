package monitor

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/roadplan/internal/road"
)

// SaveNetworkPlot writes a PNG snapshot of the synthesized network to
// path: one polyline per lane, one closed loop per intersection
// outline.
func SaveNetworkPlot(prototypes []road.Prototype, path string) error {
	p := plot.New()
	p.Title.Text = "Road Network"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	laneColor := color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	intersectionColor := color.RGBA{R: 0xd6, G: 0x3a, B: 0x3a, A: 0xff}

	for i, strip := range road.RenderStrips(prototypes) {
		pts := make(plotter.XYs, 0, len(strip.Spine)+1)
		for _, pt := range strip.Spine {
			pts = append(pts, plotter.XY{X: pt.X, Y: pt.Y})
		}
		if strip.Closed && len(strip.Spine) > 0 {
			pts = append(pts, plotter.XY{X: strip.Spine[0].X, Y: strip.Spine[0].Y})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("build line for strip %d: %w", i, err)
		}
		line.Width = vg.Points(1)
		if strip.Closed {
			line.Color = intersectionColor
		} else {
			line.Color = laneColor
		}
		p.Add(line)
	}

	if err := p.Save(10*vg.Inch, 10*vg.Inch, path); err != nil {
		return fmt.Errorf("save network plot: %w", err)
	}
	return nil
}
