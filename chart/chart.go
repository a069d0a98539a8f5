// Package chart draws the four transform series of a sweep as a scatter
// plot, phi on the horizontal axis and theta on the vertical one.
package chart

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/meghashyamc/gimbalmirror/logger"
	"github.com/meghashyamc/gimbalmirror/mirror"
	"github.com/meghashyamc/gimbalmirror/sweep"
)

const (
	minMarkerRadius = 1.0
	maxMarkerRadius = 10.0
)

var ErrNoData = errors.New("no finite points to plot")

type Options struct {
	Title string
	// MarkerRadius is in points and clamped to [1, 10].
	MarkerRadius float64
}

type seriesStyle struct {
	color color.Color
	shape draw.GlyphDrawer
	scale float64
}

// Same markers as the original comparison plot.
var styles = map[string]seriesStyle{
	sweep.SeriesViewing:                   {color: color.RGBA{R: 0, G: 128, B: 0, A: 255}, shape: draw.CircleGlyph{}, scale: 0.6},
	sweep.SeriesViewingSimplified:         {color: color.RGBA{R: 255, G: 0, B: 0, A: 255}, shape: draw.CrossGlyph{}, scale: 1},
	sweep.SeriesMirrorRoundTrip:           {color: color.RGBA{R: 0, G: 0, B: 255, A: 255}, shape: draw.RingGlyph{}, scale: 1.2},
	sweep.SeriesMirrorRoundTripSimplified: {color: color.RGBA{R: 255, G: 0, B: 0, A: 255}, shape: draw.CircleGlyph{}, scale: 0.6},
}

type Chart struct {
	plot    *plot.Plot
	points  int
	dropped int
	logger  logger.Logger
}

func New(result *sweep.Result, opts Options, log logger.Logger) (*Chart, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "phi (°)"
	p.Y.Label.Text = "theta (°)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	radius := vg.Points(clampValue(opts.MarkerRadius, minMarkerRadius, maxMarkerRadius))
	c := &Chart{plot: p, logger: log}

	series := result.Series()
	for _, name := range sweep.SeriesOrder {
		xys, dropped := toXYs(series[name])
		c.dropped += dropped
		if len(xys) == 0 {
			continue
		}

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", name, err)
		}
		style := styles[name]
		scatter.GlyphStyle.Color = style.color
		scatter.GlyphStyle.Shape = style.shape
		scatter.GlyphStyle.Radius = radius * vg.Length(style.scale)

		p.Add(scatter)
		p.Legend.Add(name, scatter)
		c.points += len(xys)
	}

	if c.points == 0 {
		return nil, ErrNoData
	}
	if c.dropped > 0 {
		log.Warn("dropped non-finite points from chart", "dropped", c.dropped)
	}
	log.Debug("chart built", "points", c.points)

	return c, nil
}

// gonum/plot refuses NaN and Inf, so those points are left out.
func toXYs(pairs []mirror.AnglePair) (plotter.XYs, int) {
	xys := make(plotter.XYs, 0, len(pairs))
	dropped := 0
	for _, pair := range pairs {
		if !pair.IsFinite() {
			dropped++
			continue
		}
		xys = append(xys, plotter.XY{X: pair.Phi, Y: pair.Theta})
	}
	return xys, dropped
}

// Points is the number of markers drawn; Dropped the number left out.
func (c *Chart) Points() int  { return c.points }
func (c *Chart) Dropped() int { return c.dropped }

func (c *Chart) canvas(widthPx, heightPx, dpi int) *vgimg.Canvas {
	dpi = cmp.Or(dpi, vgimg.DefaultDPI)
	w := vg.Length(widthPx) / vg.Length(dpi) * vg.Inch
	h := vg.Length(heightPx) / vg.Length(dpi) * vg.Inch

	canvas := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	c.plot.Draw(draw.New(canvas))
	return canvas
}

// Image rasterizes the chart.
func (c *Chart) Image(widthPx, heightPx, dpi int) image.Image {
	return c.canvas(widthPx, heightPx, dpi).Image()
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
