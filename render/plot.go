package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/soypat/scissor"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PlotConfig configures PlotSweep. The zero value is not usable,
// start from DefaultPlotConfig.
type PlotConfig struct {
	Width, Height vg.Length
	DPI           int
	Length        scissor.LengthUnit
	Force         scissor.ForceUnit
}

// DefaultPlotConfig returns an 8x8 inch, 96 DPI metric plot configuration.
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{
		Width:  8 * vg.Inch,
		Height: 8 * vg.Inch,
		DPI:    96,
	}
}

// PlotSweep writes a PNG with two stacked line plots of a sweep: total rise
// H and per-actuator force against drive angle. Samples with non-finite force
// are left out of the force curve.
func PlotSweep(w io.Writer, samples []scissor.Sample, cfg PlotConfig) error {
	if len(samples) < 2 {
		return errors.New("need at least two sweep samples to plot")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.DPI <= 0 {
		return errors.New("plot size and DPI must be positive")
	}
	rise := make(plotter.XYs, 0, len(samples))
	force := make(plotter.XYs, 0, len(samples))
	for _, s := range samples {
		if h := cfg.Length.FromMeters(s.H); scissor.IsFinite(h) {
			rise = append(rise, plotter.XY{X: s.ThetaDeg, Y: h})
		}
		if f := cfg.Force.FromNewtons(s.Force.PerActuator); scissor.IsFinite(f) {
			force = append(force, plotter.XY{X: s.ThetaDeg, Y: f})
		}
	}

	hp := plot.New()
	hp.Title.Text = "Platform height"
	hp.X.Label.Text = "θ (deg)"
	hp.Y.Label.Text = fmt.Sprintf("H (%s)", cfg.Length.Label())
	fp := plot.New()
	fp.Title.Text = "Actuator force"
	fp.X.Label.Text = "θ (deg)"
	fp.Y.Label.Text = fmt.Sprintf("F per actuator (%s)", cfg.Force.Label())
	for _, p := range []*plot.Plot{hp, fp} {
		stylePlot(p)
	}
	if err := addLine(hp, rise, color.RGBA{R: 0x7a, G: 0xa2, B: 0xf7, A: 0xff}); err != nil {
		return err
	}
	if err := addLine(fp, force, color.RGBA{R: 0xff, G: 0x9e, B: 0x64, A: 0xff}); err != nil {
		return err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(cfg.Width, cfg.Height),
		vgimg.UseDPI(cfg.DPI),
	)
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Points(10)}
	canvases := plot.Align([][]*plot.Plot{{hp}, {fp}}, tiles, draw.New(c))
	hp.Draw(canvases[0][0])
	fp.Draw(canvases[1][0])
	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(w); err != nil {
		return fmt.Errorf("writing plot png: %w", err)
	}
	return nil
}

func addLine(p *plot.Plot, xys plotter.XYs, c color.Color) error {
	if len(xys) == 0 {
		return nil
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	p.Add(line, plotter.NewGrid())
	return nil
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(6)
	p.X.Label.TextStyle.Font.Size = vg.Points(11)
	p.Y.Label.TextStyle.Font.Size = vg.Points(11)
	p.X.Padding = vg.Points(6)
	p.Y.Padding = vg.Points(6)
}
