package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Trace is one labeled curve on the spectra plot.
type Trace struct {
	Name       string
	Wavelength []float64 // nm
	Value      []float64 // relative, 0..1
}

// RenderSpectra writes a PNG of the given spectral traces over wavelength,
// the inline plot of the original worksheet.
func RenderSpectra(path string, traces ...Trace) error {
	p := plot.New()
	p.Title.Text = "Spectral curves"
	p.X.Label.Text = "wavelength [nm]"
	p.Y.Label.Text = "relative response"
	p.Add(plotter.NewGrid())

	args := make([]interface{}, 0, 2*len(traces))
	for _, t := range traces {
		if len(t.Wavelength) != len(t.Value) {
			return fmt.Errorf("report: trace %q has %d wavelengths vs %d values",
				t.Name, len(t.Wavelength), len(t.Value))
		}
		xys := make(plotter.XYs, len(t.Wavelength))
		for i := range t.Wavelength {
			xys[i].X = t.Wavelength[i]
			xys[i].Y = t.Value[i]
		}
		args = append(args, t.Name, xys)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return fmt.Errorf("report: add traces: %w", err)
	}
	if err := p.Save(24*vg.Centimeter, 14*vg.Centimeter, path); err != nil {
		return fmt.Errorf("report: save plot: %w", err)
	}
	return nil
}
