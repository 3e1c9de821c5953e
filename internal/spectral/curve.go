package spectral

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"
)

// Curve is a sampled spectral curve: wavelengths in nanometers with a relative
// value at each sample (datasheet curves are given in percent of peak, but any
// non-negative scale works since consumers normalize). Curves are immutable
// after construction.
type Curve struct {
	wavelengths []float64
	values      []float64
}

// NewCurve validates and wraps the two parallel slices. Wavelengths must be
// strictly increasing and at least two samples long.
func NewCurve(wavelengthsNM, values []float64) (Curve, error) {
	if len(wavelengthsNM) != len(values) {
		return Curve{}, fmt.Errorf("spectral: %d wavelengths vs %d values", len(wavelengthsNM), len(values))
	}
	if len(wavelengthsNM) < 2 {
		return Curve{}, errors.New("spectral: curve needs at least two samples")
	}
	for i := 1; i < len(wavelengthsNM); i++ {
		if wavelengthsNM[i] <= wavelengthsNM[i-1] {
			return Curve{}, fmt.Errorf("spectral: wavelengths not increasing at index %d", i)
		}
	}
	w := append([]float64(nil), wavelengthsNM...)
	v := append([]float64(nil), values...)
	return Curve{wavelengths: w, values: v}, nil
}

// mustCurve is for the built-in datasheet tables, which are known good.
func mustCurve(wavelengthsNM, values []float64) Curve {
	c, err := NewCurve(wavelengthsNM, values)
	if err != nil {
		panic(err)
	}
	return c
}

// Empty reports whether the curve holds no samples (the zero value).
func (c Curve) Empty() bool { return len(c.wavelengths) == 0 }

// Support returns the first and last sampled wavelength in nm.
func (c Curve) Support() (lo, hi float64) {
	if c.Empty() {
		return 0, 0
	}
	return c.wavelengths[0], c.wavelengths[len(c.wavelengths)-1]
}

// Peak returns the wavelength (nm) and value of the largest sample.
func (c Curve) Peak() (nm, value float64) {
	if c.Empty() {
		return 0, 0
	}
	idx := floats.MaxIdx(c.values)
	return c.wavelengths[idx], c.values[idx]
}

// Normalized returns a copy of the curve scaled so its peak value is 1.
// A curve whose peak is zero is returned unchanged.
func (c Curve) Normalized() Curve {
	if c.Empty() {
		return c
	}
	_, peak := c.Peak()
	if peak == 0 {
		return c
	}
	v := append([]float64(nil), c.values...)
	floats.Scale(1/peak, v)
	return Curve{wavelengths: c.wavelengths, values: v}
}

// Resample evaluates the curve on the given wavelength grid (nm) by
// piecewise-linear interpolation. Grid points outside the curve's support
// evaluate to zero.
func (c Curve) Resample(gridNM []float64) []float64 {
	out := make([]float64, len(gridNM))
	if c.Empty() {
		return out
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(c.wavelengths, c.values); err != nil {
		// Fit only fails on the invariants NewCurve enforces.
		panic(err)
	}
	lo, hi := c.Support()
	for i, nm := range gridNM {
		if nm < lo || nm > hi {
			continue
		}
		out[i] = pl.Predict(nm)
	}
	return out
}

// Grid returns an evenly spaced wavelength grid starting at loNM with the
// given step, ending at the last point not exceeding hiNM. A non-positive
// step or a span shorter than one step yields nil.
func Grid(loNM, hiNM, stepNM float64) []float64 {
	if stepNM <= 0 || hiNM < loNM {
		return nil
	}
	n := int((hiNM-loNM)/stepNM) + 1
	if n < 2 {
		return nil
	}
	return floats.Span(make([]float64, n), loNM, loNM+float64(n-1)*stepNM)
}

// Overlap computes the shape overlap of curve a against weight curve b on the
// given grid:
//
//	∫ a(λ)·b(λ) dλ / ∫ a(λ) dλ
//
// Because a appears in both integrals and b only as a weight, the result is
// invariant to amplitude scaling of either curve and depends on shape alone.
// It returns zero when the denominator vanishes.
func Overlap(a, b Curve, gridNM []float64) float64 {
	if len(gridNM) < 2 {
		return 0
	}
	av := a.Normalized().Resample(gridNM)
	bv := b.Normalized().Resample(gridNM)
	prod := make([]float64, len(gridNM))
	floats.MulTo(prod, av, bv)
	den := integrate.Trapezoidal(gridNM, av)
	if den == 0 {
		return 0
	}
	return integrate.Trapezoidal(gridNM, prod) / den
}
