package spectral

import (
	"math"
	"testing"
)

func TestNewCurveValidation(t *testing.T) {
	tests := []struct {
		name        string
		wavelengths []float64
		values      []float64
	}{
		{name: "length mismatch", wavelengths: []float64{400, 500}, values: []float64{1}},
		{name: "too short", wavelengths: []float64{400}, values: []float64{1}},
		{name: "not increasing", wavelengths: []float64{400, 400, 500}, values: []float64{1, 2, 3}},
		{name: "decreasing", wavelengths: []float64{500, 400}, values: []float64{1, 2}},
	}
	for _, tt := range tests {
		if _, err := NewCurve(tt.wavelengths, tt.values); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}

	if _, err := NewCurve([]float64{400, 500, 600}, []float64{0, 100, 50}); err != nil {
		t.Fatalf("valid curve rejected: %v", err)
	}
}

func TestNormalized(t *testing.T) {
	c, err := NewCurve([]float64{400, 500, 600}, []float64{10, 40, 20})
	if err != nil {
		t.Fatal(err)
	}
	n := c.Normalized()
	if _, peak := n.Peak(); math.Abs(peak-1) > 1e-15 {
		t.Fatalf("normalized peak = %g, want 1", peak)
	}
	// Original must be untouched.
	if _, peak := c.Peak(); peak != 40 {
		t.Fatalf("original curve mutated, peak = %g", peak)
	}
}

func TestResample(t *testing.T) {
	c, err := NewCurve([]float64{400, 500, 600}, []float64{0, 100, 0})
	if err != nil {
		t.Fatal(err)
	}
	got := c.Resample([]float64{350, 400, 450, 500, 600, 700})
	expected := []float64{0, 0, 50, 100, 0, 0}
	for i := range expected {
		if math.Abs(got[i]-expected[i]) > 1e-12 {
			t.Fatalf("resample[%d] = %g, want %g", i, got[i], expected[i])
		}
	}
}

func TestGrid(t *testing.T) {
	g := Grid(380, 780, 10)
	if len(g) != 41 {
		t.Fatalf("grid length %d, want 41", len(g))
	}
	if g[0] != 380 || g[len(g)-1] != 780 {
		t.Fatalf("grid endpoints %g..%g", g[0], g[len(g)-1])
	}
	if Grid(500, 400, 10) != nil || Grid(400, 500, 0) != nil {
		t.Fatal("degenerate grids should be nil")
	}
}

func TestOverlapAmplitudeInvariance(t *testing.T) {
	a, _ := NewCurve([]float64{400, 500, 600, 700}, []float64{5, 80, 100, 10})
	b, _ := NewCurve([]float64{400, 550, 700}, []float64{20, 100, 30})
	grid := Grid(380, 720, 5)

	base := Overlap(a, b, grid)
	if base <= 0 || base > 1 {
		t.Fatalf("overlap out of range: %g", base)
	}

	scale := func(c Curve, k float64) Curve {
		w := append([]float64(nil), c.wavelengths...)
		v := make([]float64, len(c.values))
		for i, x := range c.values {
			v[i] = k * x
		}
		out, err := NewCurve(w, v)
		if err != nil {
			t.Fatal(err)
		}
		return out
	}

	if got := Overlap(scale(a, 7.3), b, grid); math.Abs(got-base) > 1e-12 {
		t.Fatalf("overlap changed when scaling a: %g vs %g", got, base)
	}
	if got := Overlap(a, scale(b, 0.013), grid); math.Abs(got-base) > 1e-12 {
		t.Fatalf("overlap changed when scaling b: %g vs %g", got, base)
	}
}

func TestBuiltinTables(t *testing.T) {
	curves := map[string]Curve{
		"photopic":        Photopic(),
		"red LED":         LEDRed(),
		"IR LED":          LEDInfrared(),
		"phototransistor": PhototransistorSi(),
	}
	for name, c := range curves {
		if c.Empty() {
			t.Fatalf("%s table is empty", name)
		}
		if _, peak := c.Peak(); peak < 99 || peak > 101 {
			t.Fatalf("%s table peak %g, datasheet curves are in percent", name, peak)
		}
	}

	// V(lambda) peaks at 555 nm; on the 10 nm grid that lands on 560.
	nm, _ := Photopic().Peak()
	if nm < 540 || nm > 570 {
		t.Fatalf("photopic peak at %g nm, want near 555", nm)
	}
}
