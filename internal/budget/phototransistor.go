package budget

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/rjboer/optolink/internal/radiometry"
	"github.com/rjboer/optolink/internal/spectral"
)

// Wavelength grids the two estimators integrate over: the photopic grid for
// luminous quantities, the receiver grid spanning the silicon response.
func photopicGrid() []float64 { return spectral.Grid(380, 780, 5) }
func receiverGrid() []float64 { return spectral.Grid(380, 1100, 5) }

// PhotometricResult holds the phototransistor budget estimated from the
// photometric calibration point (collector current at standard light A).
type PhotometricResult struct {
	SolidAngle       float64 // sr
	LuminousEfficacy float64 // lm/W of the emitter spectrum
	Illuminance      float64 // lx at the aperture
	SpectralMatch    float64 // emitter-vs-calibration match factor
	Photocurrent     float64 // A
}

// PhototransistorPhotometric estimates the phototransistor collector current
// by converting the emitter's radiant intensity to an illuminance through the
// V(λ) efficacy integral and scaling the datasheet calibration current by the
// illuminance ratio, corrected for how much better or worse the emitter
// spectrum matches the detector than the 2856 K calibration source does.
func PhototransistorPhotometric(p ParameterSet) (PhotometricResult, error) {
	if err := p.Validate(); err != nil {
		return PhotometricResult{}, err
	}
	if p.ReferenceCurrent <= 0 || p.ReferenceIlluminance <= 0 {
		return PhotometricResult{}, fmt.Errorf("%s: photometric calibration point missing", p.Name)
	}
	if p.Source.Empty() || p.Detector.Empty() {
		return PhotometricResult{}, errNoCurves
	}

	efficacy := spectral.MaxLuminousEfficacy * spectral.Overlap(p.Source, spectral.Photopic(), photopicGrid())

	grid := receiverGrid()
	mLED := spectral.Overlap(p.Source, p.Detector, grid)
	mCal := spectral.Overlap(planckCurve(p.CalTemperature, grid), p.Detector, grid)
	if mCal == 0 {
		return PhotometricResult{}, fmt.Errorf("%s: calibration spectrum does not overlap detector response", p.Name)
	}

	omega := radiometry.SolidAngleSquare(p.ApertureSide, p.Distance)
	intensity := p.RadiantIntensity * p.DriveCurrent / p.ReferenceDrive
	area := p.ApertureSide * p.ApertureSide
	illuminance := radiometry.Irradiance(intensity*efficacy, omega, area)
	match := mLED / mCal

	return PhotometricResult{
		SolidAngle:       omega,
		LuminousEfficacy: efficacy,
		Illuminance:      illuminance,
		SpectralMatch:    match,
		Photocurrent:     p.ReferenceCurrent * illuminance / p.ReferenceIlluminance * match,
	}, nil
}

// BlackBodyResult holds the phototransistor budget estimated from the
// irradiance calibration point via the black-body model.
type BlackBodyResult struct {
	SolidAngle         float64 // sr
	Irradiance         float64 // W/m^2 at the aperture
	BandFraction       float64 // share of the 2856 K exitance the detector sees
	NormalizedResponse float64 // A per W/m^2 of in-band irradiance
	Photocurrent       float64 // A
}

// PhototransistorBlackBody estimates the same collector current without the
// V(λ) table. The 2856 K calibration source is modeled with Planck's law and
// its total exitance σT⁴, yielding the fraction of calibration power the
// detector actually responds to; dividing the calibration current by that
// in-band irradiance gives a normalized response that is then applied to the
// emitter's irradiance and spectrum.
func PhototransistorBlackBody(p ParameterSet) (BlackBodyResult, error) {
	if err := p.Validate(); err != nil {
		return BlackBodyResult{}, err
	}
	if p.ReferenceCurrent <= 0 || p.ReferenceIrradiance <= 0 {
		return BlackBodyResult{}, fmt.Errorf("%s: irradiance calibration point missing", p.Name)
	}
	if p.CalTemperature <= 0 {
		return BlackBodyResult{}, fmt.Errorf("%s: calibration temperature must be positive, got %g", p.Name, p.CalTemperature)
	}
	if p.Source.Empty() || p.Detector.Empty() {
		return BlackBodyResult{}, errNoCurves
	}

	grid := receiverGrid()
	frac := bandFraction(p.Detector, p.CalTemperature, grid)
	if frac == 0 {
		return BlackBodyResult{}, fmt.Errorf("%s: calibration spectrum does not overlap detector response", p.Name)
	}
	response := p.ReferenceCurrent / (p.ReferenceIrradiance * frac)

	omega := radiometry.SolidAngleSquare(p.ApertureSide, p.Distance)
	intensity := p.RadiantIntensity * p.DriveCurrent / p.ReferenceDrive
	area := p.ApertureSide * p.ApertureSide
	irradiance := radiometry.Irradiance(intensity, omega, area)
	fLED := spectral.Overlap(p.Source, p.Detector, grid)

	return BlackBodyResult{
		SolidAngle:         omega,
		Irradiance:         irradiance,
		BandFraction:       frac,
		NormalizedResponse: response,
		Photocurrent:       response * irradiance * fLED,
	}, nil
}

// planckCurve samples the black-body spectral exitance at tempK on the given
// wavelength grid as a relative curve.
func planckCurve(tempK float64, gridNM []float64) spectral.Curve {
	values := make([]float64, len(gridNM))
	for i, nm := range gridNM {
		values[i] = radiometry.PlanckExitance(nm*1e-9, tempK)
	}
	c, err := spectral.NewCurve(gridNM, values)
	if err != nil {
		panic(err)
	}
	return c
}

// bandFraction integrates the detector-weighted black-body exitance over the
// grid and divides by the Stefan-Boltzmann total, giving the share of the
// calibration source's power the detector responds to.
func bandFraction(detector spectral.Curve, tempK float64, gridNM []float64) float64 {
	if len(gridNM) < 2 {
		return 0
	}
	weight := detector.Normalized().Resample(gridNM)
	meters := make([]float64, len(gridNM))
	floats.ScaleTo(meters, 1e-9, gridNM)
	integrand := make([]float64, len(gridNM))
	for i, m := range meters {
		integrand[i] = radiometry.PlanckExitance(m, tempK) * weight[i]
	}
	total := radiometry.TotalExitance(tempK)
	if total == 0 {
		return 0
	}
	return integrate.Trapezoidal(meters, integrand) / total
}
