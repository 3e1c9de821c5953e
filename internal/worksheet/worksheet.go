package worksheet

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/rjboer/optolink/internal/budget"
	"github.com/rjboer/optolink/internal/logging"
	"github.com/rjboer/optolink/internal/radiometry"
	"github.com/rjboer/optolink/internal/report"
	"github.com/rjboer/optolink/internal/spectral"
)

// Options captures the few knobs the worksheet exposes.
type Options struct {
	Distance float64 // m; when > 0 overrides the link distance in both directions
	Logger   logging.Logger
}

// Run evaluates the full link budget, both directions and both
// phototransistor estimators, and returns the worksheet sections in print
// order.
func Run(opts Options) ([]report.Section, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}

	up := override(budget.Uplink(), opts)
	down := override(budget.Downlink(), opts)

	pd, err := budget.Photodiode(up)
	if err != nil {
		return nil, fmt.Errorf("worksheet: %w", err)
	}
	log.Debug("photodiode budget",
		logging.Field{Key: "direction", Value: up.Name},
		logging.Field{Key: "solid_angle_sr", Value: pd.SolidAngle},
		logging.Field{Key: "snr_db", Value: pd.SNRdB})

	ph, err := budget.PhototransistorPhotometric(down)
	if err != nil {
		return nil, fmt.Errorf("worksheet: %w", err)
	}
	bb, err := budget.PhototransistorBlackBody(down)
	if err != nil {
		return nil, fmt.Errorf("worksheet: %w", err)
	}
	log.Debug("phototransistor budget",
		logging.Field{Key: "direction", Value: down.Name},
		logging.Field{Key: "photometric_a", Value: ph.Photocurrent},
		logging.Field{Key: "blackbody_a", Value: bb.Photocurrent})

	return []report.Section{
		{
			Title: "Uplink: IR LED -> PIN photodiode",
			Values: []report.Value{
				{Name: "solid angle", Value: pd.SolidAngle, Unit: "sr"},
				{Name: "irradiance", Value: radiometry.WattPerM2ToMilliwattPerCm2(pd.Irradiance), Unit: "mW/cm^2"},
				{Name: "photocurrent", Value: pd.Photocurrent * 1e3, Unit: "mA"},
				{Name: "SNR vs dark current", Value: pd.SNRdB, Unit: "dB"},
			},
		},
		{
			Title: "Downlink: red LED -> phototransistor (photometric)",
			Values: []report.Value{
				{Name: "solid angle", Value: ph.SolidAngle, Unit: "sr"},
				{Name: "luminous efficacy", Value: ph.LuminousEfficacy, Unit: "lm/W"},
				{Name: "illuminance", Value: ph.Illuminance, Unit: "lx"},
				{Name: "spectral match", Value: ph.SpectralMatch, Unit: ""},
				{Name: "collector current", Value: ph.Photocurrent * 1e3, Unit: "mA"},
			},
		},
		{
			Title: "Downlink: red LED -> phototransistor (black body)",
			Values: []report.Value{
				{Name: "irradiance", Value: radiometry.WattPerM2ToMilliwattPerCm2(bb.Irradiance), Unit: "mW/cm^2"},
				{Name: "band fraction", Value: bb.BandFraction, Unit: ""},
				{Name: "normalized response", Value: bb.NormalizedResponse * 1e6, Unit: "uA/(W/m^2)"},
				{Name: "collector current", Value: bb.Photocurrent * 1e3, Unit: "mA"},
			},
		},
	}, nil
}

func override(p budget.ParameterSet, opts Options) budget.ParameterSet {
	if opts.Distance > 0 {
		p.Distance = opts.Distance
	}
	return p
}

// SpectraTraces returns the normalized curves of the worksheet plot: the two
// emitter spectra, the detector response, V(λ), and the 2856 K calibration
// spectrum, all sampled on the receiver grid.
func SpectraTraces() []report.Trace {
	grid := spectral.Grid(380, 1100, 5)
	traces := []report.Trace{
		{Name: "IR LED", Wavelength: grid, Value: spectral.LEDInfrared().Normalized().Resample(grid)},
		{Name: "red LED", Wavelength: grid, Value: spectral.LEDRed().Normalized().Resample(grid)},
		{Name: "Si phototransistor", Wavelength: grid, Value: spectral.PhototransistorSi().Normalized().Resample(grid)},
		{Name: "V(lambda)", Wavelength: grid, Value: spectral.Photopic().Normalized().Resample(grid)},
	}

	planck := make([]float64, len(grid))
	for i, nm := range grid {
		planck[i] = radiometry.PlanckExitance(nm*1e-9, spectral.IlluminantATemperature)
	}
	if max := floats.Max(planck); max > 0 {
		floats.Scale(1/max, planck)
	}
	traces = append(traces, report.Trace{Name: "2856 K black body", Wavelength: grid, Value: planck})
	return traces
}
