package budget

import (
	"errors"
	"fmt"

	"github.com/rjboer/optolink/internal/spectral"
)

// ParameterSet holds the datasheet constants for one link direction. A set is
// assembled once at startup by merging direction-specific values over the
// shared common set and is read-only afterwards.
type ParameterSet struct {
	Name string

	// Emitter.
	RadiantIntensity float64 // W/sr at ReferenceDrive
	ReferenceDrive   float64 // A, drive current the intensity is specified at
	DriveCurrent     float64 // A, actual drive current

	// Geometry.
	Distance     float64 // m, emitter to receiver
	ApertureSide float64 // m, side of the square receiver aperture

	// Photodiode receiver.
	Responsivity float64 // A/W
	DarkCurrent  float64 // A

	// Phototransistor receiver calibration.
	ReferenceCurrent     float64 // A, collector current under the reference condition
	ReferenceIlluminance float64 // lx, standard-light-A illuminance of that condition
	ReferenceIrradiance  float64 // W/m^2, irradiance form of that condition
	CalTemperature       float64 // K, calibration source black-body temperature

	// Spectral curves.
	Source   spectral.Curve // emitter spectrum
	Detector spectral.Curve // receiver spectral response
}

// Merged returns a copy of override in which every zero field inherits the
// value from common. Curves inherit when the override curve is empty.
func Merged(common, override ParameterSet) ParameterSet {
	out := override
	if out.Name == "" {
		out.Name = common.Name
	}
	if out.RadiantIntensity == 0 {
		out.RadiantIntensity = common.RadiantIntensity
	}
	if out.ReferenceDrive == 0 {
		out.ReferenceDrive = common.ReferenceDrive
	}
	if out.DriveCurrent == 0 {
		out.DriveCurrent = common.DriveCurrent
	}
	if out.Distance == 0 {
		out.Distance = common.Distance
	}
	if out.ApertureSide == 0 {
		out.ApertureSide = common.ApertureSide
	}
	if out.Responsivity == 0 {
		out.Responsivity = common.Responsivity
	}
	if out.DarkCurrent == 0 {
		out.DarkCurrent = common.DarkCurrent
	}
	if out.ReferenceCurrent == 0 {
		out.ReferenceCurrent = common.ReferenceCurrent
	}
	if out.ReferenceIlluminance == 0 {
		out.ReferenceIlluminance = common.ReferenceIlluminance
	}
	if out.ReferenceIrradiance == 0 {
		out.ReferenceIrradiance = common.ReferenceIrradiance
	}
	if out.CalTemperature == 0 {
		out.CalTemperature = common.CalTemperature
	}
	if out.Source.Empty() {
		out.Source = common.Source
	}
	if out.Detector.Empty() {
		out.Detector = common.Detector
	}
	return out
}

// Validate checks the fields every calculator depends on. Receiver-specific
// fields are checked by the calculator that needs them.
func (p ParameterSet) Validate() error {
	if p.Distance <= 0 {
		return fmt.Errorf("%s: distance must be positive, got %g", p.Name, p.Distance)
	}
	if p.ApertureSide <= 0 {
		return fmt.Errorf("%s: aperture side must be positive, got %g", p.Name, p.ApertureSide)
	}
	if p.RadiantIntensity <= 0 {
		return fmt.Errorf("%s: radiant intensity must be positive, got %g", p.Name, p.RadiantIntensity)
	}
	if p.ReferenceDrive <= 0 {
		return fmt.Errorf("%s: reference drive current must be positive, got %g", p.Name, p.ReferenceDrive)
	}
	if p.DriveCurrent <= 0 {
		return fmt.Errorf("%s: drive current must be positive, got %g", p.Name, p.DriveCurrent)
	}
	return nil
}

var errNoCurves = errors.New("budget: parameter set is missing spectral curves")

// Common returns the constants shared by both link directions: the geometry of
// the coupling gap between the two halves of the isolator housing.
func Common() ParameterSet {
	return ParameterSet{
		Distance:       10e-3,
		ApertureSide:   10e-3,
		CalTemperature: spectral.IlluminantATemperature,
	}
}

// Uplink returns the parameters of the IR LED to PIN photodiode direction,
// merged over Common.
func Uplink() ParameterSet {
	return Merged(Common(), ParameterSet{
		Name:             "uplink",
		RadiantIntensity: 0.029, // W/sr at 100 mA, SFH 4346 class emitter
		ReferenceDrive:   100e-3,
		DriveCurrent:     100e-3,
		Responsivity:     0.62, // A/W at 950 nm
		DarkCurrent:      2e-9,
		Source:           spectral.LEDInfrared(),
		Detector:         spectral.PhototransistorSi(),
	})
}

// Downlink returns the parameters of the red LED to phototransistor
// direction, merged over Common.
func Downlink() ParameterSet {
	return Merged(Common(), ParameterSet{
		Name:                 "downlink",
		RadiantIntensity:     4e-3, // W/sr at 20 mA
		ReferenceDrive:       20e-3,
		DriveCurrent:         10e-3,
		ReferenceCurrent:     2e-3, // collector current at standard light A, 100 lx
		ReferenceIlluminance: 100,
		ReferenceIrradiance:  10, // 1 mW/cm^2 datasheet rating
		Source:               spectral.LEDRed(),
		Detector:             spectral.PhototransistorSi(),
	})
}
