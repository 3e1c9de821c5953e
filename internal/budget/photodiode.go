package budget

import (
	"fmt"

	"github.com/rjboer/optolink/internal/radiometry"
)

// PhotodiodeResult holds the uplink receiver budget.
type PhotodiodeResult struct {
	SolidAngle   float64 // sr
	Irradiance   float64 // W/m^2 at the aperture
	Photocurrent float64 // A
	SNRdB        float64 // dB against dark current
}

// Photodiode computes the photodiode receiver budget: the solid angle the
// aperture subtends at the emitter, the irradiance for the actual drive
// current, the resulting photocurrent, and its SNR in dB against the dark
// current.
func Photodiode(p ParameterSet) (PhotodiodeResult, error) {
	if err := p.Validate(); err != nil {
		return PhotodiodeResult{}, err
	}
	if p.Responsivity <= 0 {
		return PhotodiodeResult{}, fmt.Errorf("%s: responsivity must be positive, got %g", p.Name, p.Responsivity)
	}
	if p.DarkCurrent <= 0 {
		return PhotodiodeResult{}, fmt.Errorf("%s: dark current must be positive, got %g", p.Name, p.DarkCurrent)
	}

	omega := radiometry.SolidAngleSquare(p.ApertureSide, p.Distance)
	intensity := p.RadiantIntensity * p.DriveCurrent / p.ReferenceDrive
	area := p.ApertureSide * p.ApertureSide
	irradiance := radiometry.Irradiance(intensity, omega, area)
	power := irradiance * area
	photocurrent := power * p.Responsivity

	return PhotodiodeResult{
		SolidAngle:   omega,
		Irradiance:   irradiance,
		Photocurrent: photocurrent,
		SNRdB:        radiometry.SNRdB(photocurrent, p.DarkCurrent),
	}, nil
}
