package radiometry

import "math"

// Physical constants (CODATA 2018).
const (
	planckH         = 6.62607015e-34 // J*s
	speedOfLight    = 2.99792458e8   // m/s
	boltzmannK      = 1.380649e-23   // J/K
	stefanBoltzmann = 5.670374419e-8 // W/(m^2*K^4)
)

// PlanckExitance returns the spectral radiant exitance of a black body at
// temperature tempK, per unit wavelength, evaluated at wavelengthM meters.
// The result is in W/m^3 (W per m^2 of surface per m of wavelength).
// Zero or negative arguments return zero.
func PlanckExitance(wavelengthM, tempK float64) float64 {
	if wavelengthM <= 0 || tempK <= 0 {
		return 0
	}
	c1 := 2 * math.Pi * planckH * speedOfLight * speedOfLight
	c2 := planckH * speedOfLight / boltzmannK
	l5 := math.Pow(wavelengthM, 5)
	return c1 / l5 / math.Expm1(c2/(wavelengthM*tempK))
}

// TotalExitance returns sigma*T^4, the black-body radiant exitance integrated
// over all wavelengths (Stefan-Boltzmann law), in W/m^2.
func TotalExitance(tempK float64) float64 {
	if tempK <= 0 {
		return 0
	}
	t2 := tempK * tempK
	return stefanBoltzmann * t2 * t2
}

// WienPeak returns the wavelength in meters at which PlanckExitance is
// maximal for the given temperature.
func WienPeak(tempK float64) float64 {
	if tempK <= 0 {
		return 0
	}
	const b = 2.897771955e-3 // m*K
	return b / tempK
}
