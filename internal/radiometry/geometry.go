package radiometry

import "math"

// SolidAngleSquare returns the solid angle in steradians subtended by a square
// aperture of the given side length, viewed head-on from dist. Both arguments
// are in meters. The closed form is the pyramid formula
// 4*atan(s^2 / (2d*sqrt(4d^2 + 2s^2))).
// If side or dist is zero or negative, zero is returned.
func SolidAngleSquare(side, dist float64) float64 {
	if side <= 0 || dist <= 0 {
		return 0
	}
	s2 := side * side
	return 4 * math.Atan(s2/(2*dist*math.Sqrt(4*dist*dist+2*s2)))
}

// Irradiance converts a radiant intensity (W/sr) collected over solidAngle
// steradians by an aperture of the given area (m^2) into irradiance in W/m^2.
func Irradiance(intensity, solidAngle, area float64) float64 {
	if area <= 0 {
		return 0
	}
	return intensity * solidAngle / area
}

// SNRdB returns the amplitude signal-to-noise ratio in decibels,
// 20*log10(signal/noise). Non-positive inputs yield -Inf or NaN the same way
// the underlying logarithm does; callers validate before converting.
func SNRdB(signal, noise float64) float64 {
	return 20 * math.Log10(signal/noise)
}

// WattPerM2ToMilliwattPerCm2 rescales an irradiance for display.
func WattPerM2ToMilliwattPerCm2(e float64) float64 {
	return e * 1e3 / 1e4
}
