package spectral

// MaxLuminousEfficacy is the peak spectral luminous efficacy for photopic
// vision, in lm/W at 555 nm.
const MaxLuminousEfficacy = 683.0

// IlluminantATemperature is the black-body temperature in kelvin of CIE
// standard illuminant A, the calibration source phototransistor datasheets
// rate their collector current against.
const IlluminantATemperature = 2856.0

// Photopic returns the CIE 1931 photopic luminous efficiency function V(λ),
// sampled every 10 nm from 380 to 780 nm, in percent of the 555 nm peak.
func Photopic() Curve {
	return mustCurve(
		Grid(380, 780, 10),
		[]float64{
			0.0039, 0.0120, 0.0396, 0.1210, 0.4000,
			1.1600, 2.3000, 3.8000, 6.0000, 9.0980,
			13.902, 20.802, 32.300, 50.300, 71.000,
			86.200, 95.400, 99.495, 99.500, 95.200,
			87.000, 75.700, 63.100, 50.300, 38.100,
			26.500, 17.500, 10.700, 6.1000, 3.2000,
			1.7000, 0.8210, 0.4100, 0.2090, 0.1050,
			0.0520, 0.0250, 0.0120, 0.0060, 0.0030,
			0.0015,
		})
}

// LEDRed returns the relative emission spectrum of the downlink red LED
// (GaAlAs, 633 nm peak), digitized from the datasheet curve in percent.
func LEDRed() Curve {
	return mustCurve(
		[]float64{580, 590, 600, 610, 615, 620, 625, 630, 633, 636, 640, 645, 650, 660, 670, 680, 700},
		[]float64{0.5, 2, 6, 18, 32, 55, 80, 97, 100, 97, 85, 62, 40, 15, 5, 1.5, 0.2})
}

// PhototransistorSi returns the relative spectral response of the silicon
// phototransistor on the receiving side, digitized from the datasheet curve
// in percent (peak near 860 nm).
func PhototransistorSi() Curve {
	return mustCurve(
		[]float64{420, 450, 500, 550, 600, 650, 700, 750, 800, 830, 860, 890, 920, 950, 980, 1010, 1040, 1070, 1100},
		[]float64{5, 12, 28, 44, 58, 70, 81, 90, 97, 99.5, 100, 98, 92, 80, 60, 38, 18, 6, 1})
}

// LEDInfrared returns the relative emission spectrum of the uplink IR LED
// (950 nm peak), digitized from the datasheet curve in percent.
func LEDInfrared() Curve {
	return mustCurve(
		[]float64{870, 890, 905, 920, 930, 940, 945, 950, 955, 960, 970, 980, 995, 1010, 1030},
		[]float64{1, 4, 12, 35, 62, 88, 97, 100, 97, 88, 60, 32, 10, 3, 0.5})
}
