package budget

import (
	"math"
	"testing"

	"github.com/rjboer/optolink/internal/radiometry"
)

func TestPhotodiodeWorkedExample(t *testing.T) {
	// d=10mm, s=10mm, Ie=0.029 W/sr, drive ratio 1: the notebook example.
	res, err := Photodiode(Uplink())
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.SolidAngle-0.8054317) > 1e-6 {
		t.Fatalf("solid angle %.7f, want 0.8054317", res.SolidAngle)
	}
	if math.Abs(res.Irradiance-233.575) > 0.01 {
		t.Fatalf("irradiance %.4f W/m^2, want 233.575", res.Irradiance)
	}
	// Photocurrent = received power * responsivity.
	wantCurrent := 0.029 * res.SolidAngle * 0.62
	if math.Abs(res.Photocurrent-wantCurrent) > 1e-9 {
		t.Fatalf("photocurrent %.6g, want %.6g", res.Photocurrent, wantCurrent)
	}
	wantSNR := radiometry.SNRdB(wantCurrent, 2e-9)
	if math.Abs(res.SNRdB-wantSNR) > 1e-9 {
		t.Fatalf("SNR %.4f dB, want %.4f", res.SNRdB, wantSNR)
	}
}

func TestPhotodiodeLinearity(t *testing.T) {
	base, err := Photodiode(Uplink())
	if err != nil {
		t.Fatal(err)
	}

	doubledDrive := Uplink()
	doubledDrive.DriveCurrent *= 2
	res, err := Photodiode(doubledDrive)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Photocurrent-2*base.Photocurrent) > 1e-12 {
		t.Fatalf("photocurrent not linear in drive current: %g vs 2*%g", res.Photocurrent, base.Photocurrent)
	}

	doubledResp := Uplink()
	doubledResp.Responsivity *= 2
	res, err = Photodiode(doubledResp)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Photocurrent-2*base.Photocurrent) > 1e-12 {
		t.Fatalf("photocurrent not linear in responsivity: %g vs 2*%g", res.Photocurrent, base.Photocurrent)
	}
}

func TestPhotodiodeRejectsDegenerateInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ParameterSet)
	}{
		{name: "zero dark current", mutate: func(p *ParameterSet) { p.DarkCurrent = 0 }},
		{name: "zero responsivity", mutate: func(p *ParameterSet) { p.Responsivity = 0 }},
		{name: "zero distance", mutate: func(p *ParameterSet) { p.Distance = 0 }},
	}
	for _, tt := range tests {
		p := Uplink()
		tt.mutate(&p)
		if _, err := Photodiode(p); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}
