// derived_test.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import (
	"testing"

	"github.com/mmp/atmos/units"
)

func TestMachVelocityRoundTrip(t *testing.T) {
	m := Standard()
	mach, err := m.Mach(14000, 743.011549709834, units.Feet, units.FeetPerSecond)
	if err != nil {
		t.Fatal(err)
	}
	if relErr(mach, 0.7006090241039048) > 1e-12 {
		t.Errorf("Mach(14000 ft, 743.01 ft/s) = %v", mach)
	}

	for _, alt := range []float64{0, 15000, 35000, 55000} {
		for _, mach := range []float64{0.3, 0.8, 1.2, 2.4} {
			v, err := m.Velocity(alt, mach, units.Feet, units.FeetPerSecond)
			if err != nil {
				t.Fatal(err)
			}
			back, err := m.Mach(alt, v, units.Feet, units.FeetPerSecond)
			if err != nil {
				t.Fatal(err)
			}
			if relErr(back, mach) > 1e-12 {
				t.Errorf("Mach(Velocity(%v, %v)) = %v", alt, mach, back)
			}
		}
	}
}

func TestVelocity(t *testing.T) {
	m := Standard()
	v, err := m.Velocity(55000, 2.4, units.Feet, units.FeetPerSecond)
	if err != nil {
		t.Fatal(err)
	}
	if relErr(v, 2323.0551663944616) > 1e-12 {
		t.Errorf("Velocity(55000 ft, M=2.4) = %v ft/s", v)
	}
	kts, err := m.Velocity(55000, 2.4, units.Feet, units.Knots)
	if err != nil {
		t.Fatal(err)
	}
	if relErr(kts, 1376.372439074577) > 1e-12 {
		t.Errorf("Velocity(55000 ft, M=2.4) = %v kts", kts)
	}
}

func TestDynamicPressure(t *testing.T) {
	m := Standard()
	for _, tc := range []struct {
		alt, mach     float64
		pressureUnits units.PressureUnit
		want          float64
	}{
		{0, 0.8, units.PSF, 948.0686862047477},
		{0, 0.8, units.KPa, 45.39369176329735},
		{15000, 0.8, units.PSF, 535.948640308331},
	} {
		got, err := m.DynamicPressure(tc.alt, tc.mach, units.Feet, tc.pressureUnits)
		if err != nil {
			t.Fatal(err)
		}
		if relErr(got, tc.want) > 1e-12 {
			t.Errorf("DynamicPressure(%v ft, M=%v) = %v %s, want %v",
				tc.alt, tc.mach, got, tc.pressureUnits, tc.want)
		}
	}
}

func TestEquivalentAirspeed(t *testing.T) {
	m := Standard()
	for _, tc := range []struct {
		alt, mach     float64
		velocityUnits units.VelocityUnit
		want          float64
	}{
		{0, 1, units.FeetPerSecond, 1115.5461442719436},
		{0, 1, units.MetersPerSecond, 340.01846477408844},
		{10000, 1, units.FeetPerSecond, 925.6146206271154},
	} {
		got, err := m.EquivalentAirspeed(tc.alt, tc.mach, units.Feet, tc.velocityUnits)
		if err != nil {
			t.Fatal(err)
		}
		if relErr(got, tc.want) > 1e-12 {
			t.Errorf("EquivalentAirspeed(%v ft, M=%v) = %v %s, want %v",
				tc.alt, tc.mach, got, tc.velocityUnits, tc.want)
		}
	}

	// At sea level EAS equals true airspeed.
	eas, _ := m.EquivalentAirspeed(0, 0.8, units.Feet, units.FeetPerSecond)
	tas, _ := m.Velocity(0, 0.8, units.Feet, units.FeetPerSecond)
	if relErr(eas, tas) > 1e-12 {
		t.Errorf("sea-level EAS %v != TAS %v", eas, tas)
	}
}

func TestUnitReynoldsNumber(t *testing.T) {
	m := Standard()
	for _, tc := range []struct {
		reynoldsUnits units.ReynoldsUnit
		want          float64
	}{
		{units.PerFoot, 2244901.2486990727},
		{units.PerInch, 187075.10405825605},
		{units.PerMeter, 7365161.577096695},
	} {
		got, err := m.UnitReynoldsNumber(55000, 2.4, units.Feet, tc.reynoldsUnits)
		if err != nil {
			t.Fatal(err)
		}
		if relErr(got, tc.want) > 1e-12 {
			t.Errorf("UnitReynoldsNumber(55000 ft, M=2.4) = %v %s, want %v",
				got, tc.reynoldsUnits, tc.want)
		}
	}
}

func TestReynoldsFormulationsAgree(t *testing.T) {
	m := Standard()
	for _, alt := range []float64{0, 10000, 30000, 55000, 80000} {
		for _, mach := range []float64{0.5, 1.0, 2.4} {
			re1, err := m.UnitReynoldsNumber(alt, mach, units.Feet, units.PerFoot)
			if err != nil {
				t.Fatal(err)
			}
			re2, err := m.UnitReynoldsNumber2(alt, mach, units.Feet, units.PerFoot)
			if err != nil {
				t.Fatal(err)
			}
			if relErr(re1, re2) > 1e-12 {
				t.Errorf("Reynolds formulations disagree at %v ft, M=%v: %v vs %v",
					alt, mach, re1, re2)
			}
		}
	}
}
