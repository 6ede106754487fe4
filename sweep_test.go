// sweep_test.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import (
	"errors"
	"testing"

	"github.com/mmp/atmos/units"
)

func TestAltSweep(t *testing.T) {
	m := Standard()
	alts := []float64{0, 10000, 20000, 30000, 40000, 50000}
	s, err := m.AltSweep(0.8, alts, SweepOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != len(alts) {
		t.Fatalf("got %d points for %d altitudes", s.Len(), len(alts))
	}
	for i, alt := range alts {
		if s.Alt[i] != alt {
			t.Errorf("point %d: alt %v, want %v", i, s.Alt[i], alt)
		}
		if s.Mach[i] != 0.8 {
			t.Errorf("point %d: mach %v, want 0.8", i, s.Mach[i])
		}
		rho, _ := m.Density(alt, units.Feet, units.SlugFt3)
		if s.Density[i] != rho {
			t.Errorf("point %d: density %v, want %v", i, s.Density[i], rho)
		}
		vel, _ := m.Velocity(alt, 0.8, units.Feet, units.FeetPerSecond)
		if relErr(s.Velocity[i], vel) > 1e-12 {
			t.Errorf("point %d: velocity %v, want %v", i, s.Velocity[i], vel)
		}
		eas, _ := m.EquivalentAirspeed(alt, 0.8, units.Feet, units.Knots)
		if relErr(s.EAS[i], eas) > 1e-12 {
			t.Errorf("point %d: eas %v, want %v", i, s.EAS[i], eas)
		}
	}
}

func TestAltSweepEASLimit(t *testing.T) {
	m := Standard()
	alts := []float64{0, 10000, 20000, 30000, 40000, 50000}
	const limit = 450 // kts; EAS at M=0.8 falls below this above 10000 ft

	s, err := m.AltSweep(0.8, alts, SweepOptions{EASLimit: limit})
	if err != nil {
		t.Fatal(err)
	}
	var want []float64
	for _, alt := range alts {
		eas, _ := m.EquivalentAirspeed(alt, 0.8, units.Feet, units.Knots)
		if eas <= limit {
			want = append(want, alt)
		}
	}
	if len(want) == 0 || len(want) == len(alts) {
		t.Fatalf("limit %v does not split the sweep; remaining alts %v", limit, want)
	}
	if s.Len() != len(want) {
		t.Fatalf("got %d points, want %d", s.Len(), len(want))
	}
	for i, alt := range want {
		if s.Alt[i] != alt {
			t.Errorf("point %d: alt %v, want %v", i, s.Alt[i], alt)
		}
		if s.EAS[i] > limit {
			t.Errorf("point %d: eas %v exceeds limit %v", i, s.EAS[i], limit)
		}
	}
}

func TestAltSweepAllFiltered(t *testing.T) {
	m := Standard()
	_, err := m.AltSweep(0.8, []float64{0, 10000}, SweepOptions{EASLimit: 1})
	if !errors.Is(err, ErrEmptySweep) {
		t.Errorf("got %v, want ErrEmptySweep", err)
	}
}

func TestMachSweep(t *testing.T) {
	m := Standard()
	machs := []float64{0.5, 0.8, 1.2, 2.0}
	s, err := m.MachSweep(35000, machs, SweepOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != len(machs) {
		t.Fatalf("got %d points for %d machs", s.Len(), len(machs))
	}
	a, _ := m.SpeedOfSound(35000, units.Feet, units.FeetPerSecond)
	for i, mach := range machs {
		if s.Alt[i] != 35000 {
			t.Errorf("point %d: alt %v, want 35000", i, s.Alt[i])
		}
		if s.Mach[i] != mach {
			t.Errorf("point %d: mach %v, want %v", i, s.Mach[i], mach)
		}
		if relErr(s.Velocity[i], mach*a) > 1e-12 {
			t.Errorf("point %d: velocity %v, want %v", i, s.Velocity[i], mach*a)
		}
	}
}

func TestEASSweep(t *testing.T) {
	m := Standard()
	eass := []float64{200, 300, 400, 500}
	s, err := m.EASSweep(20000, eass, SweepOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != len(eass) {
		t.Fatalf("got %d points for %d speeds", s.Len(), len(eass))
	}
	for i, eas := range eass {
		// The solved Mach number must reproduce the requested EAS.
		if relErr(s.EAS[i], eas) > 1e-12 {
			t.Errorf("point %d: eas %v, want %v", i, s.EAS[i], eas)
		}
		back, _ := m.EquivalentAirspeed(20000, s.Mach[i], units.Feet, units.Knots)
		if relErr(back, eas) > 1e-12 {
			t.Errorf("point %d: mach %v gives eas %v, want %v", i, s.Mach[i], back, eas)
		}
	}
}

func TestSweepUnknownUnits(t *testing.T) {
	m := Standard()
	_, err := m.AltSweep(0.8, []float64{0}, SweepOptions{AltUnits: "km"})
	if !errors.Is(err, units.ErrUnknownUnit) {
		t.Errorf("got %v, want ErrUnknownUnit", err)
	}
}
