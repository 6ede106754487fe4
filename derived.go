// derived.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import (
	"math"

	"github.com/mmp/atmos/units"
)

// Mach returns the Mach number for a true airspeed at the given altitude.
func (m Model) Mach(alt float64, velocity float64, altUnits units.AltitudeUnit, velocityUnits units.VelocityUnit) (float64, error) {
	z, err := units.ConvertAltitude(alt, altUnits, units.Feet)
	if err != nil {
		return 0, err
	}
	v, err := units.ConvertVelocity(velocity, velocityUnits, units.FeetPerSecond)
	if err != nil {
		return 0, err
	}
	return v / m.speedOfSoundAt(z), nil
}

// Velocity returns the true airspeed corresponding to a Mach number at
// the given altitude.
func (m Model) Velocity(alt float64, mach float64, altUnits units.AltitudeUnit, velocityUnits units.VelocityUnit) (float64, error) {
	z, err := units.ConvertAltitude(alt, altUnits, units.Feet)
	if err != nil {
		return 0, err
	}
	return units.ConvertVelocity(mach*m.speedOfSoundAt(z), units.FeetPerSecond, velocityUnits)
}

// DynamicPressure returns q = gamma/2 P M^2 at the given altitude and
// Mach number. This compressible form avoids evaluating density and the
// speed of sound separately.
func (m Model) DynamicPressure(alt float64, mach float64, altUnits units.AltitudeUnit, pressureUnits units.PressureUnit) (float64, error) {
	z, err := units.ConvertAltitude(alt, altUnits, units.Feet)
	if err != nil {
		return 0, err
	}
	q := 0.5 * m.Gamma * pressureAt(z) * mach * mach
	return units.ConvertPressure(q, units.PSF, pressureUnits)
}

// EquivalentAirspeed returns the sea-level equivalent airspeed for a
// Mach number flown at the given altitude: the speed at sea-level density
// that yields the same dynamic pressure.
func (m Model) EquivalentAirspeed(alt float64, mach float64, altUnits units.AltitudeUnit, velocityUnits units.VelocityUnit) (float64, error) {
	z, err := units.ConvertAltitude(alt, altUnits, units.Feet)
	if err != nil {
		return 0, err
	}
	eas := m.easCoefficient(mach) * math.Sqrt(pressureAt(z))
	return units.ConvertVelocity(eas, units.FeetPerSecond, velocityUnits)
}

// easCoefficient folds the altitude-independent part of the EAS
// expression: eas = sqrt(rho V^2 / rho0) = M sqrt(gamma R T0 / P0) sqrt(P).
func (m Model) easCoefficient(mach float64) float64 {
	return math.Sqrt(m.Gamma*m.GasConstant*seaLevelTemperature/seaLevelPressure) * mach
}

// UnitReynoldsNumber returns the Reynolds number per unit length,
// rho V / mu, at the given altitude and Mach number.
func (m Model) UnitReynoldsNumber(alt float64, mach float64, altUnits units.AltitudeUnit, reynoldsUnits units.ReynoldsUnit) (float64, error) {
	z, err := units.ConvertAltitude(alt, altUnits, units.Feet)
	if err != nil {
		return 0, err
	}
	v := mach * m.speedOfSoundAt(z)
	re := m.densityAt(z) * v / dynamicViscosityAt(z)
	return units.ConvertReynolds(re, units.PerFoot, reynoldsUnits)
}

// UnitReynoldsNumber2 evaluates the same quantity as UnitReynoldsNumber
// through the equivalent form gamma P M / (a mu), which substitutes the
// ideal-gas law for the explicit density. The two agree to roundoff.
func (m Model) UnitReynoldsNumber2(alt float64, mach float64, altUnits units.AltitudeUnit, reynoldsUnits units.ReynoldsUnit) (float64, error) {
	z, err := units.ConvertAltitude(alt, altUnits, units.Feet)
	if err != nil {
		return 0, err
	}
	re := m.Gamma * pressureAt(z) * mach / (m.speedOfSoundAt(z) * dynamicViscosityAt(z))
	return units.ConvertReynolds(re, units.PerFoot, reynoldsUnits)
}
