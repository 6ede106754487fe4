// array.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import "github.com/mmp/atmos/units"

// The *Array methods evaluate the corresponding scalar method over a
// slice of altitudes; each element is exactly the scalar result at that
// altitude. An error on any element abandons the whole evaluation.

func (m Model) TemperatureArray(alts []float64, altUnits units.AltitudeUnit, tempUnits units.TemperatureUnit) ([]float64, error) {
	return mapAlts(alts, func(z float64) (float64, error) {
		return m.Temperature(z, altUnits, tempUnits)
	})
}

func (m Model) PressureArray(alts []float64, altUnits units.AltitudeUnit, pressureUnits units.PressureUnit) ([]float64, error) {
	return mapAlts(alts, func(z float64) (float64, error) {
		return m.Pressure(z, altUnits, pressureUnits)
	})
}

func (m Model) DensityArray(alts []float64, altUnits units.AltitudeUnit, densityUnits units.DensityUnit) ([]float64, error) {
	return mapAlts(alts, func(z float64) (float64, error) {
		return m.Density(z, altUnits, densityUnits)
	})
}

func (m Model) SpeedOfSoundArray(alts []float64, altUnits units.AltitudeUnit, velocityUnits units.VelocityUnit) ([]float64, error) {
	return mapAlts(alts, func(z float64) (float64, error) {
		return m.SpeedOfSound(z, altUnits, velocityUnits)
	})
}

func (m Model) DynamicViscosityArray(alts []float64, altUnits units.AltitudeUnit, viscUnits units.DynamicViscosityUnit) ([]float64, error) {
	return mapAlts(alts, func(z float64) (float64, error) {
		return m.DynamicViscosity(z, altUnits, viscUnits)
	})
}

func (m Model) KinematicViscosityArray(alts []float64, altUnits units.AltitudeUnit, viscUnits units.KinematicViscosityUnit) ([]float64, error) {
	return mapAlts(alts, func(z float64) (float64, error) {
		return m.KinematicViscosity(z, altUnits, viscUnits)
	})
}

// EquivalentAirspeedArray evaluates EquivalentAirspeed at a fixed Mach
// number over a slice of altitudes.
func (m Model) EquivalentAirspeedArray(alts []float64, mach float64, altUnits units.AltitudeUnit, velocityUnits units.VelocityUnit) ([]float64, error) {
	return mapAlts(alts, func(z float64) (float64, error) {
		return m.EquivalentAirspeed(z, mach, altUnits, velocityUnits)
	})
}

func mapAlts(alts []float64, f func(float64) (float64, error)) ([]float64, error) {
	out := make([]float64, len(alts))
	for i, z := range alts {
		v, err := f(z)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
