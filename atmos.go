// atmos.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package atmos evaluates standard-atmosphere properties (temperature,
// pressure, density, speed of sound, viscosity, and derived flow
// quantities) as closed-form functions of geometric altitude, and solves
// the inverse problem of recovering altitude from an observed property by
// secant iteration.
//
// All public entry points take explicit unit tags (see the units package)
// and normalize to the internal English reference units (ft, psf,
// slug/ft^3, ft/s, °R) before computing; unrecognized units fail before
// any numeric work.
package atmos

import (
	"math"

	"github.com/mmp/atmos/log"
	"github.com/mmp/atmos/units"
)

// Model carries the configurable physical parameters; the zero value is
// not useful, start from Standard(). Methods are pure functions of their
// arguments and the (immutable) Model fields, so a Model can be shared
// freely across goroutines.
type Model struct {
	GasConstant float64 // ft·lbf/(slug·°R)
	Gamma       float64 // ratio of specific heats

	// Lg receives non-fatal diagnostics from the Mach-constrained
	// inversions; nil is fine.
	Lg *log.Logger
}

func Standard() Model {
	return Model{GasConstant: 1716, Gamma: 1.4}
}

// WithLogger returns a copy of the Model that reports diagnostics to lg.
func (m Model) WithLogger(lg *log.Logger) Model {
	m.Lg = lg
	return m
}

// Temperature returns the atmospheric temperature at the given altitude.
// Temperature units are restricted to the absolute scales R and K.
func (m Model) Temperature(alt float64, altUnits units.AltitudeUnit, tempUnits units.TemperatureUnit) (float64, error) {
	z, err := units.ConvertAltitude(alt, altUnits, units.Feet)
	if err != nil {
		return 0, err
	}
	return units.ConvertTemperature(temperatureAt(z), units.Rankine, tempUnits)
}

// Pressure returns the atmospheric pressure at the given altitude.
func (m Model) Pressure(alt float64, altUnits units.AltitudeUnit, pressureUnits units.PressureUnit) (float64, error) {
	z, err := units.ConvertAltitude(alt, altUnits, units.Feet)
	if err != nil {
		return 0, err
	}
	return units.ConvertPressure(pressureAt(z), units.PSF, pressureUnits)
}

// Density returns the air density at the given altitude via the ideal-gas
// relation rho = P/(R T); it is never tabulated independently.
func (m Model) Density(alt float64, altUnits units.AltitudeUnit, densityUnits units.DensityUnit) (float64, error) {
	z, err := units.ConvertAltitude(alt, altUnits, units.Feet)
	if err != nil {
		return 0, err
	}
	return units.ConvertDensity(m.densityAt(z), units.SlugFt3, densityUnits)
}

// SpeedOfSound returns a = sqrt(gamma R T) at the given altitude.
func (m Model) SpeedOfSound(alt float64, altUnits units.AltitudeUnit, velocityUnits units.VelocityUnit) (float64, error) {
	z, err := units.ConvertAltitude(alt, altUnits, units.Feet)
	if err != nil {
		return 0, err
	}
	return units.ConvertVelocity(m.speedOfSoundAt(z), units.FeetPerSecond, velocityUnits)
}

// DynamicViscosity returns the Sutherland's-law dynamic viscosity at the
// given altitude.
func (m Model) DynamicViscosity(alt float64, altUnits units.AltitudeUnit, viscUnits units.DynamicViscosityUnit) (float64, error) {
	z, err := units.ConvertAltitude(alt, altUnits, units.Feet)
	if err != nil {
		return 0, err
	}
	return units.ConvertDynamicViscosity(dynamicViscosityAt(z), units.PoundSecondPerFoot2, viscUnits)
}

// KinematicViscosity returns nu = mu/rho at the given altitude.
func (m Model) KinematicViscosity(alt float64, altUnits units.AltitudeUnit, viscUnits units.KinematicViscosityUnit) (float64, error) {
	z, err := units.ConvertAltitude(alt, altUnits, units.Feet)
	if err != nil {
		return 0, err
	}
	nu := dynamicViscosityAt(z) / m.densityAt(z)
	return units.ConvertKinematicViscosity(nu, units.Foot2PerSecond, viscUnits)
}

func (m Model) densityAt(z float64) float64 {
	return pressureAt(z) / (m.GasConstant * temperatureAt(z))
}

func (m Model) speedOfSoundAt(z float64) float64 {
	return math.Sqrt(m.Gamma * m.GasConstant * temperatureAt(z))
}
