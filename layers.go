// layers.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import "math"

// The layer table is the English-unit standard atmosphere (Bertin's
// "Aerodynamics for Engineers" profile): a linear-lapse troposphere, the
// 389.988R stratosphere, and the alternating gradient/isothermal layers
// above, to beyond 250k feet. Layer boundaries are placed exactly where
// adjacent temperature laws intersect, so temperature and pressure are
// continuous everywhere.
const (
	seaLevelTemperature = 518.0              // °R
	seaLevelPressure    = 2116.2247459927403 // psf

	// Gravitational acceleration consistent with the table's reference
	// pressures at sea level and at 60000 ft; the historical table
	// embeds a slightly sub-standard effective gravity.
	gravity = 32.026948614737975 // ft/s^2

	// Specific gas constant for air, ft·lbf/(slug·°R). This is the table
	// reference value; density and speed of sound use the (configurable)
	// Model value instead.
	tableGasConstant = 1716.0

	// Sutherland's law constants for air, English units.
	sutherlandMu = 2.27e-8 // lbf·s/ft^2 per °R^1.5
	sutherlandS  = 198.6   // °R
)

type layer struct {
	base     float64 // ft
	lapse    float64 // °R/ft; zero for isothermal layers
	temp     float64 // °R at base
	pressure float64 // psf at base, chained from sea level
}

// layers is immutable after construction; base pressures are chained
// forward from the sea-level anchor exactly once, here, so per-call
// evaluation touches only the containing layer.
var layers = buildLayers()

func buildLayers() []layer {
	const (
		tropoLapse = -0.003559996
		strat1Temp = 389.988
		rise1Lapse = 0.0016273286
		strat2Temp = 508.788
		fallLapse  = -0.0020968273
		strat3Temp = 354.348
	)

	// Boundaries of the isothermal layers are where the neighboring
	// gradient layers reach the isothermal temperature.
	tropopause := (strat1Temp - seaLevelTemperature) / tropoLapse
	const rise1Base = 82344.678
	rise1Top := rise1Base + (strat2Temp-strat1Temp)/rise1Lapse
	const fallBase = 175346.171
	fallTop := fallBase + (strat3Temp-strat2Temp)/fallLapse

	ls := []layer{
		{base: 0, lapse: tropoLapse, temp: seaLevelTemperature},
		{base: tropopause, temp: strat1Temp},
		{base: rise1Base, lapse: rise1Lapse, temp: strat1Temp},
		{base: rise1Top, temp: strat2Temp},
		{base: fallBase, lapse: fallLapse, temp: strat2Temp},
		{base: fallTop, temp: strat3Temp},
	}

	ls[0].pressure = seaLevelPressure
	for i := 1; i < len(ls); i++ {
		ls[i].pressure = ls[i-1].pressureAt(ls[i].base)
	}
	return ls
}

// layerAt returns the layer containing the given altitude (ft). Altitudes
// below the first base or above the last extrapolate with the nearest
// layer's law.
func layerAt(alt float64) *layer {
	i := len(layers) - 1
	for i > 0 && alt < layers[i].base {
		i--
	}
	return &layers[i]
}

func (l *layer) temperatureAt(alt float64) float64 {
	return l.temp + l.lapse*(alt-l.base)
}

func (l *layer) pressureAt(alt float64) float64 {
	if l.lapse == 0 {
		// Isothermal: exponential decay with the layer's scale height.
		return l.pressure * math.Exp(-gravity*(alt-l.base)/(tableGasConstant*l.temp))
	}
	// Linear-temperature layer: the barometric power law.
	t := l.temperatureAt(alt)
	return l.pressure * math.Pow(t/l.temp, -gravity/(l.lapse*tableGasConstant))
}

// temperatureAt and pressureAt are the internal-unit (ft, °R, psf) core
// that everything else in the package composes.
func temperatureAt(alt float64) float64 {
	return layerAt(alt).temperatureAt(alt)
}

func pressureAt(alt float64) float64 {
	return layerAt(alt).pressureAt(alt)
}

// dynamicViscosityAt returns Sutherland's-law viscosity in lbf·s/ft^2.
func dynamicViscosityAt(alt float64) float64 {
	t := temperatureAt(alt)
	return sutherlandMu * math.Pow(t, 1.5) / (t + sutherlandS)
}
