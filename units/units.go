// units/units.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package units provides stateless conversions between the unit systems the
// atmosphere model speaks: every quantity has a small enumerated set of legal
// unit tags, and conversion is a table lookup plus a multiply. Unrecognized
// tags are an error before any arithmetic happens.
//
// The internal reference units are English: feet, psf, slug/ft^3, ft/s,
// degrees Rankine. Conversion factors follow the source tables the layer
// model was built from.
package units

import (
	"errors"
	"fmt"
)

var ErrUnknownUnit = errors.New("unknown unit")

type (
	AltitudeUnit           string
	PressureUnit           string
	DensityUnit            string
	VelocityUnit           string
	TemperatureUnit        string
	DynamicViscosityUnit   string
	KinematicViscosityUnit string
	ReynoldsUnit           string
)

const (
	Feet     AltitudeUnit = "ft"
	Kilofeet AltitudeUnit = "kft"
	Meters   AltitudeUnit = "m"

	PSF PressureUnit = "psf"
	PSI PressureUnit = "psi"
	Pa  PressureUnit = "Pa"
	KPa PressureUnit = "kPa"
	MPa PressureUnit = "MPa"

	SlugFt3   DensityUnit = "slug/ft^3"
	SlinchIn3 DensityUnit = "slinch/in^3"
	KgM3      DensityUnit = "kg/m^3"

	FeetPerSecond   VelocityUnit = "ft/s"
	InchesPerSecond VelocityUnit = "in/s"
	MetersPerSecond VelocityUnit = "m/s"
	Knots           VelocityUnit = "knots"

	Rankine TemperatureUnit = "R"
	Kelvin  TemperatureUnit = "K"

	PoundSecondPerFoot2 DynamicViscosityUnit = "(lbf*s)/ft^2"
	PoundSecondPerInch2 DynamicViscosityUnit = "(lbf*s)/in^2"
	PascalSecond        DynamicViscosityUnit = "Pa*s"

	Foot2PerSecond  KinematicViscosityUnit = "ft^2/s"
	Inch2PerSecond  KinematicViscosityUnit = "in^2/s"
	Meter2PerSecond KinematicViscosityUnit = "m^2/s"

	PerFoot  ReynoldsUnit = "1/ft"
	PerInch  ReynoldsUnit = "1/in"
	PerMeter ReynoldsUnit = "1/m"
)

const (
	metersPerFoot = 0.3048
	knotsToFtps   = 1.68781
	psfToPa       = 47.880172
	slugFt3ToKgM3 = 515.378818
	ft2ToM2       = 0.09290304
)

// Each table maps a unit tag to the factor that takes a value in that unit
// to the internal reference unit.
var (
	altitudeFactors = map[AltitudeUnit]float64{
		Feet:     1,
		Kilofeet: 1000,
		Meters:   1 / metersPerFoot,
	}
	pressureFactors = map[PressureUnit]float64{
		PSF: 1,
		PSI: 144,
		Pa:  1 / psfToPa,
		KPa: 1000 / psfToPa,
		MPa: 1e6 / psfToPa,
	}
	densityFactors = map[DensityUnit]float64{
		SlugFt3:   1,
		SlinchIn3: 12 * 12 * 12 * 12,
		KgM3:      1 / slugFt3ToKgM3,
	}
	velocityFactors = map[VelocityUnit]float64{
		FeetPerSecond:   1,
		InchesPerSecond: 1.0 / 12,
		MetersPerSecond: 1 / metersPerFoot,
		Knots:           knotsToFtps,
	}
	// Rankine and Kelvin are both absolute scales, so conversion is a pure
	// scale factor; Fahrenheit and Celsius are deliberately not supported
	// since their offsets make silent unit-system mixups too easy.
	temperatureFactors = map[TemperatureUnit]float64{
		Rankine: 1,
		Kelvin:  1.8,
	}
	dynamicViscosityFactors = map[DynamicViscosityUnit]float64{
		PoundSecondPerFoot2: 1,
		PoundSecondPerInch2: 144,
		PascalSecond:        1 / psfToPa,
	}
	kinematicViscosityFactors = map[KinematicViscosityUnit]float64{
		Foot2PerSecond:  1,
		Inch2PerSecond:  1.0 / 144,
		Meter2PerSecond: 1 / ft2ToM2,
	}
	reynoldsFactors = map[ReynoldsUnit]float64{
		PerFoot:  1,
		PerInch:  12,
		PerMeter: metersPerFoot,
	}
)

func convert[U ~string](v float64, from, to U, factors map[U]float64) (float64, error) {
	ffrom, ok := factors[from]
	if !ok {
		return 0, fmt.Errorf("%q: %w", string(from), ErrUnknownUnit)
	}
	fto, ok := factors[to]
	if !ok {
		return 0, fmt.Errorf("%q: %w", string(to), ErrUnknownUnit)
	}
	return v * (ffrom / fto), nil
}

func ConvertAltitude(v float64, from, to AltitudeUnit) (float64, error) {
	return convert(v, from, to, altitudeFactors)
}

func ConvertPressure(v float64, from, to PressureUnit) (float64, error) {
	return convert(v, from, to, pressureFactors)
}

func ConvertDensity(v float64, from, to DensityUnit) (float64, error) {
	return convert(v, from, to, densityFactors)
}

func ConvertVelocity(v float64, from, to VelocityUnit) (float64, error) {
	return convert(v, from, to, velocityFactors)
}

func ConvertTemperature(v float64, from, to TemperatureUnit) (float64, error) {
	return convert(v, from, to, temperatureFactors)
}

func ConvertDynamicViscosity(v float64, from, to DynamicViscosityUnit) (float64, error) {
	return convert(v, from, to, dynamicViscosityFactors)
}

func ConvertKinematicViscosity(v float64, from, to KinematicViscosityUnit) (float64, error) {
	return convert(v, from, to, kinematicViscosityFactors)
}

func ConvertReynolds(v float64, from, to ReynoldsUnit) (float64, error) {
	return convert(v, from, to, reynoldsFactors)
}
