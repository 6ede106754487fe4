// invert.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import (
	"math"

	"github.com/mmp/atmos/units"
)

// InvertOptions controls the secant altitude search. The zero value asks
// for the defaults.
type InvertOptions struct {
	// MaxIter bounds the number of secant steps; default 20.
	MaxIter int
	// Tol is the convergence tolerance on successive altitude
	// estimates, expressed in the altitude units of the call; default 5.
	Tol float64
	// Step is the finite-difference probe distance used to estimate the
	// local slope, in the altitude units of the call. It defaults to
	// Tol but can be set independently: a wider probe is more robust on
	// the nearly flat upper-atmosphere curves.
	Step float64
}

func (o InvertOptions) withDefaults() InvertOptions {
	if o.MaxIter == 0 {
		o.MaxIter = 20
	}
	if o.Tol == 0 {
		o.Tol = 5
	}
	if o.Step == 0 {
		o.Step = o.Tol
	}
	return o
}

// invert runs the secant iteration on eval, a monotone function of
// altitude in ft, until successive estimates agree within tol ft.
// It reports the final estimate, the iteration count, and whether the
// tolerance was met.
func invert(target float64, eval func(z float64) float64, tol, step float64, maxIter int) (float64, int, bool) {
	altOld, alt := 0.0, 5000.0
	n := 0
	for math.Abs(alt-altOld) > tol && n < maxIter {
		n++
		altOld = alt
		v1 := eval(altOld)
		v2 := eval(altOld + step)
		alt = altOld + step/(v2-v1)*(target-v1)
	}
	return alt, n, math.Abs(alt-altOld) <= tol
}

// ftTolerances converts the caller's Tol and Step into ft.
func (o InvertOptions) ftTolerances(altUnits units.AltitudeUnit) (tol, step float64, err error) {
	o = o.withDefaults()
	if tol, err = units.ConvertAltitude(o.Tol, altUnits, units.Feet); err != nil {
		return
	}
	step, err = units.ConvertAltitude(o.Step, altUnits, units.Feet)
	return
}

// AltitudeForDensity finds the altitude at which the atmosphere has the
// given density. It returns ErrNotConverged if the iteration budget is
// exhausted before the tolerance is met.
func (m Model) AltitudeForDensity(density float64, densityUnits units.DensityUnit, altUnits units.AltitudeUnit, opts InvertOptions) (float64, error) {
	rho, err := units.ConvertDensity(density, densityUnits, units.SlugFt3)
	if err != nil {
		return 0, err
	}
	tol, step, err := opts.ftTolerances(altUnits)
	if err != nil {
		return 0, err
	}
	z, _, ok := invert(rho, m.densityAt, tol, step, opts.withDefaults().MaxIter)
	if !ok {
		return 0, ErrNotConverged
	}
	return units.ConvertAltitude(z, units.Feet, altUnits)
}

// AltitudeForPressure finds the altitude at which the atmosphere has the
// given pressure. It returns ErrNotConverged if the iteration budget is
// exhausted before the tolerance is met.
func (m Model) AltitudeForPressure(pressure float64, pressureUnits units.PressureUnit, altUnits units.AltitudeUnit, opts InvertOptions) (float64, error) {
	p, err := units.ConvertPressure(pressure, pressureUnits, units.PSF)
	if err != nil {
		return 0, err
	}
	tol, step, err := opts.ftTolerances(altUnits)
	if err != nil {
		return 0, err
	}
	z, _, ok := invert(p, pressureAt, tol, step, opts.withDefaults().MaxIter)
	if !ok {
		return 0, ErrNotConverged
	}
	return units.ConvertAltitude(z, units.Feet, altUnits)
}

// AltitudeForDynamicPressureAtMach finds the altitude at which flying the
// given Mach number produces the given dynamic pressure. Since
// q = gamma/2 P M^2, this reduces to a pressure search at
// P = 2q/(gamma M^2).
//
// Unlike the density and pressure searches, a failure to converge is
// reported through the Model's logger and the last estimate is returned:
// these searches back trajectory planning, where a near-miss altitude is
// still usable.
func (m Model) AltitudeForDynamicPressureAtMach(q float64, mach float64, pressureUnits units.PressureUnit, altUnits units.AltitudeUnit, opts InvertOptions) (float64, error) {
	qpsf, err := units.ConvertPressure(q, pressureUnits, units.PSF)
	if err != nil {
		return 0, err
	}
	tol, step, err := opts.ftTolerances(altUnits)
	if err != nil {
		return 0, err
	}
	p := 2 * qpsf / (m.Gamma * mach * mach)
	z, n, ok := invert(p, pressureAt, tol, step, opts.withDefaults().MaxIter)
	if !ok {
		m.Lg.Warnf("dynamic pressure altitude search did not converge after %d iterations; returning estimate %v ft", n, z)
	}
	return units.ConvertAltitude(z, units.Feet, altUnits)
}

// AltitudeForEASAtMach finds the altitude at which flying the given Mach
// number yields the given equivalent airspeed. Non-convergence is logged
// and the last estimate returned, as for AltitudeForDynamicPressureAtMach.
func (m Model) AltitudeForEASAtMach(eas float64, mach float64, velocityUnits units.VelocityUnit, altUnits units.AltitudeUnit, opts InvertOptions) (float64, error) {
	v, err := units.ConvertVelocity(eas, velocityUnits, units.FeetPerSecond)
	if err != nil {
		return 0, err
	}
	tol, step, err := opts.ftTolerances(altUnits)
	if err != nil {
		return 0, err
	}
	k := m.easCoefficient(mach)
	eval := func(z float64) float64 { return k * math.Sqrt(pressureAt(z)) }
	z, n, ok := invert(v, eval, tol, step, opts.withDefaults().MaxIter)
	if !ok {
		m.Lg.Warnf("EAS altitude search did not converge after %d iterations; returning estimate %v ft", n, z)
	}
	return units.ConvertAltitude(z, units.Feet, altUnits)
}
