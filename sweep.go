// sweep.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import (
	"fmt"
	"math"

	"github.com/mmp/atmos/units"
	"github.com/mmp/atmos/util"
)

// Sweep holds parallel columns of flight conditions, one row per point.
type Sweep struct {
	Alt      []float64 `msgpack:"alt"`
	Density  []float64 `msgpack:"density"`
	Mach     []float64 `msgpack:"mach"`
	Velocity []float64 `msgpack:"velocity"`
	EAS      []float64 `msgpack:"eas"`
}

func (s Sweep) Len() int { return len(s.Alt) }

// SweepOptions sets the output units for the sweep columns and an
// optional equivalent-airspeed ceiling. Zero-valued unit fields default
// to ft, slug/ft^3, ft/s and knots.
type SweepOptions struct {
	AltUnits      units.AltitudeUnit
	DensityUnits  units.DensityUnit
	VelocityUnits units.VelocityUnit
	EASUnits      units.VelocityUnit

	// EASLimit, if positive, drops points whose equivalent airspeed
	// (in EASUnits) exceeds it. Structural-placard sweeps use this to
	// clip the low-altitude end of a constant-Mach line.
	EASLimit float64
}

func (o SweepOptions) withDefaults() SweepOptions {
	if o.AltUnits == "" {
		o.AltUnits = units.Feet
	}
	if o.DensityUnits == "" {
		o.DensityUnits = units.SlugFt3
	}
	if o.VelocityUnits == "" {
		o.VelocityUnits = units.FeetPerSecond
	}
	if o.EASUnits == "" {
		o.EASUnits = units.Knots
	}
	return o
}

type sweepPoint struct {
	alt, density, mach, velocity, eas float64
}

// AltSweep evaluates a constant-Mach line over the given altitudes.
func (m Model) AltSweep(mach float64, alts []float64, opts SweepOptions) (Sweep, error) {
	opts = opts.withDefaults()
	return m.sweep(alts, opts, func(alt float64) (sweepPoint, error) {
		z, err := units.ConvertAltitude(alt, opts.AltUnits, units.Feet)
		if err != nil {
			return sweepPoint{}, err
		}
		return m.point(z, alt, mach, opts)
	})
}

// MachSweep evaluates a range of Mach numbers at a fixed altitude.
func (m Model) MachSweep(alt float64, machs []float64, opts SweepOptions) (Sweep, error) {
	opts = opts.withDefaults()
	z, err := units.ConvertAltitude(alt, opts.AltUnits, units.Feet)
	if err != nil {
		return Sweep{}, err
	}
	return m.sweep(machs, opts, func(mach float64) (sweepPoint, error) {
		return m.point(z, alt, mach, opts)
	})
}

// EASSweep evaluates a range of equivalent airspeeds at a fixed
// altitude, solving each for the Mach number that produces it there.
func (m Model) EASSweep(alt float64, eass []float64, opts SweepOptions) (Sweep, error) {
	opts = opts.withDefaults()
	z, err := units.ConvertAltitude(alt, opts.AltUnits, units.Feet)
	if err != nil {
		return Sweep{}, err
	}
	sqrtP := math.Sqrt(pressureAt(z))
	return m.sweep(eass, opts, func(eas float64) (sweepPoint, error) {
		v, err := units.ConvertVelocity(eas, opts.EASUnits, units.FeetPerSecond)
		if err != nil {
			return sweepPoint{}, err
		}
		mach := v / (m.easCoefficient(1) * sqrtP)
		return m.point(z, alt, mach, opts)
	})
}

// point evaluates one flight condition; z is the altitude in ft, alt the
// same altitude in the caller's units.
func (m Model) point(z, alt, mach float64, opts SweepOptions) (sweepPoint, error) {
	rho, err := units.ConvertDensity(m.densityAt(z), units.SlugFt3, opts.DensityUnits)
	if err != nil {
		return sweepPoint{}, err
	}
	vel, err := units.ConvertVelocity(mach*m.speedOfSoundAt(z), units.FeetPerSecond, opts.VelocityUnits)
	if err != nil {
		return sweepPoint{}, err
	}
	eas, err := units.ConvertVelocity(m.easCoefficient(mach)*math.Sqrt(pressureAt(z)),
		units.FeetPerSecond, opts.EASUnits)
	if err != nil {
		return sweepPoint{}, err
	}
	return sweepPoint{alt: alt, density: rho, mach: mach, velocity: vel, eas: eas}, nil
}

func (m Model) sweep(xs []float64, opts SweepOptions, f func(x float64) (sweepPoint, error)) (Sweep, error) {
	pts := make([]sweepPoint, 0, len(xs))
	for _, x := range xs {
		pt, err := f(x)
		if err != nil {
			return Sweep{}, err
		}
		pts = append(pts, pt)
	}
	if opts.EASLimit > 0 {
		pts = util.FilterSlice(pts, func(pt sweepPoint) bool { return pt.eas <= opts.EASLimit })
	}
	if len(pts) == 0 {
		return Sweep{}, fmt.Errorf("%d input points: %w", len(xs), ErrEmptySweep)
	}
	return Sweep{
		Alt:      util.MapSlice(pts, func(pt sweepPoint) float64 { return pt.alt }),
		Density:  util.MapSlice(pts, func(pt sweepPoint) float64 { return pt.density }),
		Mach:     util.MapSlice(pts, func(pt sweepPoint) float64 { return pt.mach }),
		Velocity: util.MapSlice(pts, func(pt sweepPoint) float64 { return pt.velocity }),
		EAS:      util.MapSlice(pts, func(pt sweepPoint) float64 { return pt.eas }),
	}, nil
}
