// cmd/atmos/invert.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/mmp/atmos"
	"github.com/mmp/atmos/units"
	"github.com/spf13/cobra"
)

var (
	invDensity, invPressure, invQ, invEAS float64
	invMach                               float64
	invUnits                              string
	invAltUnits                           string
	invTol                                float64
	invMaxIter                            int
)

var invertCmd = &cobra.Command{
	Use:   "invert",
	Short: "Find the altitude matching an atmosphere property",
	Long: `Find the altitude at which the atmosphere matches an observed property:
density or pressure directly, or dynamic pressure or equivalent airspeed
at a fixed Mach number (--mach).

Exactly one of --density, --pressure, --q, --eas must be given. --units
names the units of that value (e.g. "kg/m^3", "psf", "knots").`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := atmos.Standard().WithLogger(lg)
		opts := atmos.InvertOptions{Tol: invTol, MaxIter: invMaxIter}
		altUnits := units.AltitudeUnit(invAltUnits)

		var alt float64
		var err error
		switch {
		case nflags(cmd, "density", "pressure", "q", "eas") != 1:
			return fmt.Errorf("exactly one of --density, --pressure, --q, --eas must be given")
		case cmd.Flags().Changed("density"):
			alt, err = m.AltitudeForDensity(invDensity, densityUnitsOrDefault(), altUnits, opts)
		case cmd.Flags().Changed("pressure"):
			alt, err = m.AltitudeForPressure(invPressure, pressureUnitsOrDefault(), altUnits, opts)
		case cmd.Flags().Changed("q"):
			alt, err = m.AltitudeForDynamicPressureAtMach(invQ, invMach, pressureUnitsOrDefault(), altUnits, opts)
		default:
			alt, err = m.AltitudeForEASAtMach(invEAS, invMach, velocityUnitsOrDefault(), altUnits, opts)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.2f %s\n", alt, invAltUnits)
		return nil
	},
}

func nflags(cmd *cobra.Command, names ...string) int {
	n := 0
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			n++
		}
	}
	return n
}

func densityUnitsOrDefault() units.DensityUnit {
	if invUnits == "" {
		return units.SlugFt3
	}
	return units.DensityUnit(invUnits)
}

func pressureUnitsOrDefault() units.PressureUnit {
	if invUnits == "" {
		return units.PSF
	}
	return units.PressureUnit(invUnits)
}

func velocityUnitsOrDefault() units.VelocityUnit {
	if invUnits == "" {
		return units.Knots
	}
	return units.VelocityUnit(invUnits)
}

func init() {
	rootCmd.AddCommand(invertCmd)

	invertCmd.Flags().Float64Var(&invDensity, "density", 0, "target density")
	invertCmd.Flags().Float64Var(&invPressure, "pressure", 0, "target pressure")
	invertCmd.Flags().Float64Var(&invQ, "q", 0, "target dynamic pressure (requires --mach)")
	invertCmd.Flags().Float64Var(&invEAS, "eas", 0, "target equivalent airspeed (requires --mach)")
	invertCmd.Flags().Float64Var(&invMach, "mach", 0.8, "Mach number for --q and --eas")
	invertCmd.Flags().StringVar(&invUnits, "units", "", "units of the target value (defaults per quantity)")
	invertCmd.Flags().StringVar(&invAltUnits, "alt-units", "ft", "altitude units for the result and tolerance")
	invertCmd.Flags().Float64Var(&invTol, "tol", 5, "convergence tolerance, in --alt-units")
	invertCmd.Flags().IntVar(&invMaxIter, "max-iter", 20, "iteration limit")
}
