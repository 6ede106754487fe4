// cmd/atmos/convert.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mmp/atmos/units"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert VALUE FROM TO",
	Short: "Convert a value between units",
	Long: `Convert a value between units of the same quantity, e.g.

  atmos convert 35000 ft m
  atmos convert 2116.22 psf kPa
  atmos convert 250 knots m/s

The quantity is inferred from the unit tags; mixing quantities is an error.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("%q: not a number", args[0])
		}
		out, err := convertAny(v, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v %s\n", out, args[2])
		return nil
	},
}

// convertAny tries each quantity's conversion table in turn; unit tags
// are unique across quantities, so at most one table knows both.
func convertAny(v float64, from, to string) (float64, error) {
	conversions := []func() (float64, error){
		func() (float64, error) {
			return units.ConvertAltitude(v, units.AltitudeUnit(from), units.AltitudeUnit(to))
		},
		func() (float64, error) {
			return units.ConvertPressure(v, units.PressureUnit(from), units.PressureUnit(to))
		},
		func() (float64, error) {
			return units.ConvertDensity(v, units.DensityUnit(from), units.DensityUnit(to))
		},
		func() (float64, error) {
			return units.ConvertVelocity(v, units.VelocityUnit(from), units.VelocityUnit(to))
		},
		func() (float64, error) {
			return units.ConvertTemperature(v, units.TemperatureUnit(from), units.TemperatureUnit(to))
		},
		func() (float64, error) {
			return units.ConvertDynamicViscosity(v, units.DynamicViscosityUnit(from), units.DynamicViscosityUnit(to))
		},
		func() (float64, error) {
			return units.ConvertKinematicViscosity(v, units.KinematicViscosityUnit(from), units.KinematicViscosityUnit(to))
		},
		func() (float64, error) {
			return units.ConvertReynolds(v, units.ReynoldsUnit(from), units.ReynoldsUnit(to))
		},
	}
	for _, conv := range conversions {
		if out, err := conv(); err == nil {
			return out, nil
		} else if !errors.Is(err, units.ErrUnknownUnit) {
			return 0, err
		}
	}
	return 0, fmt.Errorf("no quantity has both units %q and %q: %w", from, to, units.ErrUnknownUnit)
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
