// cmd/atmos/table.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/klauspost/compress/zstd"
	"github.com/mmp/atmos"
	"github.com/mmp/atmos/units"
	"github.com/mmp/atmos/util"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	tableMin, tableMax, tableStep float64
	tableMach                     float64
	tableAltUnits                 string
	tableEASLimit                 float64
	tableOutput                   string
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print a constant-Mach altitude sweep of atmosphere properties",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tableStep <= 0 {
			return fmt.Errorf("step must be positive, got %v", tableStep)
		}
		n := int((tableMax-tableMin)/tableStep) + 1
		if n < 1 {
			return fmt.Errorf("empty altitude range %v..%v", tableMin, tableMax)
		}
		alts := util.Linspace(tableMin, tableMin+float64(n-1)*tableStep, n)

		m := atmos.Standard().WithLogger(lg)
		sweep, err := m.AltSweep(tableMach, alts, atmos.SweepOptions{
			AltUnits: units.AltitudeUnit(tableAltUnits),
			EASLimit: tableEASLimit,
		})
		if err != nil {
			return err
		}
		lg.Infof("alt sweep: mach %v, %d points", tableMach, sweep.Len())

		if tableOutput != "" {
			return writeSweep(tableOutput, sweep)
		}
		printSweep(cmd, sweep)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().Float64Var(&tableMin, "min", 0, "lowest altitude")
	tableCmd.Flags().Float64Var(&tableMax, "max", 60000, "highest altitude")
	tableCmd.Flags().Float64Var(&tableStep, "step", 5000, "altitude increment")
	tableCmd.Flags().Float64Var(&tableMach, "mach", 0.8, "Mach number for the velocity and EAS columns")
	tableCmd.Flags().StringVar(&tableAltUnits, "alt-units", "ft", "altitude units: ft, kft, m")
	tableCmd.Flags().Float64Var(&tableEASLimit, "eas-limit", 0, "drop points whose EAS (knots) exceeds this; 0 disables")
	tableCmd.Flags().StringVar(&tableOutput, "output", "", "write the sweep as zstd-compressed msgpack instead of printing")
}

func printSweep(cmd *cobra.Command, s atmos.Sweep) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "alt (%s)\trho (slug/ft^3)\tmach\tvel (ft/s)\teas (kts)\t\n", tableAltUnits)
	for i := range s.Alt {
		fmt.Fprintf(w, "%.1f\t%.6e\t%.4f\t%.2f\t%.2f\t\n",
			s.Alt[i], s.Density[i], s.Mach[i], s.Velocity[i], s.EAS[i])
	}
	w.Flush()
}

// writeSweep stores the sweep as zstd-compressed msgpack.
func writeSweep(path string, s atmos.Sweep) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return err
	}
	if err := msgpack.NewEncoder(zw).Encode(s); err != nil {
		zw.Close()
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
