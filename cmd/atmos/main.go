// cmd/atmos/main.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// atmos is a command-line front end for the atmosphere model: property
// tables, altitude inversion, and unit conversion.
package main

import (
	"fmt"
	"os"

	"github.com/mmp/atmos/log"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logDir   string

	lg *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "atmos",
	Short: "Standard atmosphere tables, altitude inversion, and unit conversion",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lg = log.New(logLevel, logDir)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "loglevel", "info", "logging level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logDir, "logdir", "", "directory for the log file (default: user config dir)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
