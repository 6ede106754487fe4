// errors.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import "errors"

var (
	ErrNotConverged = errors.New("altitude iteration did not converge")
	ErrEmptySweep   = errors.New("sweep produced no points")
)
