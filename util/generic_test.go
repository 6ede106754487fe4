// util/generic_test.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"math"
	"slices"
	"testing"
)

func TestMapSlice(t *testing.T) {
	a := []int{1, 2, 3, 4}
	b := MapSlice(a, func(v int) float64 { return 2 * float64(v) })
	if !slices.Equal(b, []float64{2, 4, 6, 8}) {
		t.Errorf("MapSlice: got %v", b)
	}
	if got := MapSlice(nil, func(v int) int { return v }); len(got) != 0 {
		t.Errorf("MapSlice(nil): got %v", got)
	}
}

func TestFilterSlice(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	b := FilterSlice(a, func(a int) bool { return a%2 == 0 })
	if !slices.Equal(b, []int{2, 4}) {
		t.Errorf("FilterSlice: got %v", b)
	}
	if got := FilterSlice(a, func(int) bool { return false }); len(got) != 0 {
		t.Errorf("FilterSlice all-false: got %v", got)
	}
}

func TestLinspace(t *testing.T) {
	s := Linspace(0.0, 50000.0, 6)
	want := []float64{0, 10000, 20000, 30000, 40000, 50000}
	if len(s) != len(want) {
		t.Fatalf("Linspace: got %v", s)
	}
	for i := range want {
		if math.Abs(s[i]-want[i]) > 1e-9 {
			t.Errorf("Linspace[%d] = %v, want %v", i, s[i], want[i])
		}
	}

	if s := Linspace(42.0, 99.0, 1); len(s) != 1 || s[0] != 42 {
		t.Errorf("Linspace n=1: got %v", s)
	}

	s = Linspace(0.0, 1.0, 11)
	if s[0] != 0 || math.Abs(s[10]-1) > 1e-15 {
		t.Errorf("Linspace endpoints: %v, %v", s[0], s[10])
	}
}
