// util/generic.go
// Copyright(c) 2025 atmos contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import "golang.org/x/exp/constraints"

// MapSlice returns the slice that is the result of applying the provided
// xform function to all of the elements of the given slice.
func MapSlice[F, T any](from []F, xform func(F) T) []T {
	var to []T
	for _, item := range from {
		to = append(to, xform(item))
	}
	return to
}

// FilterSlice applies the given filter function pred to the given slice,
// returning a new slice that only contains elements where pred returned
// true.
func FilterSlice[V any](s []V, pred func(V) bool) []V {
	var filtered []V
	for _, item := range s {
		if pred(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Linspace returns n evenly-spaced values covering [lo, hi] inclusive.
func Linspace[F constraints.Float](lo, hi F, n int) []F {
	if n == 1 {
		return []F{lo}
	}
	s := make([]F, n)
	d := (hi - lo) / F(n-1)
	for i := range s {
		s[i] = lo + F(i)*d
	}
	return s
}
