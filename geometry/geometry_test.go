/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToTopDownRoundTrips(t *testing.T) {
	r := Rect{X0: 10, Y0: 20, X1: 30, Y1: 40}
	pageH := 100.0

	td := ToTopDown(r, pageH)
	require.Equal(t, Rect{X0: 10, Y0: 60, X1: 30, Y1: 80}, td)

	back := FromTopDown(td, pageH)
	require.Equal(t, r, back)
}

func TestContainsIsStrict(t *testing.T) {
	outer := Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}
	require.True(t, Contains(outer, Rect{X0: 10, Y0: 10, X1: 90, Y1: 90}))
	require.False(t, Contains(outer, Rect{X0: 0, Y0: 10, X1: 90, Y1: 90}))
	require.False(t, Contains(outer, Rect{X0: 10, Y0: 10, X1: 100, Y1: 90}))
}

func TestIntersects(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	b := Rect{X0: 5, Y0: 5, X1: 15, Y1: 15}
	c := Rect{X0: 20, Y0: 20, X1: 30, Y1: 30}
	require.True(t, Intersects(a, b))
	require.False(t, Intersects(a, c))
}

func TestContainsTargetWithTolerance(t *testing.T) {
	r := Rect{X0: 100, Y0: 100, X1: 200, Y1: 150}
	// inside, no tolerance needed
	require.True(t, ContainsTargetWithTolerance(r, Point{X: 150, Y: 120}, 0))
	// just outside x0 but within tolerance
	require.True(t, ContainsTargetWithTolerance(r, Point{X: 90, Y: 120}, 65))
	require.False(t, ContainsTargetWithTolerance(r, Point{X: 90, Y: 120}, 5))
	// above y1 but within tolerance
	require.True(t, ContainsTargetWithTolerance(r, Point{X: 150, Y: 160}, 65))
}

func TestClampNonNegative(t *testing.T) {
	r := Rect{X0: -5, Y0: -1, X1: 10, Y1: 20}
	require.Equal(t, Rect{X0: 0, Y0: 0, X1: 10, Y1: 20}, ClampNonNegative(r))
}

func TestAreaDegenerateIsZero(t *testing.T) {
	require.Equal(t, 0.0, Area(Rect{X0: 10, Y0: 0, X1: 5, Y1: 5}))
	require.Equal(t, 100.0, Area(Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}))
}

func TestUnion(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	b := Rect{X0: 5, Y0: -2, X1: 20, Y1: 8}
	require.Equal(t, Rect{X0: 0, Y0: -2, X1: 20, Y1: 10}, Union(a, b))
}
