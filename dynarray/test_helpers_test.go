// SPDX-License-Identifier: MIT
// Package dynarray_test holds shared fixtures for the dynarray tests.

package dynarray_test

import (
	"testing"

	"github.com/katalvlaran/dynarray/dynarray"
	"github.com/stretchr/testify/require"
)

// Capacities reached by doubling from the initial floor (avoid magic numbers in test bodies).
const (
	Cap4  = dynarray.InitialCapacity
	Cap8  = Cap4 * 2
	Cap16 = Cap8 * 2
	Cap32 = Cap16 * 2
)

// Values used by the walkthrough scenario.
const (
	V10 = 10
	V20 = 20
	V30 = 30
	V40 = 40
	V50 = 50
	V60 = 60
	V70 = 70
)

// filled returns an int array holding 0..n-1 in order.
func filled(t testing.TB, n int) *dynarray.DynamicArray[int] {
	t.Helper()
	a := dynarray.New[int]()
	for i := 0; i < n; i++ {
		a.Append(i)
	}
	require.Equal(t, n, a.Size(), "fixture size")

	return a
}

// seq returns []int{0, 1, ..., n-1}.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
