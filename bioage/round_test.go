// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package bioage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x      float64
		places int
		want   float64
	}{
		{67.785, 2, 67.78},
		{2.675, 2, 2.67},
		{0.125, 2, 0.12},
		{0.375, 2, 0.38},
		{13.14, 1, 13.1},
		{-6.58, 1, -6.6},
		{48.1, 2, 48.1},
		{35, 1, 35},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, round(tt.x, tt.places), "round(%v, %d)", tt.x, tt.places)
	}
}

func TestRoundIsStable(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{28.42, 67.78, 48.1, 13.1, -2.25} {
		once := round(x, agePrecision)
		assert.Equal(t, once, round(once, agePrecision))
	}
}

func TestRoundKeepsNonFinite(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsNaN(round(math.NaN(), 2)))
	assert.True(t, math.IsInf(round(math.Inf(1), 2), 1))
}
