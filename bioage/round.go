/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bioage

import (
	"math"
	"strconv"
)

// round rounds x to the given number of decimal places using the exact
// binary value of x, so 67.785 (stored just below) becomes 67.78. Exact
// ties go to the even digit.
func round(x float64, places int) float64 {
	if !finite(x) {
		return x
	}

	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}

	return v
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
