/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bioage

import "math"

// EstimatePhenoAge returns the Levine phenotypic age of b in years, rounded to
// two decimals. It fails with ErrDomain when the inputs push the mortality
// score to 0 or 1, where the inversion is undefined.
func EstimatePhenoAge(b BiomarkerPanel) (float64, error) {
	crp := crpFloorMgDL
	if b.CRP > 0 {
		crp = b.CRP / crpMgLPerMgDL
	}

	xb := phenoIntercept +
		phenoAlbumin*b.Albumin +
		phenoCreatinine*b.Creatinine +
		phenoGlucose*b.Glucose +
		phenoLogCRP*math.Log(crp) +
		phenoLymphocyte*b.Lymphocyte +
		phenoMCV*b.MCV +
		phenoRDW*b.RDW +
		phenoALP*b.ALP +
		phenoWBC*b.WBC +
		phenoAge*float64(b.Age)
	if !finite(xb) {
		return 0, domainError(StagePhenoAge, "linear predictor is %v", xb)
	}

	m := mortalityScore(xb)
	if !(m > 0 && m < 1) {
		return 0, domainError(StagePhenoAge, "mortality score %v outside (0, 1)", m)
	}

	survival := 1 - m
	if survival <= 0 {
		return 0, domainError(StagePhenoAge, "survival %v is not positive", survival)
	}

	arg := phenoAgeLogScale * math.Log(survival)
	if !(arg > 0) {
		return 0, domainError(StagePhenoAge, "log argument %v is not positive", arg)
	}

	age := phenoAgeOffset + math.Log(arg)/phenoAgeLogFactor
	if !finite(age) {
		return 0, domainError(StagePhenoAge, "estimate is %v", age)
	}

	return round(age, agePrecision), nil
}

// mortalityScore is the ten-year mortality risk under the Gompertz model
// for linear predictor xb.
func mortalityScore(xb float64) float64 {
	cumulativeHazard := math.Exp(xb) * (math.Exp(mortalityHorizonMonths*gompertzGamma) - 1) / gompertzGamma
	return 1 - math.Exp(-cumulativeHazard)
}
