/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bioage

// PhenoAge, Levine et al. (2018), "An epigenetic biomarker of aging for
// lifespan and healthspan". Linear predictor weights of the Gompertz
// proportional hazards model, for albumin in g/L, creatinine in µmol/L,
// glucose in mmol/L and CRP in mg/dL.
const (
	phenoIntercept  = -19.907
	phenoAlbumin    = -0.0336
	phenoCreatinine = 0.0095
	phenoGlucose    = 0.1953
	phenoLogCRP     = 0.0954
	phenoLymphocyte = -0.0120
	phenoMCV        = 0.0268
	phenoRDW        = 0.3306
	phenoALP        = 0.0019
	phenoWBC        = 0.0554
	phenoAge        = 0.0804
)

// Gompertz mortality transform and its inversion back to years.
const (
	gompertzGamma          = 0.0076927
	mortalityHorizonMonths = 120

	phenoAgeOffset    = 141.50
	phenoAgeLogScale  = -0.00553
	phenoAgeLogFactor = 0.090165
)

// CRP unit conversion. A zero reading is floored before the logarithm.
const (
	crpMgLPerMgDL = 10
	crpFloorMgDL  = 0.01
)

// Voitenko biological age regression, male branch.
const (
	voitenkoMaleIntercept  = 26.985
	voitenkoMaleSystolic   = 0.215
	voitenkoMaleBreathHold = -0.155
	voitenkoMaleBalance    = -0.57
	voitenkoMaleWeight     = 0.445
)

// Voitenko biological age regression, female branch.
const (
	voitenkoFemaleIntercept  = -1.18
	voitenkoFemaleSystolic   = 0.012
	voitenkoFemaleDiastolic  = 0.012
	voitenkoFemaleBreathHold = -0.057
	voitenkoFemaleBalance    = -0.50
	voitenkoFemaleWeight     = 0.248
)

// Rounding applied once per stage.
const (
	agePrecision = 2
	gapPrecision = 1
)
