/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bioage

import "fmt"

// EstimateVoitenkoAge returns the Voitenko biological age of p in years,
// rounded to two decimals. The regression branch is chosen by p.Sex; any
// other value fails with ErrUnrecognizedCategory. Diastolic pressure only
// enters the female branch.
func EstimateVoitenkoAge(p PhysiologyPanel) (float64, error) {
	var age float64

	switch p.Sex {
	case SexMale:
		age = voitenkoMaleIntercept +
			voitenkoMaleSystolic*p.Systolic +
			voitenkoMaleBreathHold*p.BreathHold +
			voitenkoMaleBalance*p.Balance +
			voitenkoMaleWeight*p.Weight
	case SexFemale:
		age = voitenkoFemaleIntercept +
			voitenkoFemaleSystolic*p.Systolic +
			voitenkoFemaleDiastolic*p.Diastolic +
			voitenkoFemaleBreathHold*p.BreathHold +
			voitenkoFemaleBalance*p.Balance +
			voitenkoFemaleWeight*p.Weight
	default:
		return 0, &ComputationError{
			Stage:  StageVoitenko,
			Kind:   ErrUnrecognizedCategory,
			Detail: fmt.Sprintf("sex %q", p.Sex),
		}
	}

	if !finite(age) {
		return 0, domainError(StageVoitenko, "estimate is %v", age)
	}

	return round(age, agePrecision), nil
}
