/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bioage

// Result is the outcome of one evaluation. Pointer fields are nil when the
// value could not be computed; a Result is never mutated after it is built.
type Result struct {
	ChronologicalAge int
	PhenoAge         *float64
	VoitenkoAge      *float64
	IntegralAge      *float64
	Gap              *float64
	Bucket           Bucket
}

// Complete reports whether the integral age, gap and bucket are present.
func (r Result) Complete() bool {
	return r.IntegralAge != nil && r.Gap != nil && r.Bucket != ""
}

// PhenoGap returns the PhenoAge estimate minus chronological age, rounded to
// one decimal, or nil when PhenoAge is absent.
func (r Result) PhenoGap() *float64 {
	return subGap(r.PhenoAge, r.ChronologicalAge)
}

// VoitenkoGap returns the Voitenko estimate minus chronological age, rounded
// to one decimal, or nil when the estimate is absent.
func (r Result) VoitenkoGap() *float64 {
	return subGap(r.VoitenkoAge, r.ChronologicalAge)
}

func subGap(age *float64, chronological int) *float64 {
	if age == nil {
		return nil
	}

	gap := round(*age-float64(chronological), gapPrecision)

	return &gap
}

// Combine averages the two sub-ages into the integral age and classifies the
// gap to chronological age. Either sub-age missing yields
// ErrIncompleteComputation and a Result carrying only what was given.
func Combine(phenoAge, voitenkoAge *float64, chronologicalAge int) (Result, error) {
	res := Result{
		ChronologicalAge: chronologicalAge,
		PhenoAge:         copyFloat(phenoAge),
		VoitenkoAge:      copyFloat(voitenkoAge),
	}

	if phenoAge == nil || voitenkoAge == nil {
		missing := "phenoage"
		switch {
		case phenoAge == nil && voitenkoAge == nil:
			missing = "phenoage and voitenko"
		case voitenkoAge == nil:
			missing = "voitenko"
		}

		return res, &ComputationError{
			Stage:  StageAggregate,
			Kind:   ErrIncompleteComputation,
			Detail: "missing " + missing + " estimate",
		}
	}

	integral := round((*phenoAge+*voitenkoAge)/2, agePrecision)
	gap := round(integral-float64(chronologicalAge), gapPrecision)

	res.IntegralAge = &integral
	res.Gap = &gap
	res.Bucket = Classify(gap)

	return res, nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}

	c := *v

	return &c
}
