/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bioage

import "errors"

// Estimator computes the two sub-ages. The package-level functions are the
// reference implementation; CachedEstimator memoizes them.
type Estimator interface {
	PhenoAge(b BiomarkerPanel) (float64, error)
	VoitenkoAge(p PhysiologyPanel) (float64, error)
}

type directEstimator struct{}

// DirectEstimator returns the unmemoized Estimator.
func DirectEstimator() Estimator {
	return directEstimator{}
}

func (directEstimator) PhenoAge(b BiomarkerPanel) (float64, error) {
	return EstimatePhenoAge(b)
}

func (directEstimator) VoitenkoAge(p PhysiologyPanel) (float64, error) {
	return EstimateVoitenkoAge(p)
}

// Evaluate runs both estimators, aggregates and classifies. If either
// estimator fails the error matches ErrIncompleteComputation and the kind of
// the estimator failure; the returned Result still carries the sub-age that
// succeeded but has no integral age, gap or bucket.
func Evaluate(b BiomarkerPanel, p PhysiologyPanel) (Result, error) {
	return EvaluateWith(directEstimator{}, b, p)
}

// EvaluateWith is Evaluate using e for the sub-ages.
func EvaluateWith(e Estimator, b BiomarkerPanel, p PhysiologyPanel) (Result, error) {
	var phenoAge, voitenkoAge *float64

	pheno, phenoErr := e.PhenoAge(b)
	if phenoErr == nil {
		phenoAge = &pheno
	}

	voitenko, voitenkoErr := e.VoitenkoAge(p)
	if voitenkoErr == nil {
		voitenkoAge = &voitenko
	}

	res, err := Combine(phenoAge, voitenkoAge, b.Age)
	if err != nil {
		var ce *ComputationError
		if errors.As(err, &ce) {
			ce.Err = errors.Join(phenoErr, voitenkoErr)
		}

		return res, err
	}

	return res, nil
}
