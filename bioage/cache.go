/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bioage

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of panels of each kind kept by
// NewCachedEstimator when size is not positive.
const DefaultCacheSize = 256

type cachedAge struct {
	age float64
	err error
}

// CachedEstimator memoizes both estimators keyed by the exact panel value.
// It is safe for concurrent use. Entries live only as long as the process.
type CachedEstimator struct {
	pheno    *lru.Cache[BiomarkerPanel, cachedAge]
	voitenko *lru.Cache[PhysiologyPanel, cachedAge]
}

// NewCachedEstimator returns an estimator holding up to size panels of each
// kind.
func NewCachedEstimator(size int) (*CachedEstimator, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	pheno, err := lru.New[BiomarkerPanel, cachedAge](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create phenoage cache: %w", err)
	}

	voitenko, err := lru.New[PhysiologyPanel, cachedAge](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create voitenko cache: %w", err)
	}

	return &CachedEstimator{pheno: pheno, voitenko: voitenko}, nil
}

// PhenoAge is EstimatePhenoAge with memoization. Panels holding NaN or
// infinite values bypass the cache since they never match an existing key.
func (c *CachedEstimator) PhenoAge(b BiomarkerPanel) (float64, error) {
	if !b.finite() {
		return EstimatePhenoAge(b)
	}

	if v, ok := c.pheno.Get(b); ok {
		return v.age, v.err
	}

	age, err := EstimatePhenoAge(b)
	c.pheno.Add(b, cachedAge{age: age, err: err})

	return age, err
}

// VoitenkoAge is EstimateVoitenkoAge with memoization.
func (c *CachedEstimator) VoitenkoAge(p PhysiologyPanel) (float64, error) {
	if !p.finite() {
		return EstimateVoitenkoAge(p)
	}

	if v, ok := c.voitenko.Get(p); ok {
		return v.age, v.err
	}

	age, err := EstimateVoitenkoAge(p)
	c.voitenko.Add(p, cachedAge{age: age, err: err})

	return age, err
}

// Evaluate is the package-level Evaluate using the memoized estimators.
func (c *CachedEstimator) Evaluate(b BiomarkerPanel, p PhysiologyPanel) (Result, error) {
	return EvaluateWith(c, b, p)
}

// Len returns the number of cached PhenoAge and Voitenko entries.
func (c *CachedEstimator) Len() (pheno, voitenko int) {
	return c.pheno.Len(), c.voitenko.Len()
}

// Purge drops every cached entry.
func (c *CachedEstimator) Purge() {
	c.pheno.Purge()
	c.voitenko.Purge()
}

func (b BiomarkerPanel) finite() bool {
	for _, v := range []float64{b.Albumin, b.Creatinine, b.Glucose, b.CRP, b.Lymphocyte, b.MCV, b.RDW, b.ALP, b.WBC} {
		if !finite(v) {
			return false
		}
	}

	return true
}

func (p PhysiologyPanel) finite() bool {
	for _, v := range []float64{p.Systolic, p.Diastolic, p.BreathHold, p.Balance, p.Weight} {
		if !finite(v) {
			return false
		}
	}

	return true
}
