/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package bioage estimates biological age from a blood biomarker panel
// (Levine PhenoAge) and a physical performance panel (Voitenko index), and
// combines both into an integral age with a qualitative classification.
//
// All functions are pure. Panels are plain values; nothing is persisted.
package bioage

import (
	"fmt"
	"math"
	"strings"
)

// Chronological age bounds accepted by NewBiomarkerPanel.
const (
	MinAge = 18
	MaxAge = 100
)

// Sex selects the Voitenko regression branch.
type Sex string

// Sex values.
const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex converts user input into a Sex. Unknown values are rejected with
// ErrUnrecognizedCategory rather than defaulted.
func ParseSex(value string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "male", "m", "мужской":
		return SexMale, nil
	case "female", "f", "женский":
		return SexFemale, nil
	}

	return "", &ComputationError{
		Stage:  StageValidate,
		Kind:   ErrUnrecognizedCategory,
		Detail: fmt.Sprintf("sex %q", value),
	}
}

// Valid reports whether s is one of the defined categories.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Label returns a display label.
func (s Sex) Label() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	}

	return "Unknown"
}

// BiomarkerPanel holds the blood test inputs of the PhenoAge model.
// CRP is in mg/L and may be zero.
type BiomarkerPanel struct {
	Age        int     `json:"age" yaml:"age"`               // years
	Albumin    float64 `json:"albumin" yaml:"albumin"`       // g/L
	Creatinine float64 `json:"creatinine" yaml:"creatinine"` // µmol/L
	Glucose    float64 `json:"glucose" yaml:"glucose"`       // mmol/L
	CRP        float64 `json:"crp" yaml:"crp"`               // mg/L
	Lymphocyte float64 `json:"lymphocyte" yaml:"lymphocyte"` // %
	MCV        float64 `json:"mcv" yaml:"mcv"`               // fL
	RDW        float64 `json:"rdw" yaml:"rdw"`               // %
	ALP        float64 `json:"alp" yaml:"alp"`               // U/L
	WBC        float64 `json:"wbc" yaml:"wbc"`               // ×10⁹/L
}

// PhysiologyPanel holds the physical test inputs of the Voitenko model.
type PhysiologyPanel struct {
	Sex        Sex     `json:"sex" yaml:"sex"`
	Systolic   float64 `json:"systolic" yaml:"systolic"`       // mmHg
	Diastolic  float64 `json:"diastolic" yaml:"diastolic"`     // mmHg
	BreathHold float64 `json:"breath_hold" yaml:"breath_hold"` // seconds
	Balance    float64 `json:"balance" yaml:"balance"`         // seconds
	Weight     float64 `json:"weight" yaml:"weight"`           // kg
}

// DefaultBiomarkerPanel returns the pre-filled values of the input form.
func DefaultBiomarkerPanel() BiomarkerPanel {
	return BiomarkerPanel{
		Age:        35,
		Albumin:    45,
		Creatinine: 80,
		Glucose:    5,
		CRP:        1,
		Lymphocyte: 30,
		MCV:        90,
		RDW:        13,
		ALP:        65,
		WBC:        6,
	}
}

// DefaultPhysiologyPanel returns the pre-filled values of the input form.
func DefaultPhysiologyPanel(sex Sex) PhysiologyPanel {
	return PhysiologyPanel{
		Sex:        sex,
		Systolic:   120,
		Diastolic:  80,
		BreathHold: 45,
		Balance:    20,
		Weight:     75,
	}
}

// NewBiomarkerPanel validates b and returns it unchanged when it is usable.
func NewBiomarkerPanel(b BiomarkerPanel) (BiomarkerPanel, error) {
	if b.Age < MinAge || b.Age > MaxAge {
		return BiomarkerPanel{}, invalidPanel("age %d outside %d-%d", b.Age, MinAge, MaxAge)
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"albumin", b.Albumin},
		{"creatinine", b.Creatinine},
		{"glucose", b.Glucose},
		{"lymphocyte", b.Lymphocyte},
		{"mcv", b.MCV},
		{"rdw", b.RDW},
		{"alp", b.ALP},
		{"wbc", b.WBC},
	}
	for _, f := range fields {
		if err := requirePositive(f.name, f.value); err != nil {
			return BiomarkerPanel{}, err
		}
	}

	if math.IsNaN(b.CRP) || math.IsInf(b.CRP, 0) || b.CRP < 0 {
		return BiomarkerPanel{}, invalidPanel("crp must be zero or positive, got %v", b.CRP)
	}

	return b, nil
}

// NewPhysiologyPanel validates p and returns it unchanged when it is usable.
func NewPhysiologyPanel(p PhysiologyPanel) (PhysiologyPanel, error) {
	if !p.Sex.Valid() {
		return PhysiologyPanel{}, &ComputationError{
			Stage:  StageValidate,
			Kind:   ErrUnrecognizedCategory,
			Detail: fmt.Sprintf("sex %q", p.Sex),
		}
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"systolic", p.Systolic},
		{"diastolic", p.Diastolic},
		{"breath_hold", p.BreathHold},
		{"balance", p.Balance},
		{"weight", p.Weight},
	}
	for _, f := range fields {
		if err := requirePositive(f.name, f.value); err != nil {
			return PhysiologyPanel{}, err
		}
	}

	return p, nil
}

func requirePositive(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return invalidPanel("%s must be positive, got %v", name, value)
	}

	return nil
}
