/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bioage

// Input is the flat form of both panels used by the JSON API and the CLI
// YAML files. Sex is free text and goes through ParseSex.
type Input struct {
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	Sex        string  `json:"sex" yaml:"sex"`
	Age        int     `json:"age" yaml:"age"`
	Albumin    float64 `json:"albumin" yaml:"albumin"`
	Creatinine float64 `json:"creatinine" yaml:"creatinine"`
	Glucose    float64 `json:"glucose" yaml:"glucose"`
	CRP        float64 `json:"crp" yaml:"crp"`
	Lymphocyte float64 `json:"lymphocyte" yaml:"lymphocyte"`
	MCV        float64 `json:"mcv" yaml:"mcv"`
	RDW        float64 `json:"rdw" yaml:"rdw"`
	ALP        float64 `json:"alp" yaml:"alp"`
	WBC        float64 `json:"wbc" yaml:"wbc"`
	Systolic   float64 `json:"systolic" yaml:"systolic"`
	Diastolic  float64 `json:"diastolic" yaml:"diastolic"`
	BreathHold float64 `json:"breath_hold" yaml:"breath_hold"`
	Balance    float64 `json:"balance" yaml:"balance"`
	Weight     float64 `json:"weight" yaml:"weight"`
}

// DefaultInput returns the form defaults for sex.
func DefaultInput(sex Sex) Input {
	return NewInput("", DefaultBiomarkerPanel(), DefaultPhysiologyPanel(sex))
}

// NewInput flattens a pair of panels.
func NewInput(name string, b BiomarkerPanel, p PhysiologyPanel) Input {
	return Input{
		Name:       name,
		Sex:        string(p.Sex),
		Age:        b.Age,
		Albumin:    b.Albumin,
		Creatinine: b.Creatinine,
		Glucose:    b.Glucose,
		CRP:        b.CRP,
		Lymphocyte: b.Lymphocyte,
		MCV:        b.MCV,
		RDW:        b.RDW,
		ALP:        b.ALP,
		WBC:        b.WBC,
		Systolic:   p.Systolic,
		Diastolic:  p.Diastolic,
		BreathHold: p.BreathHold,
		Balance:    p.Balance,
		Weight:     p.Weight,
	}
}

// Panels parses the sex and validates both panels.
func (in Input) Panels() (BiomarkerPanel, PhysiologyPanel, error) {
	sex, err := ParseSex(in.Sex)
	if err != nil {
		return BiomarkerPanel{}, PhysiologyPanel{}, err
	}

	b, err := NewBiomarkerPanel(BiomarkerPanel{
		Age:        in.Age,
		Albumin:    in.Albumin,
		Creatinine: in.Creatinine,
		Glucose:    in.Glucose,
		CRP:        in.CRP,
		Lymphocyte: in.Lymphocyte,
		MCV:        in.MCV,
		RDW:        in.RDW,
		ALP:        in.ALP,
		WBC:        in.WBC,
	})
	if err != nil {
		return BiomarkerPanel{}, PhysiologyPanel{}, err
	}

	p, err := NewPhysiologyPanel(PhysiologyPanel{
		Sex:        sex,
		Systolic:   in.Systolic,
		Diastolic:  in.Diastolic,
		BreathHold: in.BreathHold,
		Balance:    in.Balance,
		Weight:     in.Weight,
	})
	if err != nil {
		return BiomarkerPanel{}, PhysiologyPanel{}, err
	}

	return b, p, nil
}
