/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bioage

import (
	"fmt"
	"strconv"
)

// Model names which estimator a measurement feeds.
type Model string

// Model values.
const (
	ModelPhenoAge Model = "phenoage"
	ModelVoitenko Model = "voitenko"
)

// DeviationStatus tells on which side of the reference range a value lies.
type DeviationStatus string

// DeviationStatus values.
const (
	DeviationLow  DeviationStatus = "low"
	DeviationHigh DeviationStatus = "high"
)

// ReferenceRange is the normal range of one measurement. A nil bound is
// open. Values equal to a bound are normal.
type ReferenceRange struct {
	Field string
	Name  string
	Unit  string
	Model Model
	Min   *float64
	Max   *float64
	// Sex restricts the range to one sex; empty applies to both.
	Sex Sex
	// LowNote and HighNote say briefly what an out-of-range value suggests.
	LowNote  string
	HighNote string
}

// Deviation is one measurement outside its reference range.
type Deviation struct {
	Field  string          `json:"field"`
	Name   string          `json:"name"`
	Value  float64         `json:"value"`
	Unit   string          `json:"unit"`
	Normal string          `json:"normal"`
	Status DeviationStatus `json:"status"`
	Model  Model           `json:"model"`
	Note   string          `json:"note,omitempty"`
}

// ptr is a helper to create pointers to float64 literals
func ptr(f float64) *float64 {
	return &f
}

// ReferenceRanges returns the reference ranges of every panel field. Fields
// with sex-specific ranges appear once per sex.
func ReferenceRanges() []ReferenceRange {
	return []ReferenceRange{
		// ===== BLOOD (PhenoAge) =====
		{
			Field: "albumin", Name: "Albumin", Unit: "g/L", Model: ModelPhenoAge,
			Min: ptr(35), Max: ptr(50),
			LowNote: "possible nutrition or liver issue", HighNote: "possible dehydration",
		},
		{
			Field: "creatinine", Name: "Creatinine", Unit: "µmol/L", Model: ModelPhenoAge,
			Min: ptr(62), Max: ptr(106), Sex: SexMale,
			LowNote: "possible loss of muscle mass", HighNote: "possible reduced kidney function",
		},
		{
			Field: "creatinine", Name: "Creatinine", Unit: "µmol/L", Model: ModelPhenoAge,
			Min: ptr(44), Max: ptr(80), Sex: SexFemale,
			LowNote: "possible loss of muscle mass", HighNote: "possible reduced kidney function",
		},
		{
			Field: "glucose", Name: "Glucose", Unit: "mmol/L", Model: ModelPhenoAge,
			Min: ptr(3.9), Max: ptr(5.9),
			LowNote: "possible metabolic issue", HighNote: "accelerates vascular and tissue ageing",
		},
		{
			// Only elevated CRP is flagged.
			Field: "crp", Name: "C-reactive protein", Unit: "mg/L", Model: ModelPhenoAge,
			Max:      ptr(3),
			HighNote: "systemic inflammation",
		},
		{
			Field: "lymphocyte", Name: "Lymphocytes", Unit: "%", Model: ModelPhenoAge,
			Min: ptr(19), Max: ptr(37),
			LowNote: "weakened immune response", HighNote: "possible inflammatory process",
		},
		{
			Field: "mcv", Name: "Mean corpuscular volume", Unit: "fL", Model: ModelPhenoAge,
			Min: ptr(80), Max: ptr(100),
			LowNote: "possible iron deficiency", HighNote: "possible B vitamin deficiency",
		},
		{
			Field: "rdw", Name: "Red cell distribution width", Unit: "%", Model: ModelPhenoAge,
			Min: ptr(11.5), Max: ptr(14.5),
			LowNote: "usually not significant", HighNote: "associated with accelerated ageing",
		},
		{
			Field: "alp", Name: "Alkaline phosphatase", Unit: "U/L", Model: ModelPhenoAge,
			Min: ptr(20), Max: ptr(140),
			LowNote: "possible bone or liver issue", HighNote: "possible bone or liver issue",
		},
		{
			Field: "wbc", Name: "White blood cells", Unit: "×10⁹/L", Model: ModelPhenoAge,
			Min: ptr(4.0), Max: ptr(9.0),
			LowNote: "weakened immune response", HighNote: "inflammation",
		},

		// ===== PHYSICAL (Voitenko) =====
		{
			Field: "systolic", Name: "Systolic pressure", Unit: "mmHg", Model: ModelVoitenko,
			Min: ptr(90), Max: ptr(140),
			LowNote: "weak cardiovascular tone", HighNote: "accelerates cardiovascular ageing",
		},
		{
			Field: "diastolic", Name: "Diastolic pressure", Unit: "mmHg", Model: ModelVoitenko,
			Min: ptr(60), Max: ptr(90),
			LowNote: "possible vascular issue", HighNote: "accelerates cardiovascular wear",
		},
		{
			// Longer is better; only short holds are flagged.
			Field: "breath_hold", Name: "Breath hold", Unit: "s", Model: ModelVoitenko,
			Min:     ptr(40),
			LowNote: "reduced respiratory reserve",
		},
		{
			Field: "balance", Name: "Single-leg balance", Unit: "s", Model: ModelVoitenko,
			Min:     ptr(20),
			LowNote: "reduced vestibular reserve and coordination",
		},
		{
			// Approximate, no height is collected.
			Field: "weight", Name: "Body weight", Unit: "kg", Model: ModelVoitenko,
			Min: ptr(40), Max: ptr(120),
			LowNote: "possible lack of muscle mass", HighNote: "extra cardiovascular load",
		},
	}
}

// ReferenceRangeFor returns the range of field for sex, preferring a
// sex-specific entry. The boolean is false when no range is defined.
func ReferenceRangeFor(field string, sex Sex) (ReferenceRange, bool) {
	var fallback *ReferenceRange

	ranges := ReferenceRanges()
	for i := range ranges {
		r := ranges[i]
		if r.Field != field {
			continue
		}

		if r.Sex == sex {
			return r, true
		}

		if r.Sex == "" && fallback == nil {
			fallback = &ranges[i]
		}
	}

	if fallback != nil {
		return *fallback, true
	}

	return ReferenceRange{}, false
}

// NormalText renders the range for display, e.g. "35-50 g/L", "< 3 mg/L".
func (r ReferenceRange) NormalText() string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("%s-%s %s", formatBound(*r.Min), formatBound(*r.Max), r.Unit)
	case r.Max != nil:
		return fmt.Sprintf("< %s %s", formatBound(*r.Max), r.Unit)
	case r.Min != nil:
		return fmt.Sprintf("> %s %s", formatBound(*r.Min), r.Unit)
	}

	return ""
}

// Check returns the deviation of value from r, if any.
func (r ReferenceRange) Check(value float64) (Deviation, bool) {
	d := Deviation{
		Field:  r.Field,
		Name:   r.Name,
		Value:  value,
		Unit:   r.Unit,
		Normal: r.NormalText(),
		Model:  r.Model,
	}

	switch {
	case r.Min != nil && value < *r.Min:
		d.Status = DeviationLow
		d.Note = r.LowNote
	case r.Max != nil && value > *r.Max:
		d.Status = DeviationHigh
		d.Note = r.HighNote
	default:
		return Deviation{}, false
	}

	return d, true
}

// AnalyzeDeviations lists the measurements of both panels that fall outside
// their reference ranges, blood markers first, in panel order.
func AnalyzeDeviations(b BiomarkerPanel, p PhysiologyPanel) []Deviation {
	values := []struct {
		field string
		value float64
	}{
		{"albumin", b.Albumin},
		{"creatinine", b.Creatinine},
		{"glucose", b.Glucose},
		{"crp", b.CRP},
		{"lymphocyte", b.Lymphocyte},
		{"mcv", b.MCV},
		{"rdw", b.RDW},
		{"alp", b.ALP},
		{"wbc", b.WBC},
		{"systolic", p.Systolic},
		{"diastolic", p.Diastolic},
		{"breath_hold", p.BreathHold},
		{"balance", p.Balance},
		{"weight", p.Weight},
	}

	deviations := make([]Deviation, 0)

	for _, v := range values {
		r, ok := ReferenceRangeFor(v.field, p.Sex)
		if !ok {
			continue
		}

		if d, ok := r.Check(v.value); ok {
			deviations = append(deviations, d)
		}
	}

	return deviations
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
