/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/humaidq/bioage/bioage"
)

// formField describes one numeric input of a wizard step.
type formField struct {
	Name  string
	Label string
	Unit  string
	Step  string
	Value float64
}

func bloodFormFields(b bioage.BiomarkerPanel) []formField {
	return []formField{
		{Name: "albumin", Label: "Albumin", Unit: "g/L", Step: "0.1", Value: b.Albumin},
		{Name: "creatinine", Label: "Creatinine", Unit: "µmol/L", Step: "0.1", Value: b.Creatinine},
		{Name: "glucose", Label: "Glucose", Unit: "mmol/L", Step: "0.1", Value: b.Glucose},
		{Name: "crp", Label: "C-reactive protein", Unit: "mg/L", Step: "0.01", Value: b.CRP},
		{Name: "lymphocyte", Label: "Lymphocytes", Unit: "%", Step: "0.1", Value: b.Lymphocyte},
		{Name: "mcv", Label: "Mean corpuscular volume", Unit: "fL", Step: "0.1", Value: b.MCV},
		{Name: "rdw", Label: "Red cell distribution width", Unit: "%", Step: "0.1", Value: b.RDW},
		{Name: "alp", Label: "Alkaline phosphatase", Unit: "U/L", Step: "1", Value: b.ALP},
		{Name: "wbc", Label: "White blood cells", Unit: "×10⁹/L", Step: "0.1", Value: b.WBC},
	}
}

func physicalFormFields(p bioage.PhysiologyPanel) []formField {
	return []formField{
		{Name: "systolic", Label: "Systolic pressure", Unit: "mmHg", Step: "1", Value: p.Systolic},
		{Name: "diastolic", Label: "Diastolic pressure", Unit: "mmHg", Step: "1", Value: p.Diastolic},
		{Name: "breath_hold", Label: "Breath hold after inhale", Unit: "s", Step: "1", Value: p.BreathHold},
		{Name: "balance", Label: "Static balance on one leg", Unit: "s", Step: "1", Value: p.Balance},
		{Name: "weight", Label: "Body weight", Unit: "kg", Step: "0.1", Value: p.Weight},
	}
}

// parseFloatField reads a decimal number, accepting a comma separator.
func parseFloatField(form url.Values, name string) (float64, error) {
	raw := strings.TrimSpace(form.Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%s: %w", name, errMissingField)
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, errInvalidNumber)
	}

	return v, nil
}

func parseAgeField(form url.Values, name string) (int, error) {
	raw := strings.TrimSpace(form.Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%s: %w", name, errMissingField)
	}

	age, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, errInvalidNumber)
	}

	if age < bioage.MinAge || age > bioage.MaxAge {
		return 0, fmt.Errorf("%s: %w", name, errAgeOutOfRange)
	}

	return age, nil
}

func parseBloodForm(form url.Values) (bioage.BiomarkerPanel, error) {
	var b bioage.BiomarkerPanel
	targets := map[string]*float64{
		"albumin":    &b.Albumin,
		"creatinine": &b.Creatinine,
		"glucose":    &b.Glucose,
		"crp":        &b.CRP,
		"lymphocyte": &b.Lymphocyte,
		"mcv":        &b.MCV,
		"rdw":        &b.RDW,
		"alp":        &b.ALP,
		"wbc":        &b.WBC,
	}

	for _, field := range bloodFormFields(b) {
		v, err := parseFloatField(form, field.Name)
		if err != nil {
			return bioage.BiomarkerPanel{}, err
		}
		*targets[field.Name] = v
	}

	return b, nil
}

func parsePhysicalForm(form url.Values) (bioage.PhysiologyPanel, error) {
	var p bioage.PhysiologyPanel
	targets := map[string]*float64{
		"systolic":    &p.Systolic,
		"diastolic":   &p.Diastolic,
		"breath_hold": &p.BreathHold,
		"balance":     &p.Balance,
		"weight":      &p.Weight,
	}

	for _, field := range physicalFormFields(p) {
		v, err := parseFloatField(form, field.Name)
		if err != nil {
			return bioage.PhysiologyPanel{}, err
		}
		*targets[field.Name] = v
	}

	return p, nil
}

// inputErrorMessage turns a parse or evaluation failure into flash text.
func inputErrorMessage(err error) string {
	switch {
	case errors.Is(err, errMissingField):
		return "Please fill in every field (" + fieldName(err) + ")"
	case errors.Is(err, errInvalidNumber):
		return "Please enter a number (" + fieldName(err) + ")"
	case errors.Is(err, errAgeOutOfRange):
		return fmt.Sprintf("Age must be between %d and %d", bioage.MinAge, bioage.MaxAge)
	case errors.Is(err, bioage.ErrUnrecognizedCategory):
		return "Please choose a sex"
	case errors.Is(err, bioage.ErrInvalidPanel):
		return "Some values are out of range: " + computationDetail(err)
	case errors.Is(err, bioage.ErrDomain):
		return "The entered values are outside the range the models can score"
	case errors.Is(err, bioage.ErrIncompleteComputation):
		return "The biological age could not be calculated"
	}

	return "Something went wrong"
}

func fieldName(err error) string {
	name, _, _ := strings.Cut(err.Error(), ":")
	return name
}

func computationDetail(err error) string {
	var ce *bioage.ComputationError
	if errors.As(err, &ce) && ce.Detail != "" {
		return ce.Detail
	}

	return err.Error()
}
