/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/bioage/bioage"
)

const maxNameLength = 100

// ProfileForm renders the first wizard step
func ProfileForm(s session.Session, t template.Template, data template.Data) {
	d := loadDraft(s)

	data["Name"] = d.Name
	data["Sex"] = string(d.Sex)
	data["Age"] = d.BloodOrDefault().Age
	data["MinAge"] = bioage.MinAge
	data["MaxAge"] = bioage.MaxAge
	data["StepNumber"] = 1

	t.HTML(http.StatusOK, "profile")
}

// SaveProfile handles the profile form submission
func SaveProfile(c flamego.Context, s session.Session) {
	if err := c.Request().ParseForm(); err != nil {
		logger.Error("Error parsing profile form", "error", err)
		SetErrorFlash(s, "Failed to parse form data")
		c.Redirect(stepProfile, http.StatusSeeOther)
		return
	}

	form := c.Request().Form

	name := strings.TrimSpace(form.Get("name"))
	if utf8.RuneCountInString(name) > maxNameLength {
		name = string([]rune(name)[:maxNameLength])
	}

	sex, err := bioage.ParseSex(form.Get("sex"))
	if err != nil {
		SetErrorFlash(s, inputErrorMessage(err))
		c.Redirect(stepProfile, http.StatusSeeOther)
		return
	}

	age, err := parseAgeField(form, "age")
	if err != nil {
		SetErrorFlash(s, inputErrorMessage(err))
		c.Redirect(stepProfile, http.StatusSeeOther)
		return
	}

	saveDraft(s, loadDraft(s).WithProfile(name, sex, age))
	c.Redirect(stepBlood, http.StatusSeeOther)
}

// BloodForm renders the blood biomarker step
func BloodForm(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	d := loadDraft(s)
	if !d.HasProfile {
		c.Redirect(d.NextStep(), http.StatusSeeOther)
		return
	}

	data["Fields"] = bloodFormFields(d.BloodOrDefault())
	data["StepNumber"] = 2

	t.HTML(http.StatusOK, "blood")
}

// SaveBlood handles the blood biomarker form submission
func SaveBlood(c flamego.Context, s session.Session) {
	d := loadDraft(s)
	if !d.HasProfile {
		c.Redirect(d.NextStep(), http.StatusSeeOther)
		return
	}

	if err := c.Request().ParseForm(); err != nil {
		logger.Error("Error parsing blood form", "error", err)
		SetErrorFlash(s, "Failed to parse form data")
		c.Redirect(stepBlood, http.StatusSeeOther)
		return
	}

	b, err := parseBloodForm(c.Request().Form)
	if err != nil {
		SetErrorFlash(s, inputErrorMessage(err))
		c.Redirect(stepBlood, http.StatusSeeOther)
		return
	}

	b.Age = d.Age

	b, err = bioage.NewBiomarkerPanel(b)
	if err != nil {
		SetErrorFlash(s, inputErrorMessage(err))
		c.Redirect(stepBlood, http.StatusSeeOther)
		return
	}

	saveDraft(s, d.WithBlood(b))
	c.Redirect(stepPhysical, http.StatusSeeOther)
}

// PhysicalForm renders the physical test step
func PhysicalForm(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	d := loadDraft(s)
	if !d.HasProfile || d.Blood == nil {
		c.Redirect(d.NextStep(), http.StatusSeeOther)
		return
	}

	data["Fields"] = physicalFormFields(d.PhysicalOrDefault())
	data["StepNumber"] = 3

	t.HTML(http.StatusOK, "physical")
}

// SavePhysical handles the physical test form submission
func SavePhysical(c flamego.Context, s session.Session) {
	d := loadDraft(s)
	if !d.HasProfile || d.Blood == nil {
		c.Redirect(d.NextStep(), http.StatusSeeOther)
		return
	}

	if err := c.Request().ParseForm(); err != nil {
		logger.Error("Error parsing physical form", "error", err)
		SetErrorFlash(s, "Failed to parse form data")
		c.Redirect(stepPhysical, http.StatusSeeOther)
		return
	}

	p, err := parsePhysicalForm(c.Request().Form)
	if err != nil {
		SetErrorFlash(s, inputErrorMessage(err))
		c.Redirect(stepPhysical, http.StatusSeeOther)
		return
	}

	p.Sex = d.Sex

	p, err = bioage.NewPhysiologyPanel(p)
	if err != nil {
		SetErrorFlash(s, inputErrorMessage(err))
		c.Redirect(stepPhysical, http.StatusSeeOther)
		return
	}

	saveDraft(s, d.WithPhysical(p))
	c.Redirect(stepResults, http.StatusSeeOther)
}

// Reset discards the current draft and returns to the first step
func Reset(c flamego.Context, s session.Session) {
	clearDraft(s)
	SetInfoFlash(s, "Your answers have been cleared")
	c.Redirect(stepProfile, http.StatusSeeOther)
}
