/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/gob"

	"github.com/flamego/session"

	"github.com/humaidq/bioage/bioage"
)

const draftSessionKey = "draft"

// Wizard step paths in order.
const (
	stepProfile  = "/"
	stepBlood    = "/blood"
	stepPhysical = "/physical"
	stepResults  = "/results"
)

// Draft holds the answers collected so far. Values are never mutated in
// place; every With method returns a new Draft.
type Draft struct {
	Name       string
	Sex        bioage.Sex
	Age        int
	HasProfile bool
	Blood      *bioage.BiomarkerPanel
	Physical   *bioage.PhysiologyPanel
}

func init() {
	gob.Register(Draft{})
}

// WithProfile returns a copy of d with the profile step answered. The panels
// already entered pick up the new age and sex.
func (d Draft) WithProfile(name string, sex bioage.Sex, age int) Draft {
	next := d.clone()
	next.Name = name
	next.Sex = sex
	next.Age = age
	next.HasProfile = true

	if next.Blood != nil {
		next.Blood.Age = age
	}

	if next.Physical != nil {
		next.Physical.Sex = sex
	}

	return next
}

// WithBlood returns a copy of d holding b, with the age taken from the profile.
func (d Draft) WithBlood(b bioage.BiomarkerPanel) Draft {
	next := d.clone()
	b.Age = d.Age
	next.Blood = &b

	return next
}

// WithPhysical returns a copy of d holding p, with the sex taken from the profile.
func (d Draft) WithPhysical(p bioage.PhysiologyPanel) Draft {
	next := d.clone()
	p.Sex = d.Sex
	next.Physical = &p

	return next
}

// NextStep returns the path of the first unanswered step, or the results page.
func (d Draft) NextStep() string {
	switch {
	case !d.HasProfile:
		return stepProfile
	case d.Blood == nil:
		return stepBlood
	case d.Physical == nil:
		return stepPhysical
	default:
		return stepResults
	}
}

// Panels returns both panels once every step is answered.
func (d Draft) Panels() (bioage.BiomarkerPanel, bioage.PhysiologyPanel, error) {
	if d.NextStep() != stepResults {
		return bioage.BiomarkerPanel{}, bioage.PhysiologyPanel{}, errDraftIncomplete
	}

	return *d.Blood, *d.Physical, nil
}

// BloodOrDefault returns the entered blood panel or the form defaults.
func (d Draft) BloodOrDefault() bioage.BiomarkerPanel {
	if d.Blood != nil {
		return *d.Blood
	}

	b := bioage.DefaultBiomarkerPanel()
	if d.HasProfile {
		b.Age = d.Age
	}

	return b
}

// PhysicalOrDefault returns the entered physiology panel or the form defaults.
func (d Draft) PhysicalOrDefault() bioage.PhysiologyPanel {
	if d.Physical != nil {
		return *d.Physical
	}

	return bioage.DefaultPhysiologyPanel(d.Sex)
}

func (d Draft) clone() Draft {
	next := d
	if d.Blood != nil {
		b := *d.Blood
		next.Blood = &b
	}

	if d.Physical != nil {
		p := *d.Physical
		next.Physical = &p
	}

	return next
}

func loadDraft(s session.Session) Draft {
	if d, ok := s.Get(draftSessionKey).(Draft); ok {
		return d
	}

	return Draft{}
}

func saveDraft(s session.Session, d Draft) {
	s.Set(draftSessionKey, d)
}

func clearDraft(s session.Session) {
	s.Delete(draftSessionKey)
}
