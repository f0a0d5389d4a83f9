/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bioage

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ReportData is the read-only record handed to renderers: the inputs, both
// sub-ages, the integral age and its classification. Numeric results are nil
// when they could not be computed.
type ReportData struct {
	GeneratedAt      time.Time       `json:"generated_at"`
	Name             string          `json:"name,omitempty"`
	ChronologicalAge int             `json:"chronological_age"`
	Sex              Sex             `json:"sex"`
	PhenoAge         *float64        `json:"pheno_age"`
	VoitenkoAge      *float64        `json:"voitenko_age"`
	IntegralAge      *float64        `json:"integral_age"`
	Gap              *float64        `json:"gap"`
	PhenoGap         *float64        `json:"pheno_gap"`
	VoitenkoGap      *float64        `json:"voitenko_gap"`
	Bucket           Bucket          `json:"bucket,omitempty"`
	Severity         Severity        `json:"severity,omitempty"`
	Deviations       []Deviation     `json:"deviations"`
	Biomarkers       BiomarkerPanel  `json:"biomarkers"`
	Physiology       PhysiologyPanel `json:"physiology"`
}

// BuildReport assembles the report of one evaluation.
func BuildReport(name string, b BiomarkerPanel, p PhysiologyPanel, res Result, at time.Time) ReportData {
	return ReportData{
		GeneratedAt:      at.UTC(),
		Name:             strings.TrimSpace(name),
		ChronologicalAge: b.Age,
		Sex:              p.Sex,
		PhenoAge:         copyFloat(res.PhenoAge),
		VoitenkoAge:      copyFloat(res.VoitenkoAge),
		IntegralAge:      copyFloat(res.IntegralAge),
		Gap:              copyFloat(res.Gap),
		PhenoGap:         res.PhenoGap(),
		VoitenkoGap:      res.VoitenkoGap(),
		Bucket:           res.Bucket,
		Severity:         res.Bucket.Severity(),
		Deviations:       AnalyzeDeviations(b, p),
		Biomarkers:       b,
		Physiology:       p,
	}
}

// Complete reports whether the report carries an integral score.
func (r ReportData) Complete() bool {
	return r.IntegralAge != nil && r.Gap != nil
}

// DeviationsFor returns the deviations affecting model m.
func (r ReportData) DeviationsFor(m Model) []Deviation {
	var out []Deviation

	for _, d := range r.Deviations {
		if d.Model == m {
			out = append(out, d)
		}
	}

	return out
}

// ShareText is the caption used when a result is shared. It is empty for an
// incomplete report.
func ShareText(r ReportData) string {
	if !r.Complete() {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("What's your biological age?\n\n")
	fmt.Fprintf(&sb, "My result: %.1f years (chronological: %d)", *r.IntegralAge, r.ChronologicalAge)

	gap := *r.Gap

	switch {
	case gap < 0:
		fmt.Fprintf(&sb, "\n\nI'm %.1f years younger than my age!", math.Abs(gap))
	case gap == 0:
		sb.WriteString("\n\nMy biological age matches my chronological age!")
	default:
		fmt.Fprintf(&sb, "\n\nDifference: %.1f years", gap)
	}

	return sb.String()
}
