// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package bioage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	t.Parallel()

	b := DefaultBiomarkerPanel()
	p := DefaultPhysiologyPanel(SexMale)

	res, err := Evaluate(b, p)
	require.NoError(t, err)

	at := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.FixedZone("x", 3600))
	r := BuildReport("  Ivan ", b, p, res, at)

	assert.Equal(t, "Ivan", r.Name)
	assert.Equal(t, at.UTC(), r.GeneratedAt)
	assert.Equal(t, 35, r.ChronologicalAge)
	assert.Equal(t, SexMale, r.Sex)
	assert.True(t, r.Complete())
	assert.Equal(t, BucketNeedsAttention, r.Bucket)
	assert.Equal(t, SeverityWarning, r.Severity)
	require.NotNil(t, r.PhenoGap)
	require.NotNil(t, r.VoitenkoGap)
	assert.Equal(t, b, r.Biomarkers)
	assert.Equal(t, p, r.Physiology)
}

func TestBuildReportIncomplete(t *testing.T) {
	t.Parallel()

	b := DefaultBiomarkerPanel()
	p := DefaultPhysiologyPanel("Unknown")

	res, err := Evaluate(b, p)
	require.Error(t, err)

	r := BuildReport("", b, p, res, time.Now())
	assert.False(t, r.Complete())
	assert.Empty(t, ShareText(r))

	raw, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded["integral_age"])
	assert.Nil(t, decoded["voitenko_age"])
	assert.NotNil(t, decoded["pheno_age"])
	assert.NotContains(t, decoded, "bucket")
}

func TestShareText(t *testing.T) {
	t.Parallel()

	report := func(integral, gap float64) ReportData {
		return ReportData{ChronologicalAge: 40, IntegralAge: &integral, Gap: &gap}
	}

	younger := ShareText(report(36.5, -3.5))
	assert.Contains(t, younger, "My result: 36.5 years (chronological: 40)")
	assert.Contains(t, younger, "3.5 years younger")

	same := ShareText(report(40, 0))
	assert.Contains(t, same, "matches")

	older := ShareText(report(45.2, 5.2))
	assert.Contains(t, older, "Difference: 5.2 years")
}

func TestDeviationsFor(t *testing.T) {
	t.Parallel()

	b := DefaultBiomarkerPanel()
	b.WBC = 12

	p := DefaultPhysiologyPanel(SexMale)
	p.BreathHold = 20

	res, _ := Evaluate(b, p)
	r := BuildReport("", b, p, res, time.Now())

	require.Len(t, r.DeviationsFor(ModelPhenoAge), 1)
	require.Len(t, r.DeviationsFor(ModelVoitenko), 1)
	assert.Equal(t, "wbc", r.DeviationsFor(ModelPhenoAge)[0].Field)
	assert.Equal(t, "breath_hold", r.DeviationsFor(ModelVoitenko)[0].Field)
}
