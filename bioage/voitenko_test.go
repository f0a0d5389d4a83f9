// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package bioage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateVoitenkoAgeDefaults(t *testing.T) {
	t.Parallel()

	male, err := EstimateVoitenkoAge(DefaultPhysiologyPanel(SexMale))
	require.NoError(t, err)
	assert.InDelta(t, 67.8, male, 0.1)

	female, err := EstimateVoitenkoAge(DefaultPhysiologyPanel(SexFemale))
	require.NoError(t, err)
	assert.InDelta(t, 7.26, female, 0.02)
}

func TestEstimateVoitenkoAgeUnknownSex(t *testing.T) {
	t.Parallel()

	for _, sex := range []Sex{"Unknown", "", "MALE"} {
		p := DefaultPhysiologyPanel(sex)

		_, err := EstimateVoitenkoAge(p)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnrecognizedCategory)
	}
}

func TestEstimateVoitenkoAgeMaleIgnoresDiastolic(t *testing.T) {
	t.Parallel()

	low := DefaultPhysiologyPanel(SexMale)
	high := low
	high.Diastolic = low.Diastolic + 30

	a, err := EstimateVoitenkoAge(low)
	require.NoError(t, err)

	b, err := EstimateVoitenkoAge(high)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEstimateVoitenkoAgeMonotonic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sex      Sex
		mutate   func(*PhysiologyPanel)
		increase bool
	}{
		{"male systolic", SexMale, func(p *PhysiologyPanel) { p.Systolic += 10 }, true},
		{"male weight", SexMale, func(p *PhysiologyPanel) { p.Weight += 5 }, true},
		{"male breath hold", SexMale, func(p *PhysiologyPanel) { p.BreathHold += 10 }, false},
		{"male balance", SexMale, func(p *PhysiologyPanel) { p.Balance += 5 }, false},
		{"female systolic", SexFemale, func(p *PhysiologyPanel) { p.Systolic += 10 }, true},
		{"female diastolic", SexFemale, func(p *PhysiologyPanel) { p.Diastolic += 10 }, true},
		{"female weight", SexFemale, func(p *PhysiologyPanel) { p.Weight += 5 }, true},
		{"female breath hold", SexFemale, func(p *PhysiologyPanel) { p.BreathHold += 10 }, false},
		{"female balance", SexFemale, func(p *PhysiologyPanel) { p.Balance += 5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base := DefaultPhysiologyPanel(tt.sex)
			changed := base
			tt.mutate(&changed)

			before, err := EstimateVoitenkoAge(base)
			require.NoError(t, err)

			after, err := EstimateVoitenkoAge(changed)
			require.NoError(t, err)

			if tt.increase {
				assert.Greater(t, after, before)
			} else {
				assert.Less(t, after, before)
			}
		})
	}
}
