// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package bioage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputPanelsRoundTrip(t *testing.T) {
	t.Parallel()

	b := DefaultBiomarkerPanel()
	p := DefaultPhysiologyPanel(SexFemale)

	gotB, gotP, err := NewInput("Anna", b, p).Panels()
	require.NoError(t, err)

	assert.Equal(t, b, gotB)
	assert.Equal(t, p, gotP)
}

func TestInputPanelsParsesSex(t *testing.T) {
	t.Parallel()

	in := DefaultInput(SexMale)
	in.Sex = " Женский "

	_, p, err := in.Panels()
	require.NoError(t, err)
	assert.Equal(t, SexFemale, p.Sex)
}

func TestInputPanelsRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Input)
		kind   error
	}{
		{name: "unknown sex", mutate: func(in *Input) { in.Sex = "other" }, kind: ErrUnrecognizedCategory},
		{name: "empty sex", mutate: func(in *Input) { in.Sex = "" }, kind: ErrUnrecognizedCategory},
		{name: "young", mutate: func(in *Input) { in.Age = 17 }, kind: ErrInvalidPanel},
		{name: "zero albumin", mutate: func(in *Input) { in.Albumin = 0 }, kind: ErrInvalidPanel},
		{name: "negative crp", mutate: func(in *Input) { in.CRP = -1 }, kind: ErrInvalidPanel},
		{name: "zero weight", mutate: func(in *Input) { in.Weight = 0 }, kind: ErrInvalidPanel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := DefaultInput(SexMale)
			tt.mutate(&in)

			_, _, err := in.Panels()
			require.ErrorIs(t, err, tt.kind)
		})
	}
}
