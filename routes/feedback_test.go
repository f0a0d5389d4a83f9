// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/humaidq/bioage/bioage"
	"github.com/humaidq/bioage/db"
)

func TestSubmitFeedbackWithoutDatabase(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	f := newTestApp(t, s, &Services{})

	saveDraft(s, completedDraft(bioage.SexMale))

	rec := performFormPOST(t, f, "/feedback", url.Values{
		"rating":   {"5"},
		"feedback": {"Very interesting"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	if got := rec.Header().Get("Location"); got != stepResults {
		t.Fatalf("expected redirect to %q, got %q", stepResults, got)
	}

	if msg := flashOf(t, s); msg.Type != FlashSuccess {
		t.Fatalf("unexpected flash: %#v", msg)
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{name: "missing rating", form: url.Values{"feedback": {"hi"}}, want: "rating from 1 to 5"},
		{name: "rating out of range", form: url.Values{"rating": {"9"}}, want: "rating from 1 to 5"},
		{name: "too long", form: url.Values{"rating": {"3"}, "feedback": {strings.Repeat("я", db.MaxFeedbackLength+1)}}, want: "at most 2000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSession()
			f := newTestApp(t, s, &Services{})

			rec := performFormPOST(t, f, "/feedback", tt.form)
			if got := rec.Header().Get("Location"); got != stepResults {
				t.Fatalf("expected redirect to %q, got %q", stepResults, got)
			}

			msg := flashOf(t, s)
			if msg.Type != FlashError || !strings.Contains(msg.Message, tt.want) {
				t.Fatalf("unexpected flash: %#v", msg)
			}
		})
	}
}

func TestAttachResult(t *testing.T) {
	t.Parallel()

	var empty db.CreateFeedbackInput
	attachResult(&empty, Draft{}, &Services{})

	if empty.ChronologicalAge != nil || empty.Sex != nil || empty.IntegralAge != nil {
		t.Fatalf("expected no result attached without a profile: %#v", empty)
	}

	var input db.CreateFeedbackInput
	attachResult(&input, completedDraft(bioage.SexMale), &Services{})

	if input.ChronologicalAge == nil || *input.ChronologicalAge != 35 {
		t.Fatalf("unexpected chronological age: %v", input.ChronologicalAge)
	}

	if input.Sex == nil || *input.Sex != "male" {
		t.Fatalf("unexpected sex: %v", input.Sex)
	}

	if input.AuthorName == nil || *input.AuthorName != "Anna" {
		t.Fatalf("unexpected author name: %v", input.AuthorName)
	}

	if input.IntegralAge == nil {
		t.Fatalf("expected integral age to be attached")
	}

	var partial db.CreateFeedbackInput
	attachResult(&partial, Draft{}.WithProfile("", bioage.SexFemale, 50), &Services{})

	if partial.ChronologicalAge == nil || partial.IntegralAge != nil || partial.AuthorName != nil {
		t.Fatalf("unexpected partial attachment: %#v", partial)
	}
}
