// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/humaidq/bioage/bioage"
)

func postJSON(t *testing.T, svc *Services, body string) *httptest.ResponseRecorder {
	t.Helper()

	f := newTestApp(t, newTestSession(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	return rec
}

func TestEvaluateAPI(t *testing.T) {
	t.Parallel()

	estimator, err := bioage.NewCachedEstimator(8)
	if err != nil {
		t.Fatalf("failed to create estimator: %v", err)
	}

	raw, err := json.Marshal(bioage.DefaultInput(bioage.SexMale))
	if err != nil {
		t.Fatalf("failed to encode input: %v", err)
	}

	rec := postJSON(t, &Services{Estimator: estimator}, string(raw))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected Content-Type: %q", got)
	}

	var report bioage.ReportData
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	if !report.Complete() {
		t.Fatalf("expected a complete report, got %#v", report)
	}

	if report.ChronologicalAge != 35 || report.Sex != bioage.SexMale {
		t.Fatalf("unexpected report profile: %d %q", report.ChronologicalAge, report.Sex)
	}

	if pheno, _ := estimator.Len(); pheno != 1 {
		t.Fatalf("expected the estimator cache to hold one PhenoAge entry, got %d", pheno)
	}
}

func TestEvaluateAPIRejectsBadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "malformed", body: `{"age":`, want: http.StatusBadRequest},
		{name: "unknown field", body: `{"age": 40, "height": 180}`, want: http.StatusBadRequest},
		{name: "unknown sex", body: `{"sex": "other", "age": 40}`, want: http.StatusUnprocessableEntity},
		{name: "invalid panel", body: `{"sex": "male", "age": 40}`, want: http.StatusUnprocessableEntity},
		{name: "too large", body: `{"name": "` + strings.Repeat("a", apiMaxBodyBytes) + `"}`, want: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := postJSON(t, &Services{}, tt.body)
			if rec.Code != tt.want {
				t.Fatalf("expected status %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}

			var payload map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("failed to decode error payload: %v", err)
			}

			if payload["error"] == "" {
				t.Fatalf("expected error message in payload")
			}
		})
	}
}

func TestEvaluateAPIEvaluationFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*bioage.Input)
	}{
		{name: "mortality score saturates", modify: func(in *bioage.Input) { in.Glucose = 1e6 }},
		{name: "mortality score vanishes", modify: func(in *bioage.Input) { in.Albumin = 1e6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := bioage.DefaultInput(bioage.SexFemale)
			tt.modify(&in)

			if _, _, err := in.Panels(); err != nil {
				t.Fatalf("expected input to pass validation, got %v", err)
			}

			raw, err := json.Marshal(in)
			if err != nil {
				t.Fatalf("failed to encode input: %v", err)
			}

			rec := postJSON(t, &Services{}, string(raw))
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected status %d, got %d: %s", http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
			}

			var payload map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("failed to decode error payload: %v", err)
			}

			if !strings.Contains(payload["error"], "incomplete computation") {
				t.Fatalf("expected incomplete computation error, got %q", payload["error"])
			}
		})
	}
}

func TestReportJSON(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	f := newTestApp(t, s, &Services{})

	rec := performGET(t, f, "/report.json")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d without a draft, got %d", http.StatusNotFound, rec.Code)
	}

	saveDraft(s, completedDraft(bioage.SexFemale))

	rec = performGET(t, f, "/report.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "bioage-report.json") {
		t.Fatalf("unexpected Content-Disposition: %q", got)
	}

	var report bioage.ReportData
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	if report.Name != "Anna" || report.Sex != bioage.SexFemale || !report.Complete() {
		t.Fatalf("unexpected report: %#v", report)
	}
}

func TestReportJSONKeepsFailedEvaluation(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	f := newTestApp(t, s, &Services{})

	b := bioage.DefaultBiomarkerPanel()
	b.Glucose = 1e6

	saveDraft(s, Draft{}.
		WithProfile("", bioage.SexMale, 35).
		WithBlood(b).
		WithPhysical(bioage.DefaultPhysiologyPanel(bioage.SexMale)))

	rec := performGET(t, f, "/report.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	if payload["pheno_age"] != nil || payload["integral_age"] != nil {
		t.Fatalf("expected null ages, got pheno=%v integral=%v", payload["pheno_age"], payload["integral_age"])
	}

	if payload["voitenko_age"] == nil {
		t.Fatalf("expected Voitenko age to be present")
	}
}
