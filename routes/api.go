/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"

	"github.com/humaidq/bioage/bioage"
)

const apiMaxBodyBytes = 64 << 10

// EvaluateAPI scores a JSON input and responds with the report.
func EvaluateAPI(c flamego.Context, svc *Services) {
	body := http.MaxBytesReader(c.ResponseWriter(), c.Request().Body().ReadCloser(), apiMaxBodyBytes)

	var in bioage.Input

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&in); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSONError(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}

		writeJSONError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	b, p, err := in.Panels()
	if err != nil {
		writeJSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res, err := bioage.EvaluateWith(svc.estimator(), b, p)
	if err != nil {
		logger.Info("API evaluation failed", "error", err)
		writeJSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(c, bioage.BuildReport(in.Name, b, p, res, time.Now()))
}

// ReportJSON downloads the report of the current draft. Failed evaluations
// still produce a report with null ages.
func ReportJSON(c flamego.Context, s session.Session, svc *Services) {
	d := loadDraft(s)

	b, p, err := d.Panels()
	if err != nil {
		writeJSONError(c, http.StatusNotFound, "no completed test in this session")
		return
	}

	res, evalErr := bioage.EvaluateWith(svc.estimator(), b, p)
	if evalErr != nil {
		logger.Warn("Report evaluation failed", "error", evalErr)
	}

	c.ResponseWriter().Header().Set("Content-Disposition", `attachment; filename="bioage-report.json"`)
	writeJSON(c, bioage.BuildReport(d.Name, b, p, res, time.Now()))
}

func writeJSON(c flamego.Context, payload any) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(c.ResponseWriter()).Encode(payload); err != nil {
		logger.Error("Error encoding JSON response", "error", err)
	}
}

func writeJSONError(c flamego.Context, status int, message string) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)

	if err := json.NewEncoder(c.ResponseWriter()).Encode(map[string]string{"error": message}); err != nil {
		logger.Error("Error encoding JSON error", "error", err)
	}
}
