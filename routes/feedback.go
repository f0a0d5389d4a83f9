/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"

	"github.com/humaidq/bioage/bioage"
	"github.com/humaidq/bioage/db"
)

// SubmitFeedback stores a rating left on the results page
func SubmitFeedback(c flamego.Context, s session.Session, svc *Services) {
	if err := c.Request().ParseForm(); err != nil {
		logger.Error("Error parsing feedback form", "error", err)
		SetErrorFlash(s, "Failed to parse form data")
		c.Redirect(stepResults, http.StatusSeeOther)
		return
	}

	form := c.Request().Form

	rating, err := strconv.Atoi(strings.TrimSpace(form.Get("rating")))
	if err != nil {
		SetErrorFlash(s, "Please choose a rating from 1 to 5")
		c.Redirect(stepResults, http.StatusSeeOther)
		return
	}

	input, err := db.CreateFeedbackInput{
		Rating: rating,
		Body:   form.Get("feedback"),
	}.Normalize()
	if err != nil {
		SetErrorFlash(s, feedbackErrorMessage(err))
		c.Redirect(stepResults, http.StatusSeeOther)
		return
	}

	attachResult(&input, loadDraft(s), svc)

	if !db.Enabled() {
		logger.Info("Feedback received",
			"rating", input.Rating,
			"body", input.Body,
			"age", input.ChronologicalAge,
			"integral_age", input.IntegralAge,
		)
		SetSuccessFlash(s, "Thank you for your feedback!")
		c.Redirect(stepResults, http.StatusSeeOther)
		return
	}

	if _, err := db.CreateFeedback(c.Request().Context(), input); err != nil {
		logger.Error("Error saving feedback", "error", err)
		SetErrorFlash(s, "Failed to save feedback")
		c.Redirect(stepResults, http.StatusSeeOther)
		return
	}

	SetSuccessFlash(s, "Thank you for your feedback!")
	c.Redirect(stepResults, http.StatusSeeOther)
}

// attachResult copies the profile and integral age of the current result
// onto the feedback entry.
func attachResult(input *db.CreateFeedbackInput, d Draft, svc *Services) {
	if !d.HasProfile {
		return
	}

	age := d.Age
	sex := string(d.Sex)
	input.ChronologicalAge = &age
	input.Sex = &sex

	if d.Name != "" {
		name := d.Name
		input.AuthorName = &name
	}

	b, p, err := d.Panels()
	if err != nil {
		return
	}

	res, err := bioage.EvaluateWith(svc.estimator(), b, p)
	if err == nil {
		input.IntegralAge = res.IntegralAge
	}
}

func feedbackErrorMessage(err error) string {
	switch {
	case errors.Is(err, db.ErrInvalidRating):
		return "Please choose a rating from 1 to 5"
	case errors.Is(err, db.ErrFeedbackTooLong):
		return fmt.Sprintf("Feedback must be at most %d characters", db.MaxFeedbackLength)
	}

	return "Failed to save feedback"
}
