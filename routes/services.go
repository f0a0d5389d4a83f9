/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"strings"

	"github.com/humaidq/bioage/bioage"
)

// Services holds the process-wide collaborators injected into handlers.
type Services struct {
	// Estimator evaluates panels; usually a *bioage.CachedEstimator.
	Estimator bioage.Estimator
	// ShareDir is where uploaded share images are written.
	ShareDir string
	// PublicURL is the absolute base used in share links. When empty the
	// request host is used.
	PublicURL string
}

func (svc *Services) estimator() bioage.Estimator {
	if svc == nil || svc.Estimator == nil {
		return bioage.DirectEstimator()
	}

	return svc.Estimator
}

func (svc *Services) publicBase(fallback string) string {
	if svc != nil && svc.PublicURL != "" {
		return strings.TrimRight(svc.PublicURL, "/")
	}

	return strings.TrimRight(fallback, "/")
}
