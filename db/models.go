/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"time"

	"github.com/google/uuid"
)

// MaxFeedbackLength is the longest feedback body accepted, in characters.
const MaxFeedbackLength = 2000

// Feedback is a rating left on the results page.
type Feedback struct {
	ID               uuid.UUID `db:"id"`
	Rating           int       `db:"rating"`
	Body             string    `db:"body"`
	AuthorName       *string   `db:"author_name"`
	ChronologicalAge *int      `db:"chronological_age"`
	Sex              *string   `db:"sex"`
	IntegralAge      *float64  `db:"integral_age"`
	CreatedAt        time.Time `db:"created_at"`
}

// FeedbackStats summarizes stored ratings.
type FeedbackStats struct {
	Count         int
	AverageRating float64
}

// ShareImage records an uploaded result card.
type ShareImage struct {
	Name             string    `db:"name"`
	ContentType      string    `db:"content_type"`
	SizeBytes        int64     `db:"size_bytes"`
	ChronologicalAge *int      `db:"chronological_age"`
	IntegralAge      *float64  `db:"integral_age"`
	CreatedAt        time.Time `db:"created_at"`
}
