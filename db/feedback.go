/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// CreateFeedbackInput holds the fields accepted from the feedback form.
type CreateFeedbackInput struct {
	Rating           int
	Body             string
	AuthorName       *string
	ChronologicalAge *int
	Sex              *string
	IntegralAge      *float64
}

// Normalize trims free text and validates the rating and body length.
func (in CreateFeedbackInput) Normalize() (CreateFeedbackInput, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return in, ErrInvalidRating
	}

	in.Body = strings.TrimSpace(in.Body)
	if utf8.RuneCountInString(in.Body) > MaxFeedbackLength {
		return in, ErrFeedbackTooLong
	}

	if in.AuthorName != nil {
		name := strings.TrimSpace(*in.AuthorName)
		if name == "" {
			in.AuthorName = nil
		} else {
			in.AuthorName = &name
		}
	}

	return in, nil
}

// CreateFeedback stores a feedback entry and returns its ID
func CreateFeedback(ctx context.Context, input CreateFeedbackInput) (string, error) {
	if pool == nil {
		return "", ErrDatabaseConnectionNotInitialized
	}

	input, err := input.Normalize()
	if err != nil {
		return "", err
	}

	var id string
	query := `
		INSERT INTO feedback (rating, body, author_name, chronological_age, sex, integral_age)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err = pool.QueryRow(ctx, query,
		input.Rating,
		input.Body,
		input.AuthorName,
		input.ChronologicalAge,
		input.Sex,
		input.IntegralAge,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert feedback: %w", err)
	}

	return id, nil
}

// ListRecentFeedback returns the newest feedback entries first
func ListRecentFeedback(ctx context.Context, limit int) ([]Feedback, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, rating, body, author_name, chronological_age, sex, integral_age, created_at
		FROM feedback
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var entries []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(
			&f.ID,
			&f.Rating,
			&f.Body,
			&f.AuthorName,
			&f.ChronologicalAge,
			&f.Sex,
			&f.IntegralAge,
			&f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		entries = append(entries, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback: %w", err)
	}

	return entries, nil
}

// GetFeedbackStats returns the number of ratings and their mean
func GetFeedbackStats(ctx context.Context) (FeedbackStats, error) {
	var stats FeedbackStats
	if pool == nil {
		return stats, ErrDatabaseConnectionNotInitialized
	}

	query := `SELECT COUNT(*), COALESCE(AVG(rating), 0)::float8 FROM feedback`
	if err := pool.QueryRow(ctx, query).Scan(&stats.Count, &stats.AverageRating); err != nil {
		return stats, fmt.Errorf("failed to query feedback stats: %w", err)
	}

	return stats, nil
}
