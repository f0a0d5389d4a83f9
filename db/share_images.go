/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// CreateShareImageInput describes an uploaded result card.
type CreateShareImageInput struct {
	Name             string
	ContentType      string
	SizeBytes        int64
	ChronologicalAge *int
	IntegralAge      *float64
}

// CreateShareImage records metadata for a stored share image
func CreateShareImage(ctx context.Context, input CreateShareImageInput) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ErrShareImageNameRequired
	}

	query := `
		INSERT INTO share_images (name, content_type, size_bytes, chronological_age, integral_age)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := pool.Exec(ctx, query,
		name,
		input.ContentType,
		input.SizeBytes,
		input.ChronologicalAge,
		input.IntegralAge,
	); err != nil {
		return fmt.Errorf("failed to insert share image: %w", err)
	}

	return nil
}

// GetShareImage returns the metadata for a share image by file name
func GetShareImage(ctx context.Context, name string) (*ShareImage, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var img ShareImage
	query := `
		SELECT name, content_type, size_bytes, chronological_age, integral_age, created_at
		FROM share_images
		WHERE name = $1
	`
	err := pool.QueryRow(ctx, query, name).Scan(
		&img.Name,
		&img.ContentType,
		&img.SizeBytes,
		&img.ChronologicalAge,
		&img.IntegralAge,
		&img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrShareImageNotFound
		}
		return nil, fmt.Errorf("failed to query share image: %w", err)
	}

	return &img, nil
}

// CountShareImages returns the number of stored share images
func CountShareImages(ctx context.Context) (int, error) {
	if pool == nil {
		return 0, ErrDatabaseConnectionNotInitialized
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM share_images`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count share images: %w", err)
	}

	return count, nil
}
