/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	ErrDatabaseURLEnvVarNotSet          = errors.New("DATABASE_URL environment variable not set")
	ErrDatabaseNameNotSpecified         = errors.New("database name not specified in DATABASE_URL")
	ErrDatabaseConnectionNotInitialized = errors.New("database connection not initialized")
	ErrInvalidRating                    = errors.New("rating must be between 1 and 5")
	ErrFeedbackTooLong                  = errors.New("feedback text is too long")
	ErrShareImageNameRequired           = errors.New("share image name is required")
	ErrShareImageNotFound               = errors.New("share image not found")
)
