/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errMissingField        = errors.New("missing field")
	errInvalidNumber       = errors.New("invalid number")
	errAgeOutOfRange       = errors.New("age out of range")
	errDraftIncomplete     = errors.New("draft incomplete")
	errUnsupportedImage    = errors.New("unsupported image type")
	errShareImageTooLarge  = errors.New("share image too large")
	errInvalidShareImage   = errors.New("invalid share image name")
	errShareDirUnavailable = errors.New("share directory not configured")
)
