// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"testing"
)

func testContext() context.Context {
	return context.Background()
}

func stringPtr(value string) *string {
	return &value
}

func intPtr(value int) *int {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}

func mustCreateFeedback(t *testing.T, input CreateFeedbackInput) string {
	t.Helper()
	id, err := CreateFeedback(testContext(), input)
	if err != nil {
		t.Fatalf("failed to create feedback: %v", err)
	}
	return id
}
