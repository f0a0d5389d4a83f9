// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/bioage/db"
)

func TestWriteFeedbackSummary(t *testing.T) {
	t.Parallel()

	name := "Anna"
	integral := 41.25

	var out bytes.Buffer
	writeFeedbackSummary(&out, feedbackSummary{
		Stats:       db.FeedbackStats{Count: 2, AverageRating: 4.5},
		ShareImages: 3,
		Recent: []db.Feedback{
			{
				Rating:      5,
				Body:        "Useful",
				AuthorName:  &name,
				IntegralAge: &integral,
				CreatedAt:   time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
			},
			{
				Rating:    4,
				CreatedAt: time.Date(2025, 2, 28, 9, 0, 0, 0, time.UTC),
			},
		},
	})

	text := out.String()
	for _, want := range []string{
		"Ratings:      2 (average 4.50)",
		"Share images: 3",
		"2025-03-01 10:30  5/5  Anna  integral 41.2",
		"  Useful",
		"2025-02-28 09:00  4/5  anonymous  integral n/a",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected summary to contain %q, got:\n%s", want, text)
		}
	}
}

func TestFeedbackCommandRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	app := &cli.Command{
		Name:     "bioage",
		Writer:   &bytes.Buffer{},
		Commands: []*cli.Command{CmdFeedback},
	}

	err := app.Run(context.Background(), []string{"bioage", "feedback"})
	if !errors.Is(err, errDatabaseURLRequired) {
		t.Fatalf("expected errDatabaseURLRequired, got %v", err)
	}
}
