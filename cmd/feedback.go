/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/bioage/db"
)

const defaultFeedbackLimit = 20

var CmdFeedback = &cli.Command{
	Name:  "feedback",
	Usage: "Show stored ratings, recent feedback and share image totals",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string",
		},
		&cli.IntFlag{
			Name:  "limit",
			Value: defaultFeedbackLimit,
			Usage: "number of recent entries to list",
		},
	},
	Action: showFeedback,
}

// feedbackSummary is what the feedback command prints.
type feedbackSummary struct {
	Stats       db.FeedbackStats
	ShareImages int
	Recent      []db.Feedback
}

func showFeedback(ctx context.Context, cmd *cli.Command) error {
	databaseURL := cmd.String("database-url")
	if databaseURL == "" {
		return errDatabaseURLRequired
	}

	if err := os.Setenv("DATABASE_URL", databaseURL); err != nil {
		return fmt.Errorf("failed to set DATABASE_URL: %w", err)
	}

	if err := db.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	summary, err := loadFeedbackSummary(ctx, cmd.Int("limit"))
	if err != nil {
		return err
	}

	writeFeedbackSummary(cmd.Root().Writer, summary)

	return nil
}

func loadFeedbackSummary(ctx context.Context, limit int) (feedbackSummary, error) {
	var summary feedbackSummary

	stats, err := db.GetFeedbackStats(ctx)
	if err != nil {
		return summary, err
	}

	shareImages, err := db.CountShareImages(ctx)
	if err != nil {
		return summary, err
	}

	recent, err := db.ListRecentFeedback(ctx, limit)
	if err != nil {
		return summary, err
	}

	summary.Stats = stats
	summary.ShareImages = shareImages
	summary.Recent = recent

	return summary, nil
}

func writeFeedbackSummary(w io.Writer, s feedbackSummary) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Ratings:      %d (average %.2f)\n", s.Stats.Count, s.Stats.AverageRating)
	fmt.Fprintf(&sb, "Share images: %d\n", s.ShareImages)

	for _, f := range s.Recent {
		author := "anonymous"
		if f.AuthorName != nil {
			author = *f.AuthorName
		}

		fmt.Fprintf(&sb, "\n%s  %d/5  %s  integral %s\n",
			f.CreatedAt.UTC().Format("2006-01-02 15:04"), f.Rating, author, formatOptional(f.IntegralAge, "%.1f"))

		if f.Body != "" {
			fmt.Fprintf(&sb, "  %s\n", f.Body)
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		appLogger.Error("Failed to write feedback summary", "error", err)
	}
}
