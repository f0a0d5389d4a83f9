/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/bioage/cmd"
	"github.com/humaidq/bioage/logging"
)

func main() {
	app := &cli.Command{
		Name:  "bioage",
		Usage: "Biological age calculator",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdMigrate,
			cmd.CmdEvaluate,
			cmd.CmdFeedback,
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		logging.Logger(logging.SourceApp).Error("Command failed", "error", err)
		stop()
		os.Exit(1)
	}
}
