/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/humaidq/bioage/bioage"
)

var CmdEvaluate = &cli.Command{
	Name:  "evaluate",
	Usage: "Compute the biological age from a YAML file or flags",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "YAML file with the input fields (flags override file values)",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print the full report as JSON",
		},
		&cli.StringFlag{Name: "name", Usage: "name shown in the report"},
		&cli.StringFlag{Name: "sex", Usage: "male or female"},
		&cli.IntFlag{Name: "age", Usage: "chronological age in years"},
		&cli.FloatFlag{Name: "albumin", Usage: "albumin, g/L"},
		&cli.FloatFlag{Name: "creatinine", Usage: "creatinine, µmol/L"},
		&cli.FloatFlag{Name: "glucose", Usage: "glucose, mmol/L"},
		&cli.FloatFlag{Name: "crp", Usage: "C-reactive protein, mg/L"},
		&cli.FloatFlag{Name: "lymphocyte", Usage: "lymphocytes, %"},
		&cli.FloatFlag{Name: "mcv", Usage: "mean corpuscular volume, fL"},
		&cli.FloatFlag{Name: "rdw", Usage: "red cell distribution width, %"},
		&cli.FloatFlag{Name: "alp", Usage: "alkaline phosphatase, U/L"},
		&cli.FloatFlag{Name: "wbc", Usage: "white blood cells, 10^9/L"},
		&cli.FloatFlag{Name: "systolic", Usage: "systolic pressure, mmHg"},
		&cli.FloatFlag{Name: "diastolic", Usage: "diastolic pressure, mmHg"},
		&cli.FloatFlag{Name: "breath-hold", Usage: "breath hold after inhale, seconds"},
		&cli.FloatFlag{Name: "balance", Usage: "static balance on one leg, seconds"},
		&cli.FloatFlag{Name: "weight", Usage: "body weight, kg"},
	},
	Action: evaluate,
}

func evaluate(ctx context.Context, cmd *cli.Command) error {
	in := bioage.DefaultInput(bioage.SexMale)

	if path := cmd.String("input"); path != "" {
		loaded, err := loadInputFile(path)
		if err != nil {
			return err
		}
		in = loaded
	}

	applyInputFlags(cmd, &in)

	b, p, err := in.Panels()
	if err != nil {
		return err
	}

	res, evalErr := bioage.Evaluate(b, p)
	report := bioage.BuildReport(in.Name, b, p, res, time.Now())

	engineLogger.Debug("Evaluated input", "age", b.Age, "sex", p.Sex, "complete", res.Complete())

	if cmd.Bool("json") {
		if err := writeReportJSON(cmd.Root().Writer, report); err != nil {
			return err
		}
	} else {
		writeReportText(cmd.Root().Writer, report)
	}

	return evalErr
}

// loadInputFile reads a YAML input. Missing keys keep their zero value, so
// files are expected to list every field.
func loadInputFile(path string) (bioage.Input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return bioage.Input{}, fmt.Errorf("failed to read input file: %w", err)
	}

	return parseInputYAML(raw)
}

func parseInputYAML(raw []byte) (bioage.Input, error) {
	var in bioage.Input
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return bioage.Input{}, fmt.Errorf("failed to parse input file: %w", err)
	}

	return in, nil
}

func applyInputFlags(cmd *cli.Command, in *bioage.Input) {
	if cmd.IsSet("name") {
		in.Name = cmd.String("name")
	}
	if cmd.IsSet("sex") {
		in.Sex = cmd.String("sex")
	}
	if cmd.IsSet("age") {
		in.Age = cmd.Int("age")
	}

	floats := map[string]*float64{
		"albumin":     &in.Albumin,
		"creatinine":  &in.Creatinine,
		"glucose":     &in.Glucose,
		"crp":         &in.CRP,
		"lymphocyte":  &in.Lymphocyte,
		"mcv":         &in.MCV,
		"rdw":         &in.RDW,
		"alp":         &in.ALP,
		"wbc":         &in.WBC,
		"systolic":    &in.Systolic,
		"diastolic":   &in.Diastolic,
		"breath-hold": &in.BreathHold,
		"balance":     &in.Balance,
		"weight":      &in.Weight,
	}
	for name, target := range floats {
		if cmd.IsSet(name) {
			*target = cmd.Float(name)
		}
	}
}

func writeReportJSON(w io.Writer, report bioage.ReportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}

func writeReportText(w io.Writer, r bioage.ReportData) {
	var sb strings.Builder

	if r.Name != "" {
		fmt.Fprintf(&sb, "Name:              %s\n", r.Name)
	}
	fmt.Fprintf(&sb, "Chronological age: %d\n", r.ChronologicalAge)
	fmt.Fprintf(&sb, "Sex:               %s\n", r.Sex.Label())
	fmt.Fprintf(&sb, "PhenoAge:          %s\n", formatOptional(r.PhenoAge, "%.1f"))
	fmt.Fprintf(&sb, "Voitenko age:      %s\n", formatOptional(r.VoitenkoAge, "%.1f"))
	fmt.Fprintf(&sb, "Integral age:      %s\n", formatOptional(r.IntegralAge, "%.1f"))
	fmt.Fprintf(&sb, "Difference:        %s\n", formatOptional(r.Gap, "%+.1f"))

	if r.Complete() {
		fmt.Fprintf(&sb, "Assessment:        %s\n", r.Bucket.Label())
	}

	if len(r.Deviations) > 0 {
		sb.WriteString("\nOutside the reference range:\n")
		for _, d := range r.Deviations {
			fmt.Fprintf(&sb, "  %-28s %8.2f %-8s normal %s (%s)\n", d.Name, d.Value, d.Unit, d.Normal, d.Status)
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		engineLogger.Error("Failed to write report", "error", err)
	}
}

func formatOptional(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}

	return fmt.Sprintf(format, *v)
}
