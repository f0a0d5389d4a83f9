/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	htmltemplate "html/template"
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/bioage/bioage"
	"github.com/humaidq/bioage/db"
)

// Results evaluates the completed draft and renders the result page
func Results(c flamego.Context, s session.Session, svc *Services, t template.Template, data template.Data) {
	d := loadDraft(s)

	b, p, err := d.Panels()
	if err != nil {
		c.Redirect(d.NextStep(), http.StatusSeeOther)
		return
	}

	res, evalErr := bioage.EvaluateWith(svc.estimator(), b, p)
	report := bioage.BuildReport(d.Name, b, p, res, time.Now())

	data["Report"] = report
	data["SexLabel"] = report.Sex.Label()
	data["PhenoDeviations"] = report.DeviationsFor(bioage.ModelPhenoAge)
	data["VoitenkoDeviations"] = report.DeviationsFor(bioage.ModelVoitenko)
	data["StepNumber"] = 4

	if evalErr != nil {
		logger.Warn("Evaluation failed", "error", evalErr)
		data["EvaluationError"] = inputErrorMessage(evalErr)
		t.HTML(http.StatusOK, "results")
		return
	}

	data["BucketLabel"] = report.Bucket.Label()

	if db.Enabled() {
		if stats, err := db.GetFeedbackStats(c.Request().Context()); err != nil {
			logger.Warn("Failed to load feedback stats", "error", err)
		} else if stats.Count > 0 {
			data["FeedbackStats"] = stats
		}
	}

	if gauge, err := renderAgeGauge(report); err != nil {
		logger.Error("Error rendering age gauge", "error", err)
	} else {
		data["GaugeChart"] = htmltemplate.HTML(gauge)
	}

	if bar, err := renderAgeBars(report); err != nil {
		logger.Error("Error rendering age comparison chart", "error", err)
	} else {
		data["BarChart"] = htmltemplate.HTML(bar)
	}

	pageURL := svc.publicBase(buildExternalURL(c.Request(), "/")) + "/"
	data["ShareURL"] = pageURL
	data["ShareText"] = bioage.ShareText(report)
	data["ShareLinks"] = buildShareLinks(pageURL, bioage.ShareText(report))

	if qr, err := generateQRCodeBase64(pageURL); err != nil {
		logger.Error("Error generating share QR code", "error", err)
	} else {
		data["ShareQR"] = qr
	}

	t.HTML(http.StatusOK, "results")
}

func renderAgeGauge(r bioage.ReportData) (string, error) {
	if !r.Complete() {
		return "", nil
	}

	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  "320px",
			ChartID: "integral_age_gauge",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Biological age",
			Subtitle: r.Bucket.Label(),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	gauge.AddSeries("Age", []opts.GaugeData{
		{Name: "Integral", Value: *r.IntegralAge},
	})

	var buf bytes.Buffer
	if err := gauge.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func renderAgeBars(r bioage.ReportData) (string, error) {
	if !r.Complete() {
		return "", nil
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  "320px",
			ChartID: "age_comparison",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Age comparison",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "years",
		}),
	)

	bar.SetXAxis([]string{"Chronological", "PhenoAge", "Voitenko", "Integral"}).
		AddSeries("Age", []opts.BarData{
			{Value: r.ChronologicalAge},
			{Value: *r.PhenoAge},
			{Value: *r.VoitenkoAge},
			{Value: *r.IntegralAge},
		})

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
