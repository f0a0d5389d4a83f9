/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	htmltemplate "html/template"
	"net/url"
	"strings"
	"time"
)

var safeDataImagePrefixes = []string{
	"data:image/png;base64,",
	"data:image/jpeg;base64,",
	"data:image/gif;base64,",
	"data:image/webp;base64,",
}

// TemplateFuncs returns the helpers available to every page template.
func TemplateFuncs() htmltemplate.FuncMap {
	return htmltemplate.FuncMap{
		"safeImageURL": safeImageURL,
		"qrDataURL":    qrDataURL,
		"formatAge":    formatAge,
		"formatGap":    formatGap,
		"year": func() int {
			return time.Now().Year()
		},
	}
}

// safeImageURL allows data URLs of raster images and http(s) URLs in img src.
func safeImageURL(value *string) htmltemplate.URL {
	if value == nil {
		return ""
	}

	v := strings.TrimSpace(*value)

	lower := strings.ToLower(v)
	for _, prefix := range safeDataImagePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return htmltemplate.URL(v) // #nosec G203 -- prefix restricted to raster data images
		}
	}

	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}

	return htmltemplate.URL(u.String()) // #nosec G203 -- scheme restricted to http(s)
}

func qrDataURL(encoded string) htmltemplate.URL {
	v := "data:image/png;base64," + encoded
	return safeImageURL(&v)
}

// formatAge renders an optional age with one decimal.
func formatAge(v *float64) string {
	if v == nil {
		return "n/a"
	}

	return fmt.Sprintf("%.1f", *v)
}

// formatGap renders an optional gap with an explicit sign.
func formatGap(v *float64) string {
	if v == nil {
		return "n/a"
	}

	return fmt.Sprintf("%+.1f", *v)
}
