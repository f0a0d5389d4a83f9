/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"

	"github.com/humaidq/bioage/logging"
)

var requestLogger = logging.Logger(logging.SourceWebRequest)

// RequestLogger logs request metadata and timing for each HTTP request.
func RequestLogger(c flamego.Context, s session.Session) {
	start := time.Now()

	c.Next()

	status := c.ResponseWriter().Status()
	if status == 0 {
		status = http.StatusOK
	}

	fields := []interface{}{
		"event", "request",
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	fields = append(fields, baseRequestFields(c, s)...)

	requestLogger.Info("request", fields...)
}

func baseRequestFields(c flamego.Context, s session.Session) []interface{} {
	fields := []interface{}{
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"ip", clientIP(c.Request()),
		"device", deviceLabel(c.Request().UserAgent()),
	}

	if s != nil {
		fields = append(fields, "step", loadDraft(s).NextStep())
	}

	return fields
}
