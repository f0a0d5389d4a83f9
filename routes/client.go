/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net"
	"strings"

	"github.com/flamego/flamego"
)

type userAgentRule struct {
	token string
	label string
}

// First match wins, so tokens contained in other agents come later
// (every Chromium browser also claims "chrome" and "safari").
var (
	platformRules = []userAgentRule{
		{"android", "Android"},
		{"iphone", "iOS"},
		{"ipad", "iOS"},
		{"windows", "Windows"},
		{"macintosh", "macOS"},
		{"linux", "Linux"},
	}
	browserRules = []userAgentRule{
		{"edg/", "Edge"},
		{"yabrowser", "Yandex"},
		{"opr/", "Opera"},
		{"chrome", "Chrome"},
		{"firefox", "Firefox"},
		{"safari", "Safari"},
	}
)

// deviceLabel summarizes a User-Agent as "platform / browser" for request logs.
func deviceLabel(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return "Unknown device"
	}

	ua = strings.ToLower(ua)

	return matchRule(ua, platformRules, "Unknown OS") + " / " + matchRule(ua, browserRules, "Unknown browser")
}

func matchRule(ua string, rules []userAgentRule, fallback string) string {
	for _, rule := range rules {
		if strings.Contains(ua, rule.token) {
			return rule.label
		}
	}

	return fallback
}

// clientIP returns the visitor address, trusting the first proxy hop.
func clientIP(r *flamego.Request) string {
	if ip := firstHeaderValue(r.Header.Get("X-Forwarded-For")); ip != "" {
		return ip
	}

	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
