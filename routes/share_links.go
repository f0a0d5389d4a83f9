/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/flamego/flamego"
	"github.com/skip2/go-qrcode"
)

const shareTitle = "What's your biological age?"

// ShareLink is a prepared link to a social network share dialog.
type ShareLink struct {
	Network string
	URL     string
}

// buildShareLinks returns the VK, Telegram and WhatsApp share dialogs for
// pageURL with the caption text.
func buildShareLinks(pageURL, text string) []ShareLink {
	vk := url.Values{}
	vk.Set("url", pageURL)
	vk.Set("title", shareTitle)
	vk.Set("description", text)

	telegram := url.Values{}
	telegram.Set("url", pageURL)
	telegram.Set("text", text)

	whatsapp := url.Values{}
	whatsapp.Set("text", text+"\n\n"+pageURL)

	return []ShareLink{
		{Network: "VK", URL: "https://vk.com/share.php?" + vk.Encode()},
		{Network: "Telegram", URL: "https://t.me/share/url?" + telegram.Encode()},
		{Network: "WhatsApp", URL: "https://wa.me/?" + whatsapp.Encode()},
	}
}

func generateQRCodeBase64(value string) (string, error) {
	png, err := qrcode.Encode(value, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate qr code: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}

// buildExternalURL resolves p against the scheme and host the client used,
// honouring reverse proxy headers.
func buildExternalURL(r *flamego.Request, p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	host := firstHeaderValue(r.Header.Get("X-Forwarded-Host"))
	if host == "" {
		host = r.Host
	}

	if host == "" {
		return p
	}

	scheme := firstHeaderValue(r.Header.Get("X-Forwarded-Proto"))
	if scheme == "" {
		scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
	}

	return scheme + "://" + host + p
}

func firstHeaderValue(value string) string {
	first, _, _ := strings.Cut(value, ",")
	return strings.TrimSpace(first)
}
