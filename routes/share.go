/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/google/uuid"

	"github.com/humaidq/bioage/db"
)

const (
	shareImageMaxBytes = 5 << 20
	// Room for the other multipart fields and boundaries.
	shareFormOverheadBytes = 64 << 10
	shareSniffBytes        = 512
)

var shareImageNamePattern = regexp.MustCompile(`^share_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.(png|jpg)$`)

var shareImageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

// UploadShareImage stores a rendered result card and returns its public URL.
func UploadShareImage(c flamego.Context, svc *Services) {
	if c.Request().Method != http.MethodPost {
		MethodNotAllowed(c)
		return
	}

	if svc == nil || svc.ShareDir == "" {
		logger.Error("Share upload rejected", "error", errShareDirUnavailable)
		writeJSONError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	req := c.Request()
	if req.ContentLength > shareImageMaxBytes+shareFormOverheadBytes {
		writeJSONError(c, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	req.Request.Body = http.MaxBytesReader(c.ResponseWriter(), req.Request.Body, shareImageMaxBytes+shareFormOverheadBytes)

	if err := req.ParseMultipartForm(shareImageMaxBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSONError(c, http.StatusRequestEntityTooLarge, "File too large")
			return
		}

		writeJSONError(c, http.StatusBadRequest, "No image file or upload error")
		return
	}

	file, header, err := req.FormFile("image")
	if err != nil {
		writeJSONError(c, http.StatusBadRequest, "No image file or upload error")
		return
	}

	defer func() {
		if err := file.Close(); err != nil {
			logger.Error("Error closing share upload", "error", err)
		}
	}()

	if header.Size > shareImageMaxBytes {
		writeJSONError(c, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	head := make([]byte, shareSniffBytes)

	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		writeJSONError(c, http.StatusBadRequest, "No image file or upload error")
		return
	}

	head = head[:n]

	contentType, ext, err := detectShareImageType(head)
	if err != nil {
		writeJSONError(c, http.StatusBadRequest, fmt.Sprintf("Invalid file type: %s", contentType))
		return
	}

	name := "share_" + uuid.NewString() + ext

	size, err := writeShareImage(svc.ShareDir, name, io.MultiReader(bytes.NewReader(head), file))
	if err != nil {
		logger.Error("Error storing share image", "name", name, "error", err)
		writeJSONError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	if db.Enabled() {
		input := db.CreateShareImageInput{
			Name:             name,
			ContentType:      contentType,
			SizeBytes:        size,
			ChronologicalAge: optionalInt(req.FormValue("age")),
			IntegralAge:      optionalFloat(req.FormValue("bioAge")),
		}
		if err := db.CreateShareImage(req.Context(), input); err != nil {
			logger.Warn("Failed to record share image", "name", name, "error", err)
		}
	}

	base := svc.publicBase(buildExternalURL(req, "/"))
	writeJSON(c, map[string]string{"url": base + "/share-images/" + name})
}

// ServeShareImage serves a previously uploaded share image.
func ServeShareImage(c flamego.Context, svc *Services) {
	name := c.Param("name")
	if !shareImageNamePattern.MatchString(name) || svc == nil || svc.ShareDir == "" {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
		return
	}

	f, err := os.Open(filepath.Join(svc.ShareDir, name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Error("Error opening share image", "name", name, "error", err)
		}
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			logger.Error("Error closing share image", "name", name, "error", err)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		logger.Error("Error reading share image", "name", name, "error", err)
		c.ResponseWriter().WriteHeader(http.StatusInternalServerError)
		return
	}

	headers := c.ResponseWriter().Header()
	headers.Set("Content-Type", shareImageContentType(c.Request().Context(), name))
	headers.Set("X-Content-Type-Options", "nosniff")
	headers.Set("Cache-Control", "public, max-age=86400")
	headers.Del("Pragma")
	headers.Del("Expires")

	http.ServeContent(c.ResponseWriter(), c.Request().Request, name, info.ModTime(), f)
}

// shareImageContentType prefers the type recorded at upload and falls back
// to the file extension for images stored without a database.
func shareImageContentType(ctx context.Context, name string) string {
	if db.Enabled() {
		img, err := db.GetShareImage(ctx, name)
		switch {
		case err == nil && img.ContentType != "":
			return img.ContentType
		case err != nil && !errors.Is(err, db.ErrShareImageNotFound):
			logger.Warn("Failed to look up share image", "name", name, "error", err)
		}
	}

	if strings.HasSuffix(name, ".jpg") {
		return "image/jpeg"
	}

	return "image/png"
}

// MethodNotAllowed responds with a JSON 405.
func MethodNotAllowed(c flamego.Context) {
	c.ResponseWriter().Header().Set("Allow", http.MethodPost)
	writeJSONError(c, http.StatusMethodNotAllowed, "Method not allowed")
}

func detectShareImageType(head []byte) (string, string, error) {
	contentType := http.DetectContentType(head)
	if ext, ok := shareImageExtensions[contentType]; ok {
		return contentType, ext, nil
	}

	return contentType, "", errUnsupportedImage
}

func writeShareImage(dir, name string, r io.Reader) (int64, error) {
	if !shareImageNamePattern.MatchString(name) {
		return 0, errInvalidShareImage
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create share directory: %w", err)
	}

	target := filepath.Join(dir, name)

	f, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("failed to create share image: %w", err)
	}

	size, err := io.Copy(f, io.LimitReader(r, shareImageMaxBytes+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err == nil && size > shareImageMaxBytes {
		err = errShareImageTooLarge
	}

	if err != nil {
		if removeErr := os.Remove(target); removeErr != nil {
			logger.Warn("Failed to remove partial share image", "name", name, "error", removeErr)
		}
		return 0, err
	}

	return size, nil
}

func optionalInt(raw string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}

	return &v
}

func optionalFloat(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}

	return &v
}
