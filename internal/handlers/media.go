// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"eventpress/internal/models"
)

// maxUploadSize is the maximum allowed file upload size (50 MB).
const maxUploadSize = 50 << 20

// MediaUpload handles multipart file upload to object storage and
// persists the media record with its resolved public URL. The record is
// immutable from this point on.
func (a *API) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	// Limit request body to maxUploadSize + some overhead for form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, "File too large. Maximum size is 50 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "No file provided.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, "File too large. Maximum size is 50 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Generate a unique storage key under media/<year>/<month>/.
	now := time.Now()
	ext := filepath.Ext(header.Filename)
	fileID := uuid.New().String()
	objectKey := fmt.Sprintf("media/%d/%02d/%s%s", now.Year(), now.Month(), fileID, ext)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeError(w, "Failed to read file.", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	if err := a.storageClient.Upload(ctx, objectKey, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", objectKey)
		writeError(w, "Failed to upload file.", http.StatusInternalServerError)
		return
	}

	// The URL is resolved once at upload time and stored with the row.
	media := &models.Media{
		Filename:     fileID + ext,
		OriginalName: header.Filename,
		ContentType:  contentType,
		SizeBytes:    int64(len(fileBytes)),
		Bucket:       a.storageClient.Bucket(),
		ObjectKey:    objectKey,
		URL:          a.storageClient.FileURL(objectKey),
	}

	created, err := a.mediaStore.Create(media)
	if err != nil {
		slog.Error("media db insert failed", "error", err, "key", objectKey)
		writeError(w, "Failed to save file metadata.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// MediaList returns media items with pagination.
func (a *API) MediaList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	items, err := a.mediaStore.List(limit, offset)
	if err != nil {
		slog.Error("list media failed", "error", err)
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// MediaGet returns a single media record by ID.
func (a *API) MediaGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "Invalid ID.", http.StatusBadRequest)
		return
	}

	media, err := a.mediaStore.FindByID(id)
	if err != nil {
		slog.Error("media lookup failed", "error", err)
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if media == nil {
		writeError(w, "Not Found.", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, media)
}
