package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/lehigh-university-libraries/termcheck/internal/models"
	"github.com/lehigh-university-libraries/termcheck/internal/storage"
)

type Handler struct {
	sessionStore *storage.SessionStore
}

func New() *Handler {
	return &Handler{
		sessionStore: storage.New(),
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, sessionID string) (*models.CheckSession, bool) {
	session, exists := h.sessionStore.Get(sessionID)
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

// saveUpload writes one multipart file into dir, preserving the uploaded
// file's extension so format detection keeps working. Uploads are capped at
// 20MB each.
func saveUpload(dir string, file multipart.File, header *multipart.FileHeader) (string, error) {
	const maxUploadSize = 20 * 1024 * 1024

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return "", fmt.Errorf("failed to read upload %s: %w", header.Filename, err)
	}
	if len(data) >= maxUploadSize {
		return "", fmt.Errorf("file too large (max 20MB): %s", header.Filename)
	}

	path := filepath.Join(dir, filepath.Base(header.Filename))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to store upload %s: %w", header.Filename, err)
	}

	return path, nil
}
