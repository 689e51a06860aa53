package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/termcheck/internal/check"
	"github.com/lehigh-university-libraries/termcheck/internal/check/glossary"
	"github.com/lehigh-university-libraries/termcheck/internal/extract"
	"github.com/lehigh-university-libraries/termcheck/internal/models"
)

// HandleCheck accepts a multipart upload of a glossary file plus source,
// target, and optional benchmark documents, runs a glossary check, and
// stores the result as a session.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uploadDir, err := os.MkdirTemp("", "termcheck-upload-")
	if err != nil {
		h.writeError(w, "Failed to create upload directory: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(uploadDir)

	glossaryPath, glossaryName, ok := h.requireUpload(w, r, uploadDir, "glossary")
	if !ok {
		return
	}
	sourcePath, sourceName, ok := h.requireUpload(w, r, uploadDir, "source")
	if !ok {
		return
	}
	targetPath, targetName, ok := h.requireUpload(w, r, uploadDir, "target")
	if !ok {
		return
	}

	benchmarkPath, benchmarkName, err := h.optionalUpload(r, uploadDir, "benchmark")
	if err != nil {
		h.writeError(w, "Failed to store benchmark upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	includeAccuracy := r.FormValue("include_accuracy") == "true"

	g, err := glossary.NewLoader(glossaryPath).Load()
	if err != nil {
		h.writeError(w, "Failed to load glossary: "+err.Error(), http.StatusBadRequest)
		return
	}

	sourceText, err := extract.File(sourcePath)
	if err != nil {
		h.writeError(w, "Failed to extract source document: "+err.Error(), http.StatusBadRequest)
		return
	}

	targetText, err := extract.File(targetPath)
	if err != nil {
		h.writeError(w, "Failed to extract target document: "+err.Error(), http.StatusBadRequest)
		return
	}

	benchmarkText := ""
	if benchmarkPath != "" {
		benchmarkText, err = extract.File(benchmarkPath)
		if err != nil {
			h.writeError(w, "Failed to extract benchmark document: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	report, err := check.Run(check.Input{
		Glossary:        g,
		SourceText:      sourceText,
		TargetText:      targetText,
		BenchmarkText:   benchmarkText,
		HasBenchmark:    benchmarkPath != "",
		IncludeAccuracy: includeAccuracy,
	})
	if err != nil {
		h.writeError(w, "Check failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Use glossary filename (without extension) as session name, with timestamp for uniqueness
	baseFilename := strings.TrimSuffix(glossaryName, filepath.Ext(glossaryName))
	sessionID := fmt.Sprintf("%s_%d", baseFilename, time.Now().Unix())

	session := &models.CheckSession{
		ID:            sessionID,
		GlossaryName:  glossaryName,
		SourceName:    sourceName,
		TargetName:    targetName,
		BenchmarkName: benchmarkName,
		Report:        report,
		CreatedAt:     time.Now(),
	}
	h.sessionStore.Set(sessionID, session)

	slog.Info("Check completed", "session_id", sessionID, "entries", report.Entries, "rows", len(report.Target.Rows))

	h.writeJSON(w, session)
}

// requireUpload stores a required multipart file and writes an HTTP error
// when it is missing.
func (h *Handler) requireUpload(w http.ResponseWriter, r *http.Request, dir, field string) (path, name string, ok bool) {
	file, header, err := r.FormFile(field)
	if err != nil {
		h.writeError(w, fmt.Sprintf("Missing %q file: %v", field, err), http.StatusBadRequest)
		return "", "", false
	}
	defer file.Close()

	path, err = saveUpload(dir, file, header)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return "", "", false
	}

	return path, header.Filename, true
}

// optionalUpload stores a multipart file when present; absence is not an
// error.
func (h *Handler) optionalUpload(r *http.Request, dir, field string) (path, name string, err error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", "", nil
		}
		return "", "", err
	}
	defer file.Close()

	path, err = saveUpload(dir, file, header)
	if err != nil {
		return "", "", err
	}

	return path, header.Filename, nil
}
