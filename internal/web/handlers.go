package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vsmetools/validator/internal/results"
	"github.com/vsmetools/validator/internal/validation"
)

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleValidate validates an uploaded workbook.
//
// Request: multipart/form-data with a "file" part (.xlsx) and an
// optional "skip_xbrl" boolean field. Transport preconditions (file
// present, named, right extension) are checked before the pipeline
// runs; failing them is a 400 and never produces a ConversionResult.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "no file selected")
		return
	}
	if !isXLSX(header.Filename) {
		writeError(w, http.StatusBadRequest, "only .xlsx files are supported")
		return
	}

	skipXBRL := parseBoolField(r.FormValue("skip_xbrl"))

	// Buffer the whole upload; the extractor needs random access anyway.
	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	result := s.orch.Run(r.Context(), data, validation.Options{SkipXBRL: skipXBRL})
	result.Filename = header.Filename

	writeJSON(w, statusFor(result), result)
}

// validatePathRequest is the JSON body of POST /validate/path.
type validatePathRequest struct {
	Path     string `json:"path"`
	SkipXBRL bool   `json:"skip_xbrl"`
}

// handleValidatePath validates a workbook already on the server's
// filesystem. Intended for local testing; mirrors /validate otherwise.
func (s *Server) handleValidatePath(w http.ResponseWriter, r *http.Request) {
	var req validatePathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		writeError(w, http.StatusBadRequest, "no path provided")
		return
	}

	info, err := os.Stat(req.Path)
	if err != nil || info.IsDir() {
		writeError(w, http.StatusNotFound, fmt.Sprintf("file not found: %s", req.Path))
		return
	}
	if !isXLSX(req.Path) {
		writeError(w, http.StatusBadRequest, "only .xlsx files are supported")
		return
	}

	data, err := os.ReadFile(req.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	result := s.orch.Run(r.Context(), data, validation.Options{SkipXBRL: req.SkipXBRL})
	result.Filename = filepath.Base(req.Path)

	writeJSON(w, statusFor(result), result)
}

// statusFor maps a finished run to its HTTP status: the API never
// answers 5xx for domain-level problems, 422 means "ran, but the report
// is invalid".
func statusFor(result results.ConversionResult) int {
	if result.Success {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}

func isXLSX(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".xlsx")
}

// parseBoolField parses a form bool leniently; absent or unparsable
// values mean false, matching the skip_xbrl default.
func parseBoolField(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
