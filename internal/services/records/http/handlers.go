// Package http provides http transport for records
package http

import (
	stdhttp "net/http"
	"path/filepath"
	"strconv"
	"strings"

	"pairmatch/internal/modkit/httpkit"
	perr "pairmatch/internal/platform/errors"
	phttp "pairmatch/internal/platform/net/http"
	"pairmatch/internal/services/records/domain"
	svc "pairmatch/internal/services/records/service"
)

const (
	// maxUploadBytes caps an import payload at 200MB
	maxUploadBytes = 200 << 20

	// defaultColumnNumber is the 1-based column read when none is given
	defaultColumnNumber = 22
)

// Register mounts record endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Post("/import", h.upload)
	httpkit.Get(r, "/count", h.count)
	httpkit.Get(r, "/", h.list)
}

type handlers struct{ svc svc.Service }

// @Summary Bulk import records from a CSV upload
// @Tags Records
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV file"
// @Param column_number formData int false "1-based column to import (default 22)"
// @Param max_records formData int false "stop after this many records (0 = unlimited)"
// @Success 200 {object} domain.ImportResult "ok"
// @Router /records/import [post]
func (h *handlers) upload(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	r.Body = stdhttp.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		phttp.RespondError(w, r, perr.InvalidArgf("upload too large or malformed multipart form"))
		return
	}

	file, hdr, err := r.FormFile("file")
	if err != nil {
		phttp.RespondError(w, r, perr.InvalidArgf("missing file field"))
		return
	}
	defer func() { _ = file.Close() }()

	if hdr.Size == 0 {
		phttp.RespondError(w, r, perr.InvalidArgf("uploaded file is empty"))
		return
	}
	if !strings.EqualFold(filepath.Ext(hdr.Filename), ".csv") {
		phttp.RespondError(w, r, perr.InvalidArgf("only .csv files are accepted"))
		return
	}

	columnNumber, err := formInt(r, "column_number", defaultColumnNumber)
	if err != nil || columnNumber < 1 {
		phttp.RespondError(w, r, perr.InvalidArgf("column_number must be a positive integer"))
		return
	}
	maxRecords, err := formInt(r, "max_records", 0)
	if err != nil || maxRecords < 0 {
		phttp.RespondError(w, r, perr.InvalidArgf("max_records must be a non-negative integer"))
		return
	}

	n, err := h.svc.ImportStream(r.Context(), file, columnNumber-1, maxRecords)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	phttp.RespondOK(w, r, domain.ImportResult{Imported: n})
}

// formInt reads an int from form or query with a default for absence
func formInt(r *stdhttp.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// @Summary Count stored records
// @Tags Records
// @Produce json
// @Success 200 {object} domain.CountResult "ok"
// @Router /records/count [get]
func (h *handlers) count(r *stdhttp.Request) (any, error) {
	n, err := h.svc.Count(r.Context())
	if err != nil {
		return nil, err
	}
	return domain.CountResult{Count: n}, nil
}

// @Summary List stored records
// @Tags Records
// @Produce json
// @Param limit query int false "max rows (default 100, cap 500)"
// @Success 200 {array} domain.Record "ok"
// @Router /records [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.InvalidArgf("limit must be an integer")
		}
		limit = n
	}
	return h.svc.List(r.Context(), limit)
}
