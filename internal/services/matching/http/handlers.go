// Package http provides http transport for matching sessions
package http

import (
	stdhttp "net/http"

	"pairmatch/internal/modkit/httpkit"
	perr "pairmatch/internal/platform/errors"
	"pairmatch/internal/services/matching/domain"
	svc "pairmatch/internal/services/matching/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Register mounts session endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Post(r, "/", h.start)
	httpkit.Get(r, "/{sessionID}/next", h.next)
	httpkit.PostJSON[domain.SubmitEvaluationInput](r, "/{sessionID}/evaluations", h.submit)
	httpkit.Get(r, "/{sessionID}/progress", h.progress)
}

type handlers struct{ svc svc.Service }

func sessionID(r *stdhttp.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "sessionID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, perr.InvalidArgf("invalid session id %q", raw)
	}
	return id, nil
}

// @Summary Start a judging session
// @Tags Sessions
// @Produce json
// @Success 201 {object} domain.Session "created"
// @Router /sessions [post]
func (h *handlers) start(_ *stdhttp.Request) (any, error) {
	return httpkit.Created(domain.Session{SessionID: uuid.New()}), nil
}

// @Summary Fetch the next unjudged pair for a session
// @Tags Sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} domain.NextResult "ok"
// @Router /sessions/{sessionID}/next [get]
func (h *handlers) next(r *stdhttp.Request) (any, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.NextPair(r.Context(), id)
}

// @Summary Submit one judgment for a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param payload body domain.SubmitEvaluationInput true "Judgment"
// @Success 201 "created"
// @Router /sessions/{sessionID}/evaluations [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitEvaluationInput) (any, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	in.SessionID = id
	if err := h.svc.SubmitEvaluation(r.Context(), in); err != nil {
		return nil, err
	}
	return httpkit.Created(nil), nil
}

// @Summary Session progress
// @Tags Sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} domain.Progress "ok"
// @Router /sessions/{sessionID}/progress [get]
func (h *handlers) progress(r *stdhttp.Request) (any, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Progress(r.Context(), id)
}
