package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	perr "pairmatch/internal/platform/errors"
	"pairmatch/internal/platform/logger"
	pnet "pairmatch/internal/platform/net"
)

type panicWire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code"`
	Error      string         `json:"error"`
	RequestID  string         `json:"request_id,omitempty"`
}

// RecoverJSON converts handler panics into a JSON 500 and logs the stack
func RecoverJSON() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.C(r.Context()).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("path", r.URL.Path).
					Msg("handler panic")

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(panicWire{
					StatusCode: http.StatusInternalServerError,
					Status:     http.StatusText(http.StatusInternalServerError),
					Code:       perr.ErrorCodePanic,
					Error:      "internal server error",
					RequestID:  pnet.RequestID(r.Context()),
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
