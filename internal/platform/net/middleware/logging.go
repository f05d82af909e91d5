package middleware

import (
	"net/http"

	"pairmatch/internal/platform/logger"
	pnet "pairmatch/internal/platform/net"
)

// RequestLogger copies the request id into the logger context so that
// logger.C(ctx) lines carry request_id. Mount after RequestID
func RequestLogger() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := pnet.RequestID(r.Context())
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
				r = r.WithContext(logger.WithRequest(r.Context(), reqID))
			}
			next.ServeHTTP(w, r)
		})
	}
}
