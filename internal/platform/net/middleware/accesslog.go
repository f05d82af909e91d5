package middleware

import (
	"net/http"
	"time"

	"pairmatch/internal/platform/logger"
)

type captureWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (c *captureWriter) WriteHeader(code int) {
	c.status = code
	c.ResponseWriter.WriteHeader(code)
}

func (c *captureWriter) Write(b []byte) (int, error) {
	if c.status == 0 {
		c.status = http.StatusOK
	}
	n, err := c.ResponseWriter.Write(b)
	c.bytes += n
	return n, err
}

// AccessLog emits one structured line per request
func AccessLog() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			cw := &captureWriter{ResponseWriter: w}
			next.ServeHTTP(cw, r)
			status := cw.status
			if status == 0 {
				status = http.StatusOK
			}
			evt := logger.C(r.Context()).Info()
			if status >= 500 {
				evt = logger.C(r.Context()).Error()
			}
			evt.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", cw.bytes).
				Dur("dur", time.Since(start)).
				Str("remote", r.RemoteAddr).
				Msg("http request")
		})
	}
}
