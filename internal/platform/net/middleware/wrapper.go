// Package middleware wraps chi and cors middleware behind project names
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Middleware is the standard middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID tags every request with a request id
func RequestID() Middleware { return chimw.RequestID }

// RealIP trusts X-Forwarded-For style headers for the remote addr
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Heartbeat answers the given path with 200 without touching handlers
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// NoCache sets headers that disable client caching
func NoCache() Middleware { return chimw.NoCache }

// StripSlashes normalizes trailing slashes before routing
func StripSlashes() Middleware { return chimw.StripSlashes }

// CORS applies a permissive browser policy suitable for the API
func CORS(allowedOrigins []string) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
