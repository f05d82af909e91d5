package httpkit

import (
	"net/http"
	"time"

	"pairmatch/internal/platform/net/middleware"
)

// CommonStack returns the baseline middleware slice for the API
// compose with extra middleware in main as needed
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestLogger(),

		// safety
		middleware.RecoverJSON(),

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLog(),

		// cross-origin
		middleware.CORS([]string{"*"}),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
