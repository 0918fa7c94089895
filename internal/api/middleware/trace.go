package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/platform/logger"
)

// TraceIDHeader echoes the request's trace ID back to the client.
const TraceIDHeader = "X-Trace-ID"

// NewTraceMiddleware returns middleware that assigns every request a trace
// ID and stores a logger carrying it in the request context. Handlers pick
// it up with logger.FromContextOrDefault. It should be applied early in the
// middleware chain.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TraceMiddleware is NewTraceMiddleware over the default logger.
func TraceMiddleware(next http.Handler) http.Handler {
	return NewTraceMiddleware(nil)(next)
}
