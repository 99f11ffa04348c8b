package dashboard

import (
	"net/http"
	"time"

	"fjacquet/count-dashboard/internal/logging"
	"fjacquet/count-dashboard/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs every request on logger and, when m is not nil, records its
// latency.
func RequestLogger(logger logging.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			log := logger.WithFields(
				logging.F(logging.FieldMethod, r.Method),
				logging.F(logging.FieldPath, r.URL.Path),
				logging.F(logging.FieldStatus, status),
				logging.F(logging.FieldDuration, elapsed.Milliseconds()),
				logging.F(logging.FieldRequestID, middleware.GetReqID(r.Context())),
			)
			if status >= http.StatusInternalServerError {
				log.Warn("Request completed")
			} else {
				log.Info("Request completed")
			}
			if m != nil {
				m.ObserveRequest(route, status, elapsed)
			}
		})
	}
}
