package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"registration/internal/platform/logger"
)

func RequestLogger(baseLogger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			reqID := middleware.GetReqID(r.Context())
			contextLogger := baseLogger.With(logger.String("request_id", reqID))
			ctx := logger.WithLogger(r.Context(), contextLogger)

			next.ServeHTTP(ww, r.WithContext(ctx))

			fields := []logger.Field{
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("route", RoutePattern(r)),
				logger.Int("status", ww.Status()),
				logger.Int("bytes", ww.BytesWritten()),
				logger.Duration("duration", time.Since(start)),
			}

			// Field edits arrive per keystroke; successful ones stay at debug.
			switch status := ww.Status(); {
			case status >= http.StatusInternalServerError:
				contextLogger.Error("HTTP Request", fields...)
			case status >= http.StatusBadRequest:
				contextLogger.Warn("HTTP Request", fields...)
			default:
				contextLogger.Debug("HTTP Request", fields...)
			}
		})
	}
}
