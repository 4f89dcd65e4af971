package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"registration/internal/platform/logger"
)

const internalErrorBody = `{"error":"internal server error"}` + "\n"

// Recovery turns a panic in a downstream handler into a 500. A panicking
// form listener surfaces here.
func Recovery(log logger.Logger) func(next http.Handler) http.Handler {
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

				logger.FromContextOr(r.Context(), log).Error("Panic recovered",
					logger.String("method", r.Method),
					logger.String("url", r.URL.Path),
					logger.String("remote_addr", r.RemoteAddr),
					logger.String("user_agent", r.UserAgent()),
					logger.String("panic", fmt.Sprintf("%v", rec)),
					logger.String("stack", string(debug.Stack())),
				)

				w.Header().Set("Connection", "close")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(internalErrorBody))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
