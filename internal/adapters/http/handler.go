package http

import (
	"errors"
	"net/http"

	"registration/internal/adapters/http/response"
	httpErrors "registration/internal/platform/http"
	"registration/internal/platform/logger"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

func ErrorHandler(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		var httpErr *httpErrors.Error
		if errors.As(err, &httpErr) {
			response.RespondError(w, httpErrors.StatusCode(err), httpErr)
			return
		}

		logger.FromContext(r.Context()).Error("Unexpected server error",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.String("remote_addr", r.RemoteAddr),
			logger.Error(err))
		response.RespondError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}
