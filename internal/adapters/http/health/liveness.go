package health

import (
	"net/http"
	"time"

	"registration/internal/adapters/http/response"
	"registration/internal/version"
)

type LivenessHandler struct {
	build version.BuildInfo
	now   func() time.Time
}

func NewLivenessHandler(build version.BuildInfo) *LivenessHandler {
	return &LivenessHandler{
		build: build,
		now:   time.Now,
	}
}

func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		response.RespondError(w, http.StatusRequestTimeout, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, LivenessResponse{
		Status:    StatusPass,
		Timestamp: h.now(),
		Version:   h.build.Version,
		ReleaseId: h.build.GitCommit,
	})
}
