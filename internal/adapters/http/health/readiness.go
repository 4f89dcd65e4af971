package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"registration/internal/adapters/http/response"
	"registration/internal/platform/health"
	"registration/internal/platform/logger"
)

const readinessTimeout = 5 * time.Second

type ReadinessHandler struct {
	version       string
	healthManager health.ManagerInterface
}

func NewReadinessHandler(version string, healthManager health.ManagerInterface) *ReadinessHandler {
	return &ReadinessHandler{
		version:       version,
		healthManager: healthManager,
	}
}

func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	results := h.healthManager.CheckAll(ctx)
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	overallStatus := StatusPass
	checks := make(map[string][]CheckDetail, len(results))
	var notes []string

	for _, name := range names {
		result := results[name]

		status := StatusWarn
		switch result.Status {
		case health.StatusHealthy:
			status = StatusPass
		case health.StatusUnhealthy:
			status = StatusFail
		}

		switch {
		case status == StatusFail:
			overallStatus = StatusFail
			notes = append(notes, "Dependency "+name+" is unavailable")
		case status == StatusWarn && overallStatus == StatusPass:
			overallStatus = StatusWarn
		}

		output := result.Message
		if result.Error != "" {
			output = result.Error
		}
		checks[name] = []CheckDetail{{
			ComponentId:   name,
			ComponentType: "component",
			Status:        status,
			Time:          time.Now(),
			Output:        output,
		}}
	}

	statusCode := http.StatusOK
	if overallStatus == StatusFail {
		statusCode = http.StatusServiceUnavailable
		logger.FromContext(ctx).Warn("Readiness check failed", logger.String("status", string(overallStatus)))
	}

	response.RespondJSON(w, statusCode, ReadinessResponse{
		Status:  overallStatus,
		Version: h.version,
		Checks:  checks,
		Notes:   notes,
	})
}
