package health

import (
	"context"
	"fmt"

	"registration/internal/platform/health"
)

type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// SessionStoreChecker reports the form session store unhealthy when it cannot
// be read. A full store stays healthy: idle sessions expire and free slots, and
// new sessions get 429 meanwhile.
type SessionStoreChecker struct {
	store       SessionCounter
	maxSessions int
}

func NewSessionStoreChecker(store SessionCounter, maxSessions int) *SessionStoreChecker {
	return &SessionStoreChecker{
		store:       store,
		maxSessions: maxSessions,
	}
}

func (c *SessionStoreChecker) Name() string {
	return "form_sessions"
}

func (c *SessionStoreChecker) Check(ctx context.Context) health.CheckResult {
	count, err := c.store.Count(ctx)
	if err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "form session store unavailable",
			Error:   err.Error(),
		}
	}

	if c.maxSessions > 0 && count >= c.maxSessions {
		return health.CheckResult{
			Status:  health.StatusHealthy,
			Message: fmt.Sprintf("form session limit reached (%d/%d)", count, c.maxSessions),
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("%d open form sessions", count),
	}
}
