package ports

import (
	"context"
	"time"

	"registration/internal/core/domain/form"
)

type SessionRepository interface {
	Save(ctx context.Context, session *form.Session) error
	// SaveWithLimit fails with form.ErrSessionLimitReached when limit sessions
	// are already stored. A limit <= 0 means no limit.
	SaveWithLimit(ctx context.Context, session *form.Session, limit int) error
	GetByID(ctx context.Context, id string) (*form.Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteIdle removes sessions last used before cutoff and returns their IDs.
	DeleteIdle(ctx context.Context, cutoff time.Time) ([]string, error)
	Count(ctx context.Context) (int, error)
}
