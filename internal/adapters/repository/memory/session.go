package memory

import (
	"context"
	"errors"
	"time"

	"registration/internal/core/domain/form"
	memoryPlatform "registration/internal/platform/repository/memory"
)

type SessionRepository struct {
	*memoryPlatform.Repository[*form.Session]
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		Repository: memoryPlatform.New[*form.Session](),
	}
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*form.Session, error) {
	session, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, id)
	}
	return session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *form.Session) error {
	return mapError(r.Repository.Save(ctx, session), session.ID)
}

func (r *SessionRepository) SaveWithLimit(ctx context.Context, session *form.Session, limit int) error {
	return mapError(r.Repository.SaveWithLimit(ctx, session, limit), session.ID)
}

func (r *SessionRepository) DeleteIdle(ctx context.Context, cutoff time.Time) ([]string, error) {
	removed, err := r.Repository.DeleteFunc(ctx, func(s *form.Session) bool {
		return s.IdleSince(cutoff)
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(removed))
	for i, s := range removed {
		ids[i] = s.ID
	}
	return ids, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	return mapError(r.Repository.Delete(ctx, id), id)
}

func mapError(err error, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, memoryPlatform.ErrNotFound):
		return form.ErrSessionNotFound
	case errors.Is(err, memoryPlatform.ErrLimitReached):
		return form.ErrSessionLimitReached
	case errors.Is(err, memoryPlatform.ErrAlreadyExists):
		return &form.AlreadyExistsError{ID: id}
	default:
		return err
	}
}
