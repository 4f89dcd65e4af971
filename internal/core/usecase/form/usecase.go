package form

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"registration/internal/core/domain/form"
	"registration/internal/core/ports"
	"registration/internal/platform/logger"
)

type SessionView struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	form.Snapshot
	Events []form.Event `json:"events"`
}

type Config struct {
	MaxSessions int
	// SessionTTL is how long a session may stay unused. Zero disables expiry.
	SessionTTL time.Duration
}

type Usecase struct {
	repo     ports.SessionRepository
	rules    *form.RuleSet
	recorder ValidationRecorder
	cfg      Config

	newID func() string
	now   func() time.Time
}

func NewUsecase(repo ports.SessionRepository, rules *form.RuleSet, recorder ValidationRecorder, cfg Config) *Usecase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Usecase{
		repo:     repo,
		rules:    rules,
		recorder: recorder,
		cfg:      cfg,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

func (uc *Usecase) CreateSession(ctx context.Context) (*SessionView, error) {
	log := logger.FromContext(ctx)

	if _, err := uc.ExpireIdle(ctx); err != nil {
		return nil, err
	}

	session, err := form.NewSession(uc.newID(), uc.rules, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SaveWithLimit(ctx, session, uc.cfg.MaxSessions); err != nil {
		if errors.Is(err, form.ErrSessionLimitReached) {
			log.Warn("Form session limit reached", logger.Int("max_sessions", uc.cfg.MaxSessions))
		}
		return nil, err
	}

	uc.recorder.SessionOpened(ctx)
	log.Debug("Form session created", logger.String("session_id", session.ID))

	return &SessionView{ID: session.ID, CreatedAt: session.CreatedAt, Snapshot: session.Snapshot(), Events: []form.Event{}}, nil
}

func (uc *Usecase) GetSession(ctx context.Context, id string) (*SessionView, error) {
	session, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Touch(uc.now())
	return &SessionView{ID: session.ID, CreatedAt: session.CreatedAt, Snapshot: session.Snapshot(), Events: []form.Event{}}, nil
}

func (uc *Usecase) SetField(ctx context.Context, id, fieldName, value string) (*SessionView, error) {
	log := logger.FromContext(ctx)

	field, err := form.ParseField(fieldName)
	if err != nil {
		log.Warn("Unknown form field", logger.String("session_id", id), logger.String("field", fieldName))
		return nil, err
	}

	return uc.apply(ctx, id, func(m *form.Model) { m.Set(field, value) })
}

func (uc *Usecase) ValidateSession(ctx context.Context, id string) (*SessionView, error) {
	return uc.apply(ctx, id, func(m *form.Model) { m.ValidateAll() })
}

func (uc *Usecase) DeleteSession(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.recorder.SessionClosed(ctx)
	logger.FromContext(ctx).Debug("Form session deleted", logger.String("session_id", id))
	return nil
}

func (uc *Usecase) apply(ctx context.Context, id string, fn func(m *form.Model)) (*SessionView, error) {
	session, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Touch(uc.now())
	events, snap := session.Apply(fn)
	for _, e := range events {
		if e.Kind != form.ErrorsChanged {
			continue
		}
		_, failing := snap.Errors[e.Field.String()]
		uc.recorder.RecordValidation(ctx, e.Field, failing)
	}

	logger.FromContext(ctx).Debug("Form session updated",
		logger.String("session_id", id),
		logger.Int("events", len(events)),
		logger.Bool("has_errors", snap.HasErrors))

	if events == nil {
		events = []form.Event{}
	}
	return &SessionView{ID: session.ID, CreatedAt: session.CreatedAt, Snapshot: snap, Events: events}, nil
}

// ExpireIdle deletes every session unused for longer than the TTL and returns
// how many were removed.
func (uc *Usecase) ExpireIdle(ctx context.Context) (int, error) {
	if uc.cfg.SessionTTL <= 0 {
		return 0, nil
	}

	ids, err := uc.repo.DeleteIdle(ctx, uc.now().Add(-uc.cfg.SessionTTL))
	if err != nil {
		return 0, err
	}
	for range ids {
		uc.recorder.SessionClosed(ctx)
	}
	if len(ids) > 0 {
		logger.FromContext(ctx).Info("Expired idle form sessions", logger.Int("count", len(ids)))
	}
	return len(ids), nil
}

// RunExpiry calls ExpireIdle every interval until ctx is done.
func (uc *Usecase) RunExpiry(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.ExpireIdle(ctx); err != nil && ctx.Err() == nil {
				logger.FromContext(ctx).Error("Failed to expire form sessions", logger.Error(err))
			}
		}
	}
}
