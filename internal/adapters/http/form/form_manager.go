package form

import (
	"context"

	usecase "registration/internal/core/usecase/form"
)

type Manager interface {
	CreateSession(ctx context.Context) (*usecase.SessionView, error)
	GetSession(ctx context.Context, id string) (*usecase.SessionView, error)
	SetField(ctx context.Context, id, field, value string) (*usecase.SessionView, error)
	ValidateSession(ctx context.Context, id string) (*usecase.SessionView, error)
	DeleteSession(ctx context.Context, id string) error
}
