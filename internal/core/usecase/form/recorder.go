package form

import (
	"context"

	"registration/internal/core/domain/form"
)

type ValidationRecorder interface {
	RecordValidation(ctx context.Context, field form.Field, failing bool)
	SessionOpened(ctx context.Context)
	SessionClosed(ctx context.Context)
}

type nopRecorder struct{}

func (nopRecorder) RecordValidation(context.Context, form.Field, bool) {}
func (nopRecorder) SessionOpened(context.Context)                      {}
func (nopRecorder) SessionClosed(context.Context)                      {}
