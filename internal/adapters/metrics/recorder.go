package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"registration/internal/core/domain/form"
	"registration/internal/platform/metrics"
)

const (
	outcomeValid   = "valid"
	outcomeInvalid = "invalid"
)

type FormRecorder struct {
	provider *metrics.Provider
}

func NewFormRecorder(provider *metrics.Provider) *FormRecorder {
	return &FormRecorder{provider: provider}
}

func (r *FormRecorder) RecordValidation(ctx context.Context, field form.Field, failing bool) {
	outcome := outcomeValid
	if failing {
		outcome = outcomeInvalid
	}
	r.provider.FormValidations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("field", field.String()),
		attribute.String("outcome", outcome),
	))
}

func (r *FormRecorder) SessionOpened(ctx context.Context) {
	r.provider.FormSessionsActive.Add(ctx, 1)
}

func (r *FormRecorder) SessionClosed(ctx context.Context) {
	r.provider.FormSessionsActive.Add(ctx, -1)
}
