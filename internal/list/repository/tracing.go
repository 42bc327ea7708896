package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ttkcys/milliyetciler/internal/list/domain"
)

// TracingListStore wraps a ListStore with OpenTelemetry spans.
type TracingListStore struct {
	next   domain.ListStore
	tracer trace.Tracer
}

// NewTracingListStore creates a tracing decorator around a list store
func NewTracingListStore(next domain.ListStore) *TracingListStore {
	return &TracingListStore{
		next:   next,
		tracer: otel.Tracer("list-store"),
	}
}

func (s *TracingListStore) ReadColumn(ctx context.Context, userID uint, kind domain.ListKind) (string, error) {
	ctx, span := s.tracer.Start(ctx, "ListStore.ReadColumn",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.String("list.kind", string(kind)),
		),
	)
	defer span.End()

	raw, err := s.next.ReadColumn(ctx, userID, kind)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return raw, err
}

func (s *TracingListStore) WriteColumn(ctx context.Context, userID uint, kind domain.ListKind, raw string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "ListStore.WriteColumn",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.String("list.kind", string(kind)),
		),
	)
	defer span.End()

	rows, err := s.next.WriteColumn(ctx, userID, kind, raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", rows))
	return rows, err
}
