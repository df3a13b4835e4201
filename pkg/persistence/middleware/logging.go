package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.ArtifactStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store operation at Debug and failures at Warn.
// A missing artifact is not a failure.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.ArtifactStore) ports.ArtifactStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) Save(ctx context.Context, artifact *domain.Artifact) error {
	start := time.Now()
	err := m.next.Save(ctx, artifact)
	m.log(ctx, "save", artifact.ID, start, err)
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, id string) (*domain.Artifact, error) {
	start := time.Now()
	artifact, err := m.next.Load(ctx, id)
	m.log(ctx, "load", id, start, err)
	return artifact, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := m.next.Delete(ctx, id)
	m.log(ctx, "delete", id, start, err)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	ids, err := m.next.List(ctx)
	m.log(ctx, "list", "", start, err)
	return ids, err
}

func (m *loggingMiddleware) log(ctx context.Context, op, id string, start time.Time, err error) {
	attrs := []any{"op", op, "duration", time.Since(start)}
	if id != "" {
		attrs = append(attrs, "id", id)
	}
	if err != nil && !errors.Is(err, domain.ErrArtifactNotFound) {
		m.logger.WarnContext(ctx, "artifact store failed", append(attrs, "error", err)...)
		return
	}
	m.logger.DebugContext(ctx, "artifact store", attrs...)
}
