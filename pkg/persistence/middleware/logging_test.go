package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/toggler/pkg/adapters/memory"
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/persistence/middleware"
	"github.com/aretw0/toggler/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware_Contract(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	store := middleware.Chain(memory.NewStore(), middleware.NewLoggingMiddleware(logger))
	ports.RunArtifactStoreContract(t, store)
}

func TestLoggingMiddleware_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := middleware.NewLoggingMiddleware(logger)(memory.NewStore())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Artifact{ID: "a"}))
	assert.Contains(t, buf.String(), "op=save")
	assert.Contains(t, buf.String(), "id=a")

	buf.Reset()
	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	assert.Contains(t, buf.String(), "level=DEBUG")

	buf.Reset()
	assert.Error(t, store.Save(ctx, &domain.Artifact{}))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "artifact store failed")
}

type recorder struct {
	ports.ArtifactStore
	name  string
	calls *[]string
}

func (r recorder) List(ctx context.Context) ([]string, error) {
	*r.calls = append(*r.calls, r.name)
	return r.ArtifactStore.List(ctx)
}

func TestChain_Order(t *testing.T) {
	var calls []string
	wrap := func(name string) middleware.Middleware {
		return func(next ports.ArtifactStore) ports.ArtifactStore {
			return recorder{ArtifactStore: next, name: name, calls: &calls}
		}
	}

	store := middleware.Chain(memory.NewStore(), wrap("outer"), wrap("inner"))
	_, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, calls)
}

func TestChain_Empty(t *testing.T) {
	base := memory.NewStore()
	assert.Same(t, base, middleware.Chain(base).(*memory.Store))
}
