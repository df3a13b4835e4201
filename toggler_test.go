package toggler_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/toggler"
	"github.com/aretw0/toggler/internal/validator"
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/dsl"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, b *dsl.Builder) *domain.Project {
	t.Helper()
	project, err := b.Build()
	require.NoError(t, err)
	return project
}

func TestCompile_InvalidProject(t *testing.T) {
	c, err := toggler.New()
	require.NoError(t, err)

	_, err = c.Compile(context.Background(), &domain.Project{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidProject)

	var aggr *validator.AggregateError
	assert.True(t, errors.As(err, &aggr))

	_, err = c.Compile(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidProject)
}

func TestCompile_Overflow(t *testing.T) {
	b := dsl.New("huge")
	for i := 0; i <= domain.MaxExclusiveGroupSize; i++ {
		b.Toggle().Menu(fmt.Sprintf("Outfits/%03d", i)).Exclusive("Outfit")
	}

	c, err := toggler.New()
	require.NoError(t, err)
	_, err = c.Compile(context.Background(), build(t, b))
	assert.ErrorIs(t, err, domain.ErrTooManyExclusives)

	var overflow *domain.ExclusiveOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, "Outfit", overflow.Tag)
}

func TestCompile_PrefixAndSecurityLock(t *testing.T) {
	b := dsl.New("secure").SecurityLock("Unlocked")
	b.Toggle().Menu("Hat").Prefixed().Secured()

	c, err := toggler.New(toggler.WithParamPrefix("VF_"))
	require.NoError(t, err)
	result, err := c.Compile(context.Background(), build(t, b))
	require.NoError(t, err)

	hat, ok := result.Summary.Find("Hat")
	require.True(t, ok)
	assert.Equal(t, "VF_Hat", hat.Param)
	assert.Equal(t, "VF_Hat && Unlocked", hat.OnCase.String())

	_, ok = result.Graph.FindParam("Unlocked")
	assert.True(t, ok)
}

func TestCompile_SecurityLockOption(t *testing.T) {
	b := dsl.New("secure")
	b.Toggle().Menu("Hat").Secured()

	c, err := toggler.New(toggler.WithSecurityLock("Trusted"))
	require.NoError(t, err)
	result, err := c.Compile(context.Background(), build(t, b))
	require.NoError(t, err)

	hat, _ := result.Summary.Find("Hat")
	assert.Equal(t, "Hat && Trusted", hat.OnCase.String())
}

func TestCompile_HooksAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	var compiled []string
	hooks := domain.LifecycleHooks{
		OnToggleCompiled: func(_ context.Context, e *domain.ToggleEvent) {
			compiled = append(compiled, e.Name)
		},
	}

	c, err := toggler.New(toggler.WithMetrics(reg), toggler.WithLifecycleHooks(hooks))
	require.NoError(t, err)

	b := dsl.New("observed")
	b.Toggle().Menu("Hat")
	b.Toggle().Menu("Dial").Slider(0.5)
	_, err = c.Compile(context.Background(), build(t, b))
	require.NoError(t, err)

	assert.Equal(t, []string{"Hat", "Dial"}, compiled)
	count, err := testutil.GatherAndCount(reg, "toggler_toggles_compiled_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per kind")
	count, err = testutil.GatherAndCount(reg, "toggler_compile_passes_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = toggler.New(toggler.WithMetrics(reg))
	assert.Error(t, err, "collectors are already registered")
}

func TestResult_Artifact(t *testing.T) {
	b := dsl.New("wardrobe")
	b.Toggle().Menu("Hat").Exclusive("Head")
	b.Toggle().Menu("Cap").Exclusive("Head")

	c, err := toggler.New()
	require.NoError(t, err)
	result, err := c.Compile(context.Background(), build(t, b))
	require.NoError(t, err)

	a1, a2 := result.Artifact(), result.Artifact()
	assert.NotEqual(t, a1.ID, a2.ID)
	_, err = uuid.Parse(a1.ID)
	assert.NoError(t, err)

	assert.Equal(t, "wardrobe", a1.Project)
	assert.Equal(t, result.Graph, a1.Graph)
	assert.Len(t, a1.Menu, 2)
	require.Len(t, a1.Groups, 1)
	assert.Equal(t, "Head", a1.Groups[0].Tag)
	assert.False(t, a1.CreatedAt.IsZero())
}

func TestCompileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: avatar
toggles:
  - condition:
      or:
        - and:
            - type: menu
              menu_path: Hat
    state:
      actions:
        - type: object
          object: Hat
          active: true
`), 0644))

	c, err := toggler.New()
	require.NoError(t, err)
	result, err := c.CompileFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "avatar", result.Project)
	assert.Len(t, result.Summary.Compiled, 1)

	_, err = c.CompileFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, toggler.Version)
}
