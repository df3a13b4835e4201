package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/toggler/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Hooks(t *testing.T) {
	c, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	ctx := context.Background()
	hooks := c.Hooks()
	hooks.OnToggleCompiled(ctx, &domain.ToggleEvent{Name: "Hat"})
	hooks.OnToggleCompiled(ctx, &domain.ToggleEvent{Name: "Hat"})
	hooks.OnToggleCompiled(ctx, &domain.ToggleEvent{Name: "Dial", Slider: true})
	hooks.OnToggleSkipped(ctx, &domain.ToggleEvent{})
	hooks.OnGroupResolved(ctx, &domain.GroupEvent{Group: domain.GroupInfo{Encoding: domain.EncodingIndexed}})
	hooks.OnPassFinished(ctx, &domain.PassEvent{Duration: time.Millisecond, Params: 4, Layers: 3})
	hooks.OnPassFinished(ctx, &domain.PassEvent{Err: errors.New("boom")})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.toggles.WithLabelValues("toggle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.toggles.WithLabelValues("slider")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.skipped))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.groups.WithLabelValues(string(domain.EncodingIndexed))))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.passes.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.passes.WithLabelValues("error")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.params))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.layers))
	assert.Equal(t, 1, testutil.CollectAndCount(c.duration))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}
