package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := LifecycleHooks{
		OnToggleCompiled: func(context.Context, *ToggleEvent) { calls = append(calls, "a") },
	}
	b := LifecycleHooks{
		OnToggleCompiled: func(context.Context, *ToggleEvent) { calls = append(calls, "b") },
		OnPassFinished:   func(context.Context, *PassEvent) { calls = append(calls, "pass") },
	}

	merged := a.Merge(b)
	merged.OnToggleCompiled(context.Background(), &ToggleEvent{})
	merged.OnPassFinished(context.Background(), &PassEvent{})

	assert.Equal(t, []string{"a", "b", "pass"}, calls)
	assert.Nil(t, merged.OnToggleSkipped)
	assert.Nil(t, merged.OnGroupResolved)
}
