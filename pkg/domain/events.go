package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventToggleCompiled EventType = "toggle_compiled"
	EventToggleSkipped  EventType = "toggle_skipped"
	EventGroupResolved  EventType = "group_resolved"
	EventPassFinished   EventType = "pass_finished"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Project   string    `json:"project"`
}

// ToggleEvent reports the outcome for one toggle.
type ToggleEvent struct {
	EventBase
	Name   string `json:"name"`
	Slider bool   `json:"slider,omitempty"`
	States int    `json:"states"`
}

// GroupEvent reports a resolved exclusive group.
type GroupEvent struct {
	EventBase
	Group GroupInfo `json:"group"`
}

// PassEvent reports a finished compile pass.
type PassEvent struct {
	EventBase
	Duration time.Duration `json:"duration"`
	Toggles  int           `json:"toggles"`
	Params   int           `json:"params"`
	Layers   int           `json:"layers"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for compiler observability.
type LifecycleHooks struct {
	OnToggleCompiled func(context.Context, *ToggleEvent)
	OnToggleSkipped  func(context.Context, *ToggleEvent)
	OnGroupResolved  func(context.Context, *GroupEvent)
	OnPassFinished   func(context.Context, *PassEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnToggleCompiled: chain(h.OnToggleCompiled, other.OnToggleCompiled),
		OnToggleSkipped:  chain(h.OnToggleSkipped, other.OnToggleSkipped),
		OnGroupResolved:  chain(h.OnGroupResolved, other.OnGroupResolved),
		OnPassFinished:   chain(h.OnPassFinished, other.OnPassFinished),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
