package validator

import (
	"errors"
	"fmt"

	"github.com/aretw0/toggler/pkg/domain"
)

// FieldError represents a single field validation failure.
type FieldError struct {
	Key    string // Path to the field, e.g. toggles[2].condition.or[0].and[1]
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *FieldError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %v)", e.Key, e.Reason, e.Value)
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// FieldErrors returns all field errors if err is or wraps an AggregateError.
// Otherwise returns nil.
func FieldErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

type collector struct {
	errs []error
}

func (c *collector) add(key, reason string, value any) {
	c.errs = append(c.errs, &FieldError{Key: key, Reason: reason, Value: value})
}

// Validate checks a project for structural mistakes the compiler would otherwise silently ignore.
// Empty conditions are allowed; such toggles compile to nothing.
func Validate(p *domain.Project) error {
	if p == nil {
		return &AggregateError{Errors: []error{&FieldError{Key: "project", Reason: "is required"}}}
	}
	c := &collector{}

	if p.Name == "" {
		c.add("name", "is required", nil)
	}
	if p.SecurityLock != nil && p.SecurityLock.Param == "" {
		c.add("security_lock.param", "is required when a security lock is set", nil)
	}
	for i, icon := range p.Icons {
		if icon.Path == "" {
			c.add(fmt.Sprintf("icons[%d].path", i), "is required", nil)
		}
	}
	for i := range p.Toggles {
		validateToggle(c, fmt.Sprintf("toggles[%d]", i), &p.Toggles[i])
	}

	if len(c.errs) > 0 {
		return &AggregateError{Errors: c.errs}
	}
	return nil
}

func validateToggle(c *collector, key string, t *domain.Toggle) {
	for i, clause := range t.Condition.Or {
		for j, trig := range clause.Triggers {
			validateTrigger(c, fmt.Sprintf("%s.condition.or[%d].and[%d]", key, i, j), trig)
		}
	}

	states := []struct {
		name  string
		state *domain.State
	}{
		{"state", t.State},
		{"transition_in", t.TransitionStateIn},
		{"transition_out", t.TransitionStateOut},
		{"local_state", t.LocalState},
		{"local_transition_in", t.LocalTransitionStateIn},
		{"local_transition_out", t.LocalTransitionStateOut},
	}
	for _, s := range states {
		if s.state == nil {
			continue
		}
		for i, a := range s.state.Actions {
			validateAction(c, fmt.Sprintf("%s.%s.actions[%d]", key, s.name, i), a)
		}
	}

	if t.HasTransitionTime && t.TransitionTime < 0 {
		c.add(key+".transition_time", "must not be negative", t.TransitionTime)
	}
	if t.Slider && t.UseInt {
		c.add(key+".use_int", "cannot be combined with slider", nil)
	}
	if t.Slider && (t.DefaultSliderValue < 0 || t.DefaultSliderValue > 1) {
		c.add(key+".default_slider_value", "must be between 0 and 1", t.DefaultSliderValue)
	}
	if t.EnableDriveGlobalParam && len(t.GlobalParams()) == 0 {
		c.add(key+".drive_global_param", "is required when driving global parameters", nil)
	}
	if t.EnableIcon && t.Icon == "" {
		c.add(key+".icon", "is required when the icon is enabled", nil)
	}
}

func validateTrigger(c *collector, key string, t domain.Trigger) {
	switch t.Type {
	case domain.TriggerMenu:
		if t.MenuPath == "" {
			c.add(key+".menu_path", "is required", nil)
		}
	case domain.TriggerGlobal:
		if t.BoolName == "" {
			c.add(key+".bool_name", "is required", nil)
		}
	case domain.TriggerGesture:
		switch t.Hand {
		case domain.HandLeft, domain.HandRight, domain.HandEither:
		case domain.HandCombo:
			if !t.ComboSign.Valid() {
				c.add(key+".combo_sign", "unknown hand sign", int(t.ComboSign))
			}
		default:
			c.add(key+".hand", "must be one of left, right, either, combo", t.Hand)
		}
		if !t.Sign.Valid() {
			c.add(key+".sign", "unknown hand sign", int(t.Sign))
		}
	default:
		c.add(key+".type", "must be one of menu, global, gesture", t.Type)
	}
}

func validateAction(c *collector, key string, a domain.Action) {
	switch a.Type {
	case domain.ActionClip:
		if a.Clip == "" {
			c.add(key+".clip", "is required", nil)
		}
		for i, m := range a.Muscles {
			switch m {
			case domain.MuscleOther, domain.MuscleLeftHand, domain.MuscleRightHand:
			default:
				c.add(fmt.Sprintf("%s.muscles[%d]", key, i), "must be one of other, left_hand, right_hand", m)
			}
		}
	case domain.ActionObject, domain.ActionFlipbook:
		if a.Object == "" {
			c.add(key+".object", "is required", nil)
		}
		if a.Type == domain.ActionFlipbook && a.Frame < 0 {
			c.add(key+".frame", "must not be negative", a.Frame)
		}
	case domain.ActionDriveToggle:
		if a.MenuPath == "" {
			c.add(key+".menu_path", "is required", nil)
		}
	default:
		c.add(key+".type", "must be one of clip, object, flipbook, drive_toggle", a.Type)
	}
}
