package dsl

import (
	"strings"

	"github.com/aretw0/toggler/pkg/domain"
)

// ToggleBuilder provides a fluent API for configuring a toggle.
type ToggleBuilder struct {
	toggle  domain.Toggle
	builder *Builder
}

// When adds an AND clause to the toggle's condition. Successive calls are ORed.
func (t *ToggleBuilder) When(triggers ...domain.Trigger) *ToggleBuilder {
	t.toggle.Condition.Or = append(t.toggle.Condition.Or, domain.All(triggers...))
	return t
}

// Menu adds a clause activated by the menu item at path.
func (t *ToggleBuilder) Menu(path string) *ToggleBuilder {
	return t.When(domain.MenuTrigger(path))
}

// Global adds a clause activated by an externally driven boolean.
func (t *ToggleBuilder) Global(boolName string) *ToggleBuilder {
	return t.When(domain.GlobalTrigger(boolName))
}

// Gesture adds a clause activated by a hand sign.
func (t *ToggleBuilder) Gesture(hand domain.Hand, sign domain.HandSign) *ToggleBuilder {
	return t.When(domain.GestureTrigger(hand, sign, domain.SignNeutral))
}

// Combo adds a clause activated by the left hand showing left and the right hand showing right.
func (t *ToggleBuilder) Combo(left, right domain.HandSign) *ToggleBuilder {
	return t.When(domain.GestureTrigger(domain.HandCombo, left, right))
}

// Show appends actions to the main state.
func (t *ToggleBuilder) Show(actions ...domain.Action) *ToggleBuilder {
	t.toggle.State = appendActions(t.toggle.State, actions)
	return t
}

// Local appends actions to the state shown only to the wearer.
// Using it splits the toggle into remote and local branches.
func (t *ToggleBuilder) Local(actions ...domain.Action) *ToggleBuilder {
	t.toggle.SeparateLocal = true
	t.toggle.LocalState = appendActions(t.toggle.LocalState, actions)
	return t
}

// TransitionIn sets the state played while turning on. It enables transitions.
func (t *ToggleBuilder) TransitionIn(actions ...domain.Action) *ToggleBuilder {
	t.toggle.HasTransition = true
	t.toggle.TransitionStateIn = appendActions(t.toggle.TransitionStateIn, actions)
	return t
}

// TransitionOut sets the state played while turning off. It enables transitions.
func (t *ToggleBuilder) TransitionOut(actions ...domain.Action) *ToggleBuilder {
	t.toggle.HasTransition = true
	t.toggle.TransitionStateOut = appendActions(t.toggle.TransitionStateOut, actions)
	return t
}

// SimpleOut reverses the in transition instead of playing a dedicated out state.
func (t *ToggleBuilder) SimpleOut() *ToggleBuilder {
	t.toggle.HasTransition = true
	t.toggle.SimpleOutTransition = true
	return t
}

// TransitionTime sets the cross-fade duration in seconds.
func (t *ToggleBuilder) TransitionTime(seconds float64) *ToggleBuilder {
	t.toggle.HasTransitionTime = true
	t.toggle.TransitionTime = seconds
	return t
}

// RunToCompletion lets transition clips finish before leaving them.
func (t *ToggleBuilder) RunToCompletion() *ToggleBuilder {
	t.toggle.HasExitTime = true
	return t
}

// Exclusive makes the toggle mutually exclusive with every toggle sharing one of tags.
func (t *ToggleBuilder) Exclusive(tags ...string) *ToggleBuilder {
	t.toggle.EnableExclusiveTag = true
	if t.toggle.ExclusiveTag != "" {
		tags = append([]string{t.toggle.ExclusiveTag}, tags...)
	}
	t.toggle.ExclusiveTag = strings.Join(tags, ",")
	return t
}

// OffState marks the toggle as the one that is on while the rest of its group is off.
func (t *ToggleBuilder) OffState() *ToggleBuilder {
	t.toggle.ExclusiveOffState = true
	return t
}

// Saved persists the parameter across sessions.
func (t *ToggleBuilder) Saved() *ToggleBuilder {
	t.toggle.Saved = true
	return t
}

// DefaultOn starts the toggle enabled.
func (t *ToggleBuilder) DefaultOn() *ToggleBuilder {
	t.toggle.DefaultOn = true
	return t
}

// InRest contributes the toggle's default pose to the resting state.
func (t *ToggleBuilder) InRest() *ToggleBuilder {
	t.toggle.IncludeInRest = true
	return t
}

// Hold registers a button instead of a toggle in the menu.
func (t *ToggleBuilder) Hold() *ToggleBuilder {
	t.toggle.HoldButton = true
	return t
}

// Icon sets the icon of the toggle's menu items.
func (t *ToggleBuilder) Icon(icon string) *ToggleBuilder {
	t.toggle.EnableIcon = true
	t.toggle.Icon = icon
	return t
}

// Param overrides the parameter name. The toggle gets no menu item of its own.
func (t *ToggleBuilder) Param(name string) *ToggleBuilder {
	t.toggle.ParamOverride = name
	return t
}

// Prefixed applies the controller's parameter prefix to the toggle's name.
func (t *ToggleBuilder) Prefixed() *ToggleBuilder {
	t.toggle.UsePrefixOnParam = true
	return t
}

// Int stores the toggle state in an integer parameter.
func (t *ToggleBuilder) Int() *ToggleBuilder {
	t.toggle.UseInt = true
	return t
}

// Slider turns the toggle into a radial slider starting at value when DefaultOn is set.
func (t *ToggleBuilder) Slider(value float64) *ToggleBuilder {
	t.toggle.Slider = true
	t.toggle.DefaultSliderValue = value
	return t
}

// Secured gates the toggle on the project's security lock.
func (t *ToggleBuilder) Secured() *ToggleBuilder {
	t.toggle.SecurityEnabled = true
	return t
}

// ResetPhysbones resets the named physics bones whenever the toggle changes.
func (t *ToggleBuilder) ResetPhysbones(names ...string) *ToggleBuilder {
	t.toggle.ResetPhysbones = append(t.toggle.ResetPhysbones, names...)
	return t
}

// DriveGlobals drives the named global booleans while the toggle is on.
func (t *ToggleBuilder) DriveGlobals(names ...string) *ToggleBuilder {
	t.toggle.EnableDriveGlobalParam = true
	if t.toggle.DriveGlobalParam != "" {
		names = append([]string{t.toggle.DriveGlobalParam}, names...)
	}
	t.toggle.DriveGlobalParam = strings.Join(names, ",")
	return t
}

// End returns to the project builder.
func (t *ToggleBuilder) End() *Builder {
	return t.builder
}

func appendActions(s *domain.State, actions []domain.Action) *domain.State {
	if s == nil {
		return domain.NewState(actions...)
	}
	s.Actions = append(s.Actions, actions...)
	return s
}
