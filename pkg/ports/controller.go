package ports

import (
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/expr"
)

// ParamOptions configures a parameter created through the Controller.
type ParamOptions struct {
	Synced    bool
	Saved     bool
	Default   float64
	UsePrefix bool
}

// Controller is the capability surface of the host animation graph.
// Parameter constructors are create-if-absent: asking twice for the same name returns the same
// parameter and keeps the first call's options.
type Controller interface {
	NewLayer(name string) Layer
	NewBool(name string, opts ParamOptions) expr.Bool
	NewInt(name string, opts ParamOptions) expr.Int
	NewFloat(name string, opts ParamOptions) expr.Float

	// Built-in host parameters.
	GestureLeft() expr.Int
	GestureRight() expr.Int
	IsLocal() expr.Bool
}

// Layer is one state machine of the controller.
type Layer interface {
	Name() string
	NewState(name string) State
	// States returns the layer's states in creation order.
	States() []State
	SetDefaultState(s State)
}

// State is a node of a layer.
type State interface {
	Name() string
	WithClip(clip *domain.Clip) State
	Speed(multiplier float64) State
	MotionTime(param expr.Float) State
	Drives(param expr.Handle, value float64) State

	TransitionsTo(target State) Transition
	TransitionsToExit() Transition
	TransitionsFromEntry() Transition
	TransitionsFromAny() Transition
}

// Transition configures an edge created by a State.
type Transition interface {
	When(cond expr.Cond) Transition
	WithDuration(seconds float64) Transition
	WithExitTime(normalized float64) Transition
}
