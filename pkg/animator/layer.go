package animator

import (
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/expr"
	"github.com/aretw0/toggler/pkg/ports"
)

// Layer is an in-memory state machine.
type Layer struct {
	name     string
	states   []*State
	def      *State
	entry    []*Transition
	anyState []*Transition
}

var _ ports.Layer = (*Layer)(nil)

func (l *Layer) Name() string { return l.name }

// NewState appends a state. The first state of a layer is its default until SetDefaultState.
func (l *Layer) NewState(name string) ports.State {
	s := &State{name: name, layer: l, speed: 1}
	l.states = append(l.states, s)
	return s
}

func (l *Layer) States() []ports.State {
	out := make([]ports.State, len(l.states))
	for i, s := range l.states {
		out[i] = s
	}
	return out
}

func (l *Layer) SetDefaultState(s ports.State) {
	if st, ok := s.(*State); ok && st.layer == l {
		l.def = st
	}
}

// DefaultState returns the state the layer starts in, or nil for an empty layer.
func (l *Layer) DefaultState() *State {
	if l.def != nil {
		return l.def
	}
	if len(l.states) > 0 {
		return l.states[0]
	}
	return nil
}

func (l *Layer) snapshot() domain.Layer {
	out := domain.Layer{
		Name:   l.name,
		States: make([]domain.StateNode, 0, len(l.states)),
	}
	if def := l.DefaultState(); def != nil {
		out.DefaultState = def.name
	}
	for _, s := range l.states {
		out.States = append(out.States, s.snapshot())
	}
	for _, t := range l.entry {
		out.EntryTransitions = append(out.EntryTransitions, t.snapshot())
	}
	for _, t := range l.anyState {
		out.AnyTransitions = append(out.AnyTransitions, t.snapshot())
	}
	return out
}

// State is an in-memory layer state.
type State struct {
	name        string
	layer       *Layer
	clip        *domain.Clip
	speed       float64
	motionTime  string
	drivers     []domain.Driver
	transitions []*Transition
}

var _ ports.State = (*State)(nil)

func (s *State) Name() string { return s.name }

func (s *State) WithClip(clip *domain.Clip) ports.State {
	s.clip = clip
	return s
}

func (s *State) Speed(multiplier float64) ports.State {
	s.speed = multiplier
	return s
}

func (s *State) MotionTime(p expr.Float) ports.State {
	s.motionTime = p.Name()
	return s
}

// Drives records a parameter write on entry. A later write to the same parameter replaces it.
func (s *State) Drives(p expr.Handle, value float64) ports.State {
	for i := range s.drivers {
		if s.drivers[i].Param == p.Name() {
			s.drivers[i].Value = value
			return s
		}
	}
	s.drivers = append(s.drivers, domain.Driver{Param: p.Name(), Value: value})
	return s
}

func (s *State) TransitionsTo(target ports.State) ports.Transition {
	t := &Transition{from: s.name, to: target.Name(), cond: expr.Always()}
	s.transitions = append(s.transitions, t)
	return t
}

func (s *State) TransitionsToExit() ports.Transition {
	t := &Transition{from: s.name, to: domain.EndpointExit, cond: expr.Always()}
	s.transitions = append(s.transitions, t)
	return t
}

func (s *State) TransitionsFromEntry() ports.Transition {
	t := &Transition{from: domain.EndpointEntry, to: s.name, cond: expr.Always()}
	s.layer.entry = append(s.layer.entry, t)
	return t
}

func (s *State) TransitionsFromAny() ports.Transition {
	t := &Transition{from: domain.EndpointAny, to: s.name, cond: expr.Always()}
	s.layer.anyState = append(s.layer.anyState, t)
	return t
}

// Clip returns the state's clip.
func (s *State) Clip() *domain.Clip { return s.clip }

// Drivers returns the parameter writes performed on entry.
func (s *State) Drivers() []domain.Driver { return s.drivers }

// Transitions returns the outgoing transitions in creation order.
func (s *State) Transitions() []*Transition { return s.transitions }

func (s *State) snapshot() domain.StateNode {
	out := domain.StateNode{
		Name:       s.name,
		Clip:       s.clip,
		Speed:      s.speed,
		MotionTime: s.motionTime,
		Drivers:    s.drivers,
	}
	for _, t := range s.transitions {
		out.Transitions = append(out.Transitions, t.snapshot())
	}
	return out
}

// Transition is an in-memory edge.
type Transition struct {
	from     string
	to       string
	cond     expr.Cond
	duration float64
	exitTime *float64
}

var _ ports.Transition = (*Transition)(nil)

// When replaces the guard. Transitions start unconditional.
func (t *Transition) When(cond expr.Cond) ports.Transition {
	t.cond = cond
	return t
}

// WithDuration sets the cross-fade. Negative values mean instantaneous.
func (t *Transition) WithDuration(seconds float64) ports.Transition {
	if seconds < 0 {
		seconds = 0
	}
	t.duration = seconds
	return t
}

// WithExitTime gates the transition on the source clip's progress. Negative values clear it.
func (t *Transition) WithExitTime(normalized float64) ports.Transition {
	if normalized < 0 {
		t.exitTime = nil
		return t
	}
	v := normalized
	t.exitTime = &v
	return t
}

func (t *Transition) From() string { return t.from }

func (t *Transition) To() string { return t.to }

func (t *Transition) Condition() expr.Cond { return t.cond }

func (t *Transition) Duration() float64 { return t.duration }

// ExitTime returns the exit time and whether one is set.
func (t *Transition) ExitTime() (float64, bool) {
	if t.exitTime == nil {
		return 0, false
	}
	return *t.exitTime, true
}

func (t *Transition) snapshot() domain.Transition {
	out := domain.Transition{
		From:     t.from,
		To:       t.to,
		Duration: t.duration,
		ExitTime: t.exitTime,
	}
	if !t.cond.IsAlways() {
		out.Condition = t.cond.String()
	}
	return out
}

// FindState returns the first state with the given name.
func (l *Layer) FindState(name string) (*State, bool) {
	for _, s := range l.states {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// EntryTransitions returns the transitions leaving the layer's entry node.
func (l *Layer) EntryTransitions() []*Transition { return l.entry }

// AnyTransitions returns the transitions leaving the layer's any-state node.
func (l *Layer) AnyTransitions() []*Transition { return l.anyState }
