package domain

// State is a bundle of actions describing a visual state of the avatar.
type State struct {
	Actions []Action `json:"actions,omitempty" yaml:"actions,omitempty" mapstructure:"actions"`
}

// NewState creates a state from the given actions.
func NewState(actions ...Action) *State {
	return &State{Actions: actions}
}

// IsEmpty reports whether s is nil or has no actions.
func (s *State) IsEmpty() bool {
	return s == nil || len(s.Actions) == 0
}

// Muscles returns every muscle group animated by the state's clip actions.
func (s *State) Muscles() []MuscleGroup {
	if s == nil {
		return nil
	}
	var out []MuscleGroup
	for _, a := range s.Actions {
		if a.Type == ActionClip {
			out = append(out, a.Muscles...)
		}
	}
	return out
}

// Drives returns the drive-toggle actions of the state.
func (s *State) Drives() []Action {
	if s == nil {
		return nil
	}
	var out []Action
	for _, a := range s.Actions {
		if a.Type == ActionDriveToggle {
			out = append(out, a)
		}
	}
	return out
}
