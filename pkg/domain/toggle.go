package domain

import "strings"

// Toggle declares one user-controllable state switch.
type Toggle struct {
	// Condition activates the toggle. An empty condition makes the toggle inert.
	Condition Condition `json:"condition" yaml:"condition" mapstructure:"condition"`

	// Visual content.
	State                   *State `json:"state,omitempty" yaml:"state,omitempty" mapstructure:"state"`
	TransitionStateIn       *State `json:"transition_in,omitempty" yaml:"transition_in,omitempty" mapstructure:"transition_in"`
	TransitionStateOut      *State `json:"transition_out,omitempty" yaml:"transition_out,omitempty" mapstructure:"transition_out"`
	SeparateLocal           bool   `json:"separate_local,omitempty" yaml:"separate_local,omitempty" mapstructure:"separate_local"`
	LocalState              *State `json:"local_state,omitempty" yaml:"local_state,omitempty" mapstructure:"local_state"`
	LocalTransitionStateIn  *State `json:"local_transition_in,omitempty" yaml:"local_transition_in,omitempty" mapstructure:"local_transition_in"`
	LocalTransitionStateOut *State `json:"local_transition_out,omitempty" yaml:"local_transition_out,omitempty" mapstructure:"local_transition_out"`

	// Parameter options.
	Saved            bool   `json:"saved,omitempty" yaml:"saved,omitempty" mapstructure:"saved"`
	DefaultOn        bool   `json:"default_on,omitempty" yaml:"default_on,omitempty" mapstructure:"default_on"`
	ParamOverride    string `json:"param_override,omitempty" yaml:"param_override,omitempty" mapstructure:"param_override"`
	UsePrefixOnParam bool   `json:"use_prefix,omitempty" yaml:"use_prefix,omitempty" mapstructure:"use_prefix"`
	UseInt           bool   `json:"use_int,omitempty" yaml:"use_int,omitempty" mapstructure:"use_int"`

	// Slider mode bypasses the exclusive and transition machinery.
	Slider             bool    `json:"slider,omitempty" yaml:"slider,omitempty" mapstructure:"slider"`
	DefaultSliderValue float64 `json:"default_slider_value,omitempty" yaml:"default_slider_value,omitempty" mapstructure:"default_slider_value"`

	// Menu presentation.
	HoldButton bool   `json:"hold_button,omitempty" yaml:"hold_button,omitempty" mapstructure:"hold_button"`
	EnableIcon bool   `json:"enable_icon,omitempty" yaml:"enable_icon,omitempty" mapstructure:"enable_icon"`
	Icon       string `json:"icon,omitempty" yaml:"icon,omitempty" mapstructure:"icon"`

	// Rest pose.
	IncludeInRest bool `json:"include_in_rest,omitempty" yaml:"include_in_rest,omitempty" mapstructure:"include_in_rest"`

	// Exclusivity. ExclusiveTag is a comma separated list.
	EnableExclusiveTag bool   `json:"enable_exclusive_tag,omitempty" yaml:"enable_exclusive_tag,omitempty" mapstructure:"enable_exclusive_tag"`
	ExclusiveTag       string `json:"exclusive_tag,omitempty" yaml:"exclusive_tag,omitempty" mapstructure:"exclusive_tag"`
	ExclusiveOffState  bool   `json:"exclusive_off_state,omitempty" yaml:"exclusive_off_state,omitempty" mapstructure:"exclusive_off_state"`

	// Transitions.
	HasTransition       bool    `json:"has_transition,omitempty" yaml:"has_transition,omitempty" mapstructure:"has_transition"`
	SimpleOutTransition bool    `json:"simple_out_transition,omitempty" yaml:"simple_out_transition,omitempty" mapstructure:"simple_out_transition"`
	HasTransitionTime   bool    `json:"has_transition_time,omitempty" yaml:"has_transition_time,omitempty" mapstructure:"has_transition_time"`
	TransitionTime      float64 `json:"transition_time,omitempty" yaml:"transition_time,omitempty" mapstructure:"transition_time"`
	HasExitTime         bool    `json:"has_exit_time,omitempty" yaml:"has_exit_time,omitempty" mapstructure:"has_exit_time"`

	// Side effects. DriveGlobalParam is a comma separated list.
	SecurityEnabled        bool     `json:"security_enabled,omitempty" yaml:"security_enabled,omitempty" mapstructure:"security_enabled"`
	ResetPhysbones         []string `json:"reset_physbones,omitempty" yaml:"reset_physbones,omitempty" mapstructure:"reset_physbones"`
	EnableDriveGlobalParam bool     `json:"enable_drive_global_param,omitempty" yaml:"enable_drive_global_param,omitempty" mapstructure:"enable_drive_global_param"`
	DriveGlobalParam       string   `json:"drive_global_param,omitempty" yaml:"drive_global_param,omitempty" mapstructure:"drive_global_param"`
}

// ExplicitTags returns the declared exclusive tags when exclusivity is enabled.
func (t *Toggle) ExplicitTags() []string {
	if !t.EnableExclusiveTag {
		return nil
	}
	return SplitList(t.ExclusiveTag)
}

// GlobalParams returns the global booleans this toggle drives.
func (t *Toggle) GlobalParams() []string {
	if !t.EnableDriveGlobalParam {
		return nil
	}
	return SplitList(t.DriveGlobalParam)
}

// States returns every non-nil content state of the toggle.
func (t *Toggle) States() []*State {
	all := []*State{
		t.State, t.LocalState,
		t.TransitionStateIn, t.LocalTransitionStateIn,
		t.TransitionStateOut, t.LocalTransitionStateOut,
	}
	out := make([]*State, 0, len(all))
	for _, s := range all {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// SplitList splits a comma separated list, trimming entries and dropping empty and repeated ones.
// Order of first appearance is preserved.
func SplitList(list string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}
