package domain

// StateNode is a compiled state of a layer.
type StateNode struct {
	Name string `json:"name" yaml:"name"`

	// Clip is the motion played while in the state. Nil for logic-only states.
	Clip *Clip `json:"clip,omitempty" yaml:"clip,omitempty"`

	// Speed is the playback multiplier; negative plays the clip backwards.
	Speed float64 `json:"speed" yaml:"speed"`

	// MotionTime names a float parameter driving the clip's normalised time.
	MotionTime string `json:"motion_time,omitempty" yaml:"motion_time,omitempty"`

	// Drivers are parameter writes performed on entry.
	Drivers []Driver `json:"drivers,omitempty" yaml:"drivers,omitempty"`

	// Transitions defines the possible paths out of this state.
	Transitions []Transition `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// Driver writes Value into Param when its state is entered.
type Driver struct {
	Param string  `json:"param" yaml:"param"`
	Value float64 `json:"value" yaml:"value"`
}

// Clip is the loaded visual content of a State.
type Clip struct {
	Name    string   `json:"name" yaml:"name"`
	Actions []Action `json:"actions,omitempty" yaml:"actions,omitempty"`
	// LastFrameOf names a clip whose final frame this clip holds.
	LastFrameOf string `json:"last_frame_of,omitempty" yaml:"last_frame_of,omitempty"`
}

// IsEmpty reports whether the clip animates nothing.
func (c *Clip) IsEmpty() bool {
	return c == nil || (len(c.Actions) == 0 && c.LastFrameOf == "")
}
