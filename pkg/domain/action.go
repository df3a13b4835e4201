package domain

// ActionType discriminates the Action variants.
type ActionType string

const (
	// ActionClip plays an animation clip.
	ActionClip ActionType = "clip"
	// ActionObject toggles an object's active flag.
	ActionObject ActionType = "object"
	// ActionFlipbook pins a flipbook renderer to a frame.
	ActionFlipbook ActionType = "flipbook"
	// ActionDriveToggle drives another toggle's parameter when the state is entered.
	ActionDriveToggle ActionType = "drive_toggle"
)

// MuscleGroup is the humanoid body region a clip binding animates.
type MuscleGroup string

const (
	// MuscleOther covers face and body muscles outside the hands.
	MuscleOther     MuscleGroup = "other"
	MuscleLeftHand  MuscleGroup = "left_hand"
	MuscleRightHand MuscleGroup = "right_hand"
)

// Action is one entry of a State. Type selects which fields are meaningful.
type Action struct {
	Type ActionType `json:"type" yaml:"type" mapstructure:"type"`

	// Clip actions.
	Clip    string        `json:"clip,omitempty" yaml:"clip,omitempty" mapstructure:"clip"`
	Muscles []MuscleGroup `json:"muscles,omitempty" yaml:"muscles,omitempty" mapstructure:"muscles"`

	// Object and flipbook actions.
	Object string `json:"object,omitempty" yaml:"object,omitempty" mapstructure:"object"`
	Active bool   `json:"active,omitempty" yaml:"active,omitempty" mapstructure:"active"`
	Frame  int    `json:"frame,omitempty" yaml:"frame,omitempty" mapstructure:"frame"`

	// Drive-toggle actions.
	MenuPath string  `json:"menu_path,omitempty" yaml:"menu_path,omitempty" mapstructure:"menu_path"`
	Value    float64 `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"`
}

// PlayClip returns a clip action.
func PlayClip(clip string, muscles ...MuscleGroup) Action {
	return Action{Type: ActionClip, Clip: clip, Muscles: muscles}
}

// SetObject returns an object toggle action.
func SetObject(object string, active bool) Action {
	return Action{Type: ActionObject, Object: object, Active: active}
}

// SetFlipbook returns a flipbook frame action.
func SetFlipbook(renderer string, frame int) Action {
	return Action{Type: ActionFlipbook, Object: renderer, Frame: frame}
}

// DriveToggle returns an action driving the toggle found at menuPath.
func DriveToggle(menuPath string, value float64) Action {
	return Action{Type: ActionDriveToggle, MenuPath: menuPath, Value: value}
}
