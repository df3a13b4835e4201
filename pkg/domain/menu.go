package domain

// MenuControl is the kind of menu entry bound to a parameter.
type MenuControl string

const (
	MenuToggle MenuControl = "toggle"
	MenuButton MenuControl = "button"
	MenuSlider MenuControl = "slider"
)

// MenuItem is a registered menu entry.
type MenuItem struct {
	Path    string      `json:"path" yaml:"path"`
	Control MenuControl `json:"control" yaml:"control"`
	Param   string      `json:"param" yaml:"param"`
	Icon    string      `json:"icon,omitempty" yaml:"icon,omitempty"`
	Value   float64     `json:"value,omitempty" yaml:"value,omitempty"`
}
