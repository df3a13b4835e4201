package domain

// Project is the unit of compilation: every toggle built together in one pass.
type Project struct {
	Name    string         `json:"name" yaml:"name" mapstructure:"name"`
	Toggles []Toggle       `json:"toggles" yaml:"toggles" mapstructure:"toggles"`
	Icons   []IconOverride `json:"icons,omitempty" yaml:"icons,omitempty" mapstructure:"icons"`

	// SecurityLock, when set, gates every security-enabled toggle.
	SecurityLock *SecurityLock `json:"security_lock,omitempty" yaml:"security_lock,omitempty" mapstructure:"security_lock"`
}

// IconOverride replaces the icon of the menu item at Path.
type IconOverride struct {
	Path string `json:"path" yaml:"path" mapstructure:"path"`
	Icon string `json:"icon" yaml:"icon" mapstructure:"icon"`
}

// SecurityLock names the boolean signal that is set while the avatar is unlocked.
type SecurityLock struct {
	Param string `json:"param" yaml:"param" mapstructure:"param"`
}
