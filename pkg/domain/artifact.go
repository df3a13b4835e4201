package domain

import "time"

// GroupInfo summarises one resolved exclusive group.
type GroupInfo struct {
	Tag      string        `json:"tag" yaml:"tag"`
	Encoding Encoding      `json:"encoding" yaml:"encoding"`
	Param    string        `json:"param,omitempty" yaml:"param,omitempty"`
	Members  []GroupMember `json:"members" yaml:"members"`
}

// GroupMember is one toggle of an exclusive group.
type GroupMember struct {
	Name     string `json:"name" yaml:"name"`
	Slot     int    `json:"slot,omitempty" yaml:"slot,omitempty"`
	OffState bool   `json:"off_state,omitempty" yaml:"off_state,omitempty"`
}

// RestingClip is a clip contributed to the resting pose.
type RestingClip struct {
	Clip     Clip `json:"clip" yaml:"clip"`
	Additive bool `json:"additive" yaml:"additive"`
}

// Artifact is the serialisable result of one compile pass.
type Artifact struct {
	ID           string        `json:"id" yaml:"id"`
	Project      string        `json:"project" yaml:"project"`
	CreatedAt    time.Time     `json:"created_at" yaml:"created_at"`
	Graph        Graph         `json:"graph" yaml:"graph"`
	Menu         []MenuItem    `json:"menu,omitempty" yaml:"menu,omitempty"`
	RestingClips []RestingClip `json:"resting_clips,omitempty" yaml:"resting_clips,omitempty"`
	Groups       []GroupInfo   `json:"groups,omitempty" yaml:"groups,omitempty"`
}
