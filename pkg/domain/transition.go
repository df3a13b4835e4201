package domain

// Special transition endpoints.
const (
	EndpointEntry = "<entry>"
	EndpointAny   = "<any>"
	EndpointExit  = "<exit>"
)

// Transition defines a rule to move from one state to another.
type Transition struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`

	// Condition is the rendered guard. Empty means unconditional.
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`

	// Duration is the cross-fade in seconds. Zero is instantaneous.
	Duration float64 `json:"duration,omitempty" yaml:"duration,omitempty"`

	// ExitTime, when set, gates the transition on the source clip's normalised time.
	ExitTime *float64 `json:"exit_time,omitempty" yaml:"exit_time,omitempty"`
}
