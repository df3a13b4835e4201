package domain

// Graph is the compiled controller: every parameter and layer produced by a pass.
type Graph struct {
	Params []Param `json:"params" yaml:"params"`
	Layers []Layer `json:"layers" yaml:"layers"`
}

// Param is a controller parameter.
type Param struct {
	Name    string  `json:"name" yaml:"name"`
	Type    string  `json:"type" yaml:"type"`
	Synced  bool    `json:"synced,omitempty" yaml:"synced,omitempty"`
	Saved   bool    `json:"saved,omitempty" yaml:"saved,omitempty"`
	Default float64 `json:"default,omitempty" yaml:"default,omitempty"`
}

// Layer is one state machine of the controller.
type Layer struct {
	Name         string      `json:"name" yaml:"name"`
	DefaultState string      `json:"default_state,omitempty" yaml:"default_state,omitempty"`
	States       []StateNode `json:"states" yaml:"states"`
	// EntryTransitions and AnyTransitions originate from the layer's entry and any-state nodes.
	EntryTransitions []Transition `json:"entry_transitions,omitempty" yaml:"entry_transitions,omitempty"`
	AnyTransitions   []Transition `json:"any_transitions,omitempty" yaml:"any_transitions,omitempty"`
}

// FindLayer returns the layer with the given name.
func (g *Graph) FindLayer(name string) (*Layer, bool) {
	for i := range g.Layers {
		if g.Layers[i].Name == name {
			return &g.Layers[i], true
		}
	}
	return nil, false
}

// FindParam returns the parameter with the given name.
func (g *Graph) FindParam(name string) (*Param, bool) {
	for i := range g.Params {
		if g.Params[i].Name == name {
			return &g.Params[i], true
		}
	}
	return nil, false
}

// FindState returns the state with the given name.
func (l *Layer) FindState(name string) (*StateNode, bool) {
	for i := range l.States {
		if l.States[i].Name == name {
			return &l.States[i], true
		}
	}
	return nil, false
}
