package animator

import (
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/expr"
	"github.com/aretw0/toggler/pkg/ports"
)

// Built-in host parameter names.
const (
	ParamGestureLeft  = "GestureLeft"
	ParamGestureRight = "GestureRight"
	ParamIsLocal      = "IsLocal"
)

// Controller is an in-memory animation controller.
// It is not safe for concurrent use; a compile pass owns it exclusively.
type Controller struct {
	prefix string
	params []*param
	byName map[string]*param
	layers []*Layer
}

type param struct {
	name string
	kind expr.Kind
	opts ports.ParamOptions
}

// Option configures a Controller.
type Option func(*Controller)

// WithPrefix sets the prefix applied to parameters created with UsePrefix.
func WithPrefix(prefix string) Option {
	return func(c *Controller) {
		c.prefix = prefix
	}
}

// New creates an empty controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		byName: make(map[string]*param),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.Controller = (*Controller)(nil)

// NewLayer appends a new layer.
func (c *Controller) NewLayer(name string) ports.Layer {
	l := &Layer{name: name}
	c.layers = append(c.layers, l)
	return l
}

func (c *Controller) NewBool(name string, opts ports.ParamOptions) expr.Bool {
	return expr.NewBoolHandle(c.register(name, expr.KindBool, opts))
}

func (c *Controller) NewInt(name string, opts ports.ParamOptions) expr.Int {
	return expr.NewIntHandle(c.register(name, expr.KindInt, opts))
}

func (c *Controller) NewFloat(name string, opts ports.ParamOptions) expr.Float {
	return expr.NewFloatHandle(c.register(name, expr.KindFloat, opts))
}

func (c *Controller) GestureLeft() expr.Int {
	return c.NewInt(ParamGestureLeft, ports.ParamOptions{})
}

func (c *Controller) GestureRight() expr.Int {
	return c.NewInt(ParamGestureRight, ports.ParamOptions{})
}

func (c *Controller) IsLocal() expr.Bool {
	return c.NewBool(ParamIsLocal, ports.ParamOptions{})
}

// register returns the final parameter name, creating the parameter if absent.
// Names are unique per (name, kind); a clash across kinds gets a kind suffix.
func (c *Controller) register(name string, kind expr.Kind, opts ports.ParamOptions) string {
	if opts.UsePrefix && c.prefix != "" {
		name = c.prefix + name
	}
	if existing, ok := c.byName[name]; ok {
		if existing.kind == kind {
			return name
		}
		name = name + " (" + string(kind) + ")"
		if again, ok := c.byName[name]; ok && again.kind == kind {
			return name
		}
	}
	p := &param{name: name, kind: kind, opts: opts}
	c.params = append(c.params, p)
	c.byName[name] = p
	return name
}

// Layers returns the layers in creation order.
func (c *Controller) Layers() []*Layer {
	return c.layers
}

// LayerCount returns the number of layers.
func (c *Controller) LayerCount() int {
	return len(c.layers)
}

// ParamCount returns the number of registered parameters.
func (c *Controller) ParamCount() int {
	return len(c.params)
}

// Snapshot converts the controller into its serialisable form.
func (c *Controller) Snapshot() domain.Graph {
	g := domain.Graph{
		Params: make([]domain.Param, 0, len(c.params)),
		Layers: make([]domain.Layer, 0, len(c.layers)),
	}
	for _, p := range c.params {
		g.Params = append(g.Params, domain.Param{
			Name:    p.name,
			Type:    string(p.kind),
			Synced:  p.opts.Synced,
			Saved:   p.opts.Saved,
			Default: p.opts.Default,
		})
	}
	for _, l := range c.layers {
		g.Layers = append(g.Layers, l.snapshot())
	}
	return g
}

// FindLayer returns the first layer with the given name.
func (c *Controller) FindLayer(name string) (*Layer, bool) {
	for _, l := range c.layers {
		if l.name == name {
			return l, true
		}
	}
	return nil, false
}
