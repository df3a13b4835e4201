package compiler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/expr"
	"github.com/aretw0/toggler/pkg/ports"
)

// Compiler compiles the toggles of a project into a host controller.
// A Compiler is bound to one controller and is meant to run a single pass.
type Compiler struct {
	ctrl     ports.Controller
	menu     ports.Menu
	resting  ports.RestingState
	lock     ports.SecurityLock
	clips    ports.ClipLoader
	resetter ports.PhysBoneResetter
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithSecurityLock gates security-enabled toggles behind lock.
func WithSecurityLock(lock ports.SecurityLock) Option {
	return func(c *Compiler) {
		c.lock = lock
	}
}

// WithClipLoader replaces the default clip loader.
func WithClipLoader(loader ports.ClipLoader) Option {
	return func(c *Compiler) {
		c.clips = loader
	}
}

// WithPhysBoneResetter replaces the default physbone resetter.
func WithPhysBoneResetter(r ports.PhysBoneResetter) Option {
	return func(c *Compiler) {
		c.resetter = r
	}
}

// WithLogger sets the compiler logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// WithHooks registers lifecycle hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Compiler) {
		c.hooks = hooks
	}
}

// New creates a compiler writing into ctrl, registering menu entries on menu and resting clips on
// resting.
func New(ctrl ports.Controller, menu ports.Menu, resting ports.RestingState, opts ...Option) *Compiler {
	c := &Compiler{
		ctrl:    ctrl,
		menu:    menu,
		resting: resting,
		clips:   NewClipLoader(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.resetter == nil {
		c.resetter = NewPhysBoneResetter(ctrl)
	}
	return c
}

// Summary describes the outcome of a pass.
type Summary struct {
	Compiled []ToggleResult
	// Skipped holds the declaration indices of inert toggles.
	Skipped []int
	Groups  []domain.GroupInfo
}

// ToggleResult describes one compiled toggle.
type ToggleResult struct {
	Name    string
	Layer   string
	Param   string
	Primary string
	// Slot is the toggle's value on its group's shared integer, or -1.
	Slot   int
	States int
	Slider bool
	OnCase expr.Cond
}

// sizer is implemented by controllers able to report their size.
type sizer interface {
	ParamCount() int
	LayerCount() int
}

// pass holds the state of one compilation. Every lookup table is scoped to it.
type pass struct {
	*Compiler
	project *domain.Project

	units       []*unit
	groups      []domain.GroupInfo
	animLayers  map[string]ports.Layer
	paramLayers map[string]ports.Layer
	restLayers  map[ports.Layer]bool
	drives      []driveRequest
	driver      *floatDriver
}

// Compile runs the whole pass over the project's toggles in declaration order.
// The only failure is an exclusive group outgrowing the integer encoding, which aborts the pass.
func (c *Compiler) Compile(ctx context.Context, project *domain.Project) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	p := &pass{
		Compiler:    c,
		project:     project,
		animLayers:  make(map[string]ports.Layer),
		paramLayers: make(map[string]ports.Layer),
		restLayers:  make(map[ports.Layer]bool),
		driver:      &floatDriver{ctrl: c.ctrl},
	}

	summary, err := p.run(ctx)

	if c.hooks.OnPassFinished != nil {
		evt := &domain.PassEvent{
			EventBase: p.event(domain.EventPassFinished),
			Duration:  time.Since(start),
			Toggles:   len(project.Toggles),
			Err:       err,
		}
		if s, ok := c.ctrl.(sizer); ok {
			evt.Params = s.ParamCount()
			evt.Layers = s.LayerCount()
		}
		c.hooks.OnPassFinished(ctx, evt)
	}
	if err != nil {
		c.logger.Error("compile failed", "project", project.Name, "error", err)
		return nil, err
	}
	c.logger.Info("compile finished",
		"project", project.Name,
		"compiled", len(summary.Compiled),
		"skipped", len(summary.Skipped),
		"groups", len(summary.Groups),
		"duration", time.Since(start))
	return summary, nil
}

func (p *pass) run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	for i := range p.project.Toggles {
		p.units = append(p.units, newUnit(i, &p.project.Toggles[i]))
	}
	p.resolvePrimaries()

	for _, u := range p.units {
		if u.skipped {
			p.logger.Debug("toggle skipped", "index", u.index, "reason", u.skipNote)
			summary.Skipped = append(summary.Skipped, u.index)
			p.emit(ctx, p.hooks.OnToggleSkipped, u)
			continue
		}
		if u.toggle.Slider {
			p.slider(u)
		} else if err := p.build(u); err != nil {
			return nil, fmt.Errorf("toggle %q: %w", u.name, err)
		}
		p.emit(ctx, p.hooks.OnToggleCompiled, u)
	}

	for _, u := range p.units {
		p.applyExclusive(u)
	}
	p.resolveDrives()
	p.driver.apply()

	for _, u := range p.units {
		if u.resting != nil {
			p.resting.ApplyClip(u.resting, true)
		}
	}
	p.applyIcons()

	for _, u := range p.units {
		if !u.skipped {
			summary.Compiled = append(summary.Compiled, u.result())
		}
	}
	summary.Groups = p.groups
	if p.hooks.OnGroupResolved != nil {
		for _, g := range p.groups {
			p.hooks.OnGroupResolved(ctx, &domain.GroupEvent{EventBase: p.event(domain.EventGroupResolved), Group: g})
		}
	}
	return summary, nil
}

// build runs the allocator, evaluator and synthesizer for a regular toggle.
func (p *pass) build(u *unit) error {
	if err := p.checkExclusive(u); err != nil {
		return err
	}
	p.allocateParam(u)

	tags := u.tags
	if !u.exclusive {
		tags = nil
	}
	u.onCase = evaluator{ctrl: p.ctrl, menu: u.onParam, tags: tags}.evaluate(u.toggle.Condition)
	if u.toggle.SecurityEnabled && p.lock != nil {
		u.onCase = u.onCase.And(p.lock.Unlocked())
	}

	p.synthesize(u)
	p.logger.Debug("toggle compiled",
		"toggle", u.name,
		"layer", u.layer.Name(),
		"primary", u.primary,
		"indexed", u.indexed(),
		"states", u.states)
	return nil
}

// slider compiles a toggle in slider mode: a float parameter scrubbing the on clip.
func (p *pass) slider(u *unit) {
	t := u.toggle
	def := 0.0
	if t.DefaultOn {
		def = t.DefaultSliderValue
	}
	x := p.ctrl.NewFloat(u.name, ports.ParamOptions{
		Synced:    u.addMenuItem,
		Saved:     t.Saved,
		Default:   def,
		UsePrefix: u.usePrefix,
	})
	u.param = x
	u.hasParam = true
	u.onParam = x.IsGreaterThan(0)

	if u.addMenuItem {
		p.menu.NewSlider(u.name, x, p.icon(u))
	}

	u.layer = p.ctrl.NewLayer(u.name)
	off := u.layer.NewState("Off")
	on := u.layer.NewState("On").WithClip(p.clips.LoadState(u.clipPrefix()+" On", t.State)).MotionTime(x)
	u.off = off
	u.states = 2

	isOn := x.IsGreaterThan(0)
	off.TransitionsTo(on).When(isOn)
	on.TransitionsTo(off).When(isOn.Not())

	for _, name := range t.GlobalParams() {
		p.driver.Drive(name, x, 1, 0)
	}
}

// applyIcons replaces menu icons by path. Unknown paths are skipped.
func (p *pass) applyIcons() {
	for _, icon := range p.project.Icons {
		if !p.menu.SetIcon(icon.Path, icon.Icon) {
			p.logger.Debug("icon path not found", "path", icon.Path)
		}
	}
}

func (p *pass) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, Project: p.project.Name}
}

func (p *pass) emit(ctx context.Context, hook func(context.Context, *domain.ToggleEvent), u *unit) {
	if hook == nil {
		return
	}
	typ := domain.EventToggleCompiled
	if u.skipped {
		typ = domain.EventToggleSkipped
	}
	hook(ctx, &domain.ToggleEvent{
		EventBase: p.event(typ),
		Name:      u.name,
		Slider:    u.toggle.Slider,
		States:    u.states,
	})
}

func (s *Summary) String() string {
	return fmt.Sprintf("%d compiled, %d skipped, %d groups", len(s.Compiled), len(s.Skipped), len(s.Groups))
}

// Find returns the compiled toggle with the given name.
func (s *Summary) Find(name string) (ToggleResult, bool) {
	for _, r := range s.Compiled {
		if r.Name == name {
			return r, true
		}
	}
	return ToggleResult{}, false
}

func (u *unit) result() ToggleResult {
	r := ToggleResult{
		Name:    u.name,
		Primary: u.primary,
		Slot:    -1,
		States:  u.states,
		OnCase:  u.onCase,
		Slider:  u.toggle.Slider,
	}
	if u.layer != nil {
		r.Layer = u.layer.Name()
	}
	if u.hasParam {
		r.Param = u.param.Name()
	}
	if u.indexed() {
		r.Slot = u.intTarget
	}
	return r
}
