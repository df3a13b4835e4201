package toggler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/toggler/internal/compiler"
	"github.com/aretw0/toggler/internal/metrics"
	"github.com/aretw0/toggler/internal/validator"
	"github.com/aretw0/toggler/pkg/adapters/file"
	"github.com/aretw0/toggler/pkg/adapters/memory"
	"github.com/aretw0/toggler/pkg/animator"
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/ports"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// Compiler is the high-level entry point for the toggler library.
// It validates projects and compiles each one into a fresh in-memory controller.
// A Compiler holds no per-pass state and may be reused.
type Compiler struct {
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	registry  prometheus.Registerer
	prefix    string
	lockParam string
	clips     ports.ClipLoader
	now       func() time.Time
}

// Option defines a functional option for configuring the Compiler.
type Option func(*Compiler)

// WithLogger sets a custom structured logger for the compiler.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Compiler) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// WithMetrics registers compile metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Compiler) {
		c.registry = reg
	}
}

// WithSecurityLock gates secured toggles on the named boolean, overriding the project's lock.
func WithSecurityLock(param string) Option {
	return func(c *Compiler) {
		c.lockParam = param
	}
}

// WithParamPrefix sets the prefix applied to toggles that ask for a prefixed parameter.
func WithParamPrefix(prefix string) Option {
	return func(c *Compiler) {
		c.prefix = prefix
	}
}

// WithClipLoader replaces the default clip loader.
func WithClipLoader(loader ports.ClipLoader) Option {
	return func(c *Compiler) {
		c.clips = loader
	}
}

// New initializes a new Compiler.
func New(opts ...Option) (*Compiler, error) {
	c := &Compiler{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if c.registry != nil {
		m, err := metrics.New(c.registry)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		c.hooks = c.hooks.Merge(m.Hooks())
	}
	return c, nil
}

// Result is the outcome of one successful compile pass.
type Result struct {
	Project      string
	Summary      *compiler.Summary
	Graph        domain.Graph
	Menu         []domain.MenuItem
	RestingClips []domain.RestingClip
	CreatedAt    time.Time
}

// Artifact packages the result for storage under a new random ID.
func (r *Result) Artifact() *domain.Artifact {
	return &domain.Artifact{
		ID:           uuid.NewString(),
		Project:      r.Project,
		CreatedAt:    r.CreatedAt,
		Graph:        r.Graph,
		Menu:         r.Menu,
		RestingClips: r.RestingClips,
		Groups:       r.Summary.Groups,
	}
}

// Validate reports structural problems in project without compiling it.
// The returned error wraps domain.ErrInvalidProject.
func (c *Compiler) Validate(project *domain.Project) error {
	if err := validator.Validate(project); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidProject, err)
	}
	return nil
}

// Compile validates and compiles project.
func (c *Compiler) Compile(ctx context.Context, project *domain.Project) (*Result, error) {
	if err := c.Validate(project); err != nil {
		return nil, err
	}

	ctrl := animator.New(animator.WithPrefix(c.prefix))
	menu := memory.NewMenu()
	resting := memory.NewRestingState()

	opts := []compiler.Option{
		compiler.WithLogger(c.logger.With("project", project.Name)),
		compiler.WithHooks(c.hooks),
	}
	if c.clips != nil {
		opts = append(opts, compiler.WithClipLoader(c.clips))
	}
	lockParam := c.lockParam
	if lockParam == "" && project.SecurityLock != nil {
		lockParam = project.SecurityLock.Param
	}
	if lockParam != "" {
		opts = append(opts, compiler.WithSecurityLock(compiler.NewParamLock(ctrl, lockParam)))
	}

	summary, err := compiler.New(ctrl, menu, resting, opts...).Compile(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %q: %w", project.Name, err)
	}

	return &Result{
		Project:      project.Name,
		Summary:      summary,
		Graph:        ctrl.Snapshot(),
		Menu:         menu.Items(),
		RestingClips: resting.Clips(),
		CreatedAt:    c.now().UTC(),
	}, nil
}

// CompileFile loads a YAML or JSON project document and compiles it.
func (c *Compiler) CompileFile(ctx context.Context, path string) (*Result, error) {
	project, err := file.LoadProject(path)
	if err != nil {
		return nil, err
	}
	return c.Compile(ctx, project)
}
