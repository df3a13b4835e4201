package dsl

import (
	"fmt"

	"github.com/aretw0/toggler/internal/validator"
	"github.com/aretw0/toggler/pkg/domain"
)

// Builder manages the project construction.
type Builder struct {
	project domain.Project
	toggles []*ToggleBuilder
}

// New creates a new project builder.
func New(name string) *Builder {
	return &Builder{
		project: domain.Project{Name: name},
	}
}

// Toggle appends a new toggle to the project.
// Toggles compile in the order they are added.
func (b *Builder) Toggle() *ToggleBuilder {
	tb := &ToggleBuilder{builder: b}
	b.toggles = append(b.toggles, tb)
	return tb
}

// Icon overrides the icon of the menu item at path.
func (b *Builder) Icon(path, icon string) *Builder {
	b.project.Icons = append(b.project.Icons, domain.IconOverride{Path: path, Icon: icon})
	return b
}

// SecurityLock gates every secured toggle on the named boolean.
func (b *Builder) SecurityLock(param string) *Builder {
	b.project.SecurityLock = &domain.SecurityLock{Param: param}
	return b
}

// Build assembles and validates the project.
func (b *Builder) Build() (*domain.Project, error) {
	project := b.project
	project.Toggles = make([]domain.Toggle, 0, len(b.toggles))
	for _, tb := range b.toggles {
		project.Toggles = append(project.Toggles, tb.toggle)
	}

	if err := validator.Validate(&project); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidProject, err)
	}
	return &project, nil
}
