package memory

import (
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/expr"
	"github.com/aretw0/toggler/pkg/ports"
)

// Menu records menu registrations in order.
type Menu struct {
	items []domain.MenuItem
}

// NewMenu creates an empty menu.
func NewMenu() *Menu {
	return &Menu{}
}

var _ ports.Menu = (*Menu)(nil)

func (m *Menu) NewToggle(path string, param expr.Handle, icon string, value float64) {
	m.add(domain.MenuItem{Path: path, Control: domain.MenuToggle, Param: param.Name(), Icon: icon, Value: value})
}

func (m *Menu) NewButton(path string, param expr.Handle, icon string, value float64) {
	m.add(domain.MenuItem{Path: path, Control: domain.MenuButton, Param: param.Name(), Icon: icon, Value: value})
}

func (m *Menu) NewSlider(path string, param expr.Float, icon string) {
	m.add(domain.MenuItem{Path: path, Control: domain.MenuSlider, Param: param.Name(), Icon: icon})
}

// SetIcon replaces the icon of every item registered at path.
func (m *Menu) SetIcon(path, icon string) bool {
	found := false
	for i := range m.items {
		if m.items[i].Path == path {
			m.items[i].Icon = icon
			found = true
		}
	}
	return found
}

// Items returns the registered items in registration order.
func (m *Menu) Items() []domain.MenuItem {
	out := make([]domain.MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

// Find returns the first item registered at path.
func (m *Menu) Find(path string) (domain.MenuItem, bool) {
	for _, item := range m.items {
		if item.Path == path {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

func (m *Menu) add(item domain.MenuItem) {
	m.items = append(m.items, item)
}

// RestingState collects resting-pose clips in order.
type RestingState struct {
	clips []domain.RestingClip
}

// NewRestingState creates an empty collector.
func NewRestingState() *RestingState {
	return &RestingState{}
}

var _ ports.RestingState = (*RestingState)(nil)

func (r *RestingState) ApplyClip(clip *domain.Clip, additive bool) {
	if clip == nil {
		return
	}
	r.clips = append(r.clips, domain.RestingClip{Clip: *clip, Additive: additive})
}

// Clips returns the collected clips.
func (r *RestingState) Clips() []domain.RestingClip {
	out := make([]domain.RestingClip, len(r.clips))
	copy(out, r.clips)
	return out
}
