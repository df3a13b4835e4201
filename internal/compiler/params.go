package compiler

import (
	"github.com/aretw0/toggler/pkg/expr"
	"github.com/aretw0/toggler/pkg/ports"
)

// ExclusivesParam names the integer shared by an indexed exclusive group.
func ExclusivesParam(tag string) string {
	return tag + "_Exclusives"
}

// allocateParam creates the parameter backing the unit's on state and registers its menu entries.
// Units named after a gesture or a global signal get no parameter; their menu triggers never fire.
func (p *pass) allocateParam(u *unit) {
	u.onParam = expr.Never()
	if !u.addMenuItem && !u.override {
		return
	}
	t := u.toggle
	opts := ports.ParamOptions{Synced: true, Saved: t.Saved, UsePrefix: u.usePrefix}

	switch {
	case u.indexed():
		param := p.ctrl.NewInt(ExclusivesParam(u.primary), p.groupParamOptions(u.primary))
		u.param = param
		u.onParam = param.IsEqualTo(u.intTarget)
	case u.useInt:
		if t.DefaultOn {
			opts.Default = 1
		}
		param := p.ctrl.NewInt(u.name, opts)
		u.param = param
		u.onParam = param.IsNotEqualTo(0)
	default:
		if t.DefaultOn {
			opts.Default = 1
		}
		param := p.ctrl.NewBool(u.name, opts)
		u.param = param
		u.onParam = param.IsTrue()
	}
	u.hasParam = true

	if !u.addMenuItem {
		return
	}
	value := 1.0
	if u.indexed() {
		value = float64(u.intTarget)
	}
	for _, path := range u.menuPaths() {
		if t.HoldButton {
			p.menu.NewButton(path, u.param, p.icon(u), value)
		} else {
			p.menu.NewToggle(path, u.param, p.icon(u), value)
		}
	}
}

// groupParamOptions resolves the options of an indexed group's shared integer from all of its
// members. The default is the slot of the first default-on member; the integer is saved when any
// member is.
func (p *pass) groupParamOptions(tag string) ports.ParamOptions {
	opts := ports.ParamOptions{Synced: true}
	slot := 0
	for _, o := range p.units {
		if !o.qualifies() || o.primary != tag {
			continue
		}
		slot++
		if o.toggle.Saved {
			opts.Saved = true
		}
		if o.toggle.DefaultOn && opts.Default == 0 {
			opts.Default = float64(slot)
		}
	}
	return opts
}

func (p *pass) icon(u *unit) string {
	if !u.toggle.EnableIcon {
		return ""
	}
	return u.toggle.Icon
}

// driveValue maps a drive-toggle request onto the unit's parameter encoding.
func (u *unit) driveValue(value float64) float64 {
	switch {
	case u.indexed():
		if value != 0 {
			return float64(u.intTarget)
		}
		return 0
	case u.useInt:
		return value
	case value != 0:
		return 1
	}
	return 0
}
