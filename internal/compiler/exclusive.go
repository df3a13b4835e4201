package compiler

import (
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/expr"
	"github.com/aretw0/toggler/pkg/ports"
)

// resolvePrimaries picks each exclusive unit's primary tag: the own tag shared by the most
// parameter-owning, non off-state toggles. Ties go to the tag declared first.
func (p *pass) resolvePrimaries() {
	for _, u := range p.units {
		if u.skipped || u.toggle.Slider || !u.exclusive {
			continue
		}
		if len(u.tags) == 0 {
			p.logger.Warn("exclusive tags enabled without any tag", "toggle", u.name)
			continue
		}
		best, top := "", -1
		for _, tag := range u.tags {
			count := 1
			for _, o := range p.units {
				if o.qualifies() && o.hasTag(tag) {
					count++
				}
			}
			if count > top {
				best, top = tag, count
			}
		}
		u.primary = best
		if best != "" {
			p.logger.Debug("primary exclusive tag", "toggle", u.name, "tag", best, "count", top)
		}
	}
}

// checkExclusive sizes the unit's group and promotes it to the indexed encoding when it
// outgrows the boolean one. The size counts the group's parameter-owning, non off-state members so
// every member sees the same encoding. Slots follow declaration order starting at 1; off-state
// members hold 0.
func (p *pass) checkExclusive(u *unit) error {
	if !u.isExclusive() {
		return nil
	}
	size, slot := 0, 0
	for _, o := range p.units {
		if o.qualifies() && o.primary == u.primary {
			size++
			if o == u {
				slot = size
			}
		}
	}
	if size > domain.MaxExclusiveGroupSize {
		return &domain.ExclusiveOverflowError{Tag: u.primary, Size: size}
	}
	if size > domain.MaxBooleanGroupSize && u.addMenuItem {
		u.useInt = true
		u.intTarget = slot
	}

	g := p.group(u.primary)
	member := domain.GroupMember{Name: u.name, OffState: u.toggle.ExclusiveOffState}
	if u.indexed() {
		g.Encoding = domain.EncodingIndexed
		g.Param = ExclusivesParam(u.primary)
		member.Slot = u.intTarget
	}
	g.Members = append(g.Members, member)
	return nil
}

func (p *pass) group(tag string) *domain.GroupInfo {
	for i := range p.groups {
		if p.groups[i].Tag == tag {
			return &p.groups[i]
		}
	}
	p.groups = append(p.groups, domain.GroupInfo{Tag: tag, Encoding: domain.EncodingBoolean})
	return &p.groups[len(p.groups)-1]
}

// animationLayer returns the layer hosting the unit's states.
// Exclusive units share one layer per primary tag.
func (p *pass) animationLayer(u *unit) ports.Layer {
	if !u.isExclusive() {
		return p.ctrl.NewLayer(u.name)
	}
	if l, ok := p.animLayers[u.primary]; ok {
		return l
	}
	l := p.ctrl.NewLayer(u.primary + " Animations")
	p.animLayers[u.primary] = l
	return l
}

// parameterLayer returns the auxiliary layer enforcing exclusivity for a tag.
// Its first state is the idle "Default".
func (p *pass) parameterLayer(tag string) ports.Layer {
	if l, ok := p.paramLayers[tag]; ok {
		return l
	}
	l := p.ctrl.NewLayer(tag + " Parameters")
	l.NewState("Default")
	p.paramLayers[tag] = l
	return l
}

// offState returns the first state of the layer, creating it when the layer is empty.
func offState(l ports.Layer, name string) ports.State {
	if states := l.States(); len(states) > 0 {
		return states[0]
	}
	return l.NewState(name)
}

type zeroGroup struct {
	param expr.Int
	conds []expr.Cond
}

// applyExclusive wires the unit into its tag's parameter layer. Turning the unit on clears every
// sibling sharing one of its tags: boolean siblings are driven false, siblings encoded on another
// integer are zeroed first. The tag locks are held between the trigger and exit states.
func (p *pass) applyExclusive(u *unit) {
	if u.skipped || u.toggle.Slider || !u.isExclusive() || !u.hasParam {
		return
	}
	t := u.toggle

	var turnOff []expr.Bool
	var zero []*zeroGroup
	allOthersOff := expr.Always()
	seen := make(map[*unit]bool)

	for _, tag := range u.tags {
		for _, o := range p.units {
			if o == u || seen[o] || o.skipped || o.toggle.Slider || !o.hasParam || !o.hasTag(tag) {
				continue
			}
			seen[o] = true
			if o.useInt {
				if o.param.Name() == u.param.Name() {
					continue
				}
				zero = addZero(zero, o.param.(expr.Int), o.onParam)
				continue
			}
			turnOff = append(turnOff, o.param.(expr.Bool))
			allOthersOff = allOthersOff.And(o.onParam.Not())
		}
	}

	if t.IncludeInRest && t.DefaultOn {
		u.off.TransitionsFromEntry().When(allOthersOff)
	}

	layer := p.parameterLayer(u.primary)
	start := offState(layer, "Default")
	trigger := layer.NewState(u.name)
	exit := layer.NewState(u.name + " Exit")

	trigger.TransitionsTo(exit).When(u.onParam.Not())
	exit.TransitionsToExit()

	for _, tag := range u.tags {
		lock := p.ctrl.NewBool(LockParam(tag), ports.ParamOptions{})
		trigger.Drives(lock, 1)
		exit.Drives(lock, 0)
	}

	type intState struct {
		cond  expr.Cond
		state ports.State
	}
	var intStates []intState
	allOr := expr.Never()
	for _, g := range zero {
		or := expr.Never()
		for _, c := range g.conds {
			or = or.Or(c)
		}
		s := layer.NewState(u.name + " + " + g.param.Name())
		cond := u.onParam.And(or)
		start.TransitionsTo(s).When(cond)
		s.Drives(g.param, 0)
		intStates = append(intStates, intState{cond: cond, state: s})
		allOr = allOr.Or(or)
	}
	for i, a := range intStates {
		for j, b := range intStates {
			if i != j {
				a.state.TransitionsTo(b.state).When(b.cond)
			}
		}
		a.state.TransitionsTo(trigger).When(allOr.Not())
	}

	trigger.TransitionsFromAny().When(u.onParam.And(allOr.Not()))
	for _, b := range turnOff {
		trigger.Drives(b, 0)
	}

	if !u.useInt && t.ExclusiveOffState {
		start.TransitionsTo(trigger).When(allOthersOff)
		trigger.Drives(u.param, 1)
	}
}

func addZero(groups []*zeroGroup, param expr.Int, cond expr.Cond) []*zeroGroup {
	for _, g := range groups {
		if g.param.Name() == param.Name() {
			g.conds = append(g.conds, cond)
			return groups
		}
	}
	return append(groups, &zeroGroup{param: param, conds: []expr.Cond{cond}})
}
