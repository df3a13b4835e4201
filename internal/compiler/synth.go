package compiler

import (
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/expr"
	"github.com/aretw0/toggler/pkg/ports"
)

// branch is one on-visual of a toggle. Toggles with separate local content compile two.
type branch struct {
	suffix string
	onCase expr.Cond
	state  *domain.State
	in     *domain.State
	out    *domain.State
}

func (p *pass) branches(u *unit) []branch {
	t := u.toggle
	if !t.SeparateLocal {
		return []branch{{suffix: " On", onCase: u.onCase, state: t.State, in: t.TransitionStateIn, out: t.TransitionStateOut}}
	}
	isLocal := p.ctrl.IsLocal().IsTrue()
	return []branch{
		{suffix: " On Remote", onCase: u.onCase.And(isLocal.Not()), state: t.State, in: t.TransitionStateIn, out: t.TransitionStateOut},
		{suffix: " On Local", onCase: u.onCase.And(isLocal), state: t.LocalState, in: t.LocalTransitionStateIn, out: t.LocalTransitionStateOut},
	}
}

// synthesize builds the unit's Off/In/On/Out graph on its animation layer.
func (p *pass) synthesize(u *unit) {
	t := u.toggle
	u.layer = p.animationLayer(u)
	u.off = offState(u.layer, "Off")

	resetter, hasResetter := p.resetter.CreateResetter(t.ResetPhysbones, u.name)
	for _, b := range p.branches(u) {
		p.synthesizeBranch(u, b, resetter, hasResetter)
	}
}

func (p *pass) synthesizeBranch(u *unit, b branch, resetter expr.Bool, hasResetter bool) {
	t := u.toggle
	layer, off := u.layer, u.off
	onName := u.name + b.suffix
	clipName := u.clipPrefix() + b.suffix

	transitionTime := 0.0
	if t.HasTransitionTime {
		transitionTime = t.TransitionTime
	}
	exitTime := -1.0
	if t.HasExitTime {
		exitTime = 1
	}

	clip := p.clips.LoadState(clipName, b.state)

	var inState, onState, outState ports.State
	if t.HasTransition && !b.in.IsEmpty() {
		inClip := p.clips.LoadState(clipName+" In", b.in)
		if clip.IsEmpty() && inClip != nil {
			clip = &domain.Clip{Name: clipName, LastFrameOf: inClip.Name}
		}
		inState = layer.NewState(onName + " In").WithClip(inClip)
		onState = layer.NewState(onName).WithClip(clip)
		inState.TransitionsTo(onState).WithExitTime(1)
		u.states += 2
	} else {
		onState = layer.NewState(onName).WithClip(clip)
		inState = onState
		u.states++
	}

	off.TransitionsToExit().When(b.onCase).WithDuration(transitionTime)
	inState.TransitionsFromEntry().When(b.onCase)

	out := b.out
	if t.SimpleOutTransition {
		out = b.in
	}
	if t.HasTransition && !out.IsEmpty() {
		speed := 1.0
		if t.SimpleOutTransition {
			speed = -1
		}
		outClip := p.clips.LoadState(clipName+" Out", out)
		outState = layer.NewState(onName + " Out").WithClip(outClip).Speed(speed)
		onState.TransitionsTo(outState).When(b.onCase.Not()).WithDuration(transitionTime).WithExitTime(exitTime)
		outState.TransitionsToExit().WithExitTime(1)
		u.states++
	} else {
		onState.TransitionsToExit().When(b.onCase.Not()).WithDuration(transitionTime).WithExitTime(exitTime)
	}

	if hasResetter {
		off.Drives(resetter, 1)
		inState.Drives(resetter, 1)
	}

	for _, name := range t.GlobalParams() {
		global := p.ctrl.NewBool(name, ports.ParamOptions{})
		off.Drives(global, 0)
		inState.Drives(global, 1)
	}

	for _, action := range b.state.Drives() {
		p.drives = append(p.drives, driveRequest{state: onState, action: action, from: u.name})
	}

	p.applyRest(u, layer, off, onState, clip)
}

// applyRest records the resting clip of a default-on toggle shown in the rest pose and makes its
// on state the layer's default. The first such toggle of a layer wins.
func (p *pass) applyRest(u *unit, layer ports.Layer, off, on ports.State, clip *domain.Clip) {
	t := u.toggle
	if !t.IncludeInRest || !t.DefaultOn || u.resting != nil {
		return
	}
	u.resting = clip
	if p.restLayers[layer] {
		return
	}
	p.restLayers[layer] = true
	layer.SetDefaultState(on)
	if !u.isExclusive() {
		off.TransitionsFromEntry()
	}
}
