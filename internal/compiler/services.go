package compiler

import (
	"fmt"
	"strconv"

	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/expr"
	"github.com/aretw0/toggler/pkg/ports"
)

// DriverThreshold is the control value above which a float drive request counts as on.
const DriverThreshold = 0.003

// floatDriver turns float controls into discrete parameter writes.
// Requests are collected during the pass and emitted once every toggle is built.
type floatDriver struct {
	ctrl     ports.Controller
	requests []floatRequest
}

type floatRequest struct {
	output  string
	control expr.Float
	on, off float64
}

// Drive asks for output to be written on when control rises above the threshold and off when it
// falls back below it.
func (d *floatDriver) Drive(output string, control expr.Float, on, off float64) {
	d.requests = append(d.requests, floatRequest{output: output, control: control, on: on, off: off})
}

func (d *floatDriver) apply() {
	for _, r := range d.requests {
		out := d.ctrl.NewBool(r.output, ports.ParamOptions{})
		layer := d.ctrl.NewLayer(fmt.Sprintf("Drive %s from %s", r.output, r.control.Name()))
		idle := layer.NewState("Idle")
		on := layer.NewState(r.output + " = " + formatValue(r.on)).Drives(out, r.on)
		off := layer.NewState(r.output + " = " + formatValue(r.off)).Drives(out, r.off)

		active := r.control.IsGreaterThan(DriverThreshold)
		idle.TransitionsTo(on).When(active)
		on.TransitionsTo(off).When(active.Not())
		off.TransitionsTo(on).When(active)
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// driveRequest is a drive-toggle action found on a compiled on state.
type driveRequest struct {
	state  ports.State
	action domain.Action
	from   string
}

// resolveDrives wires drive-toggle actions once every parameter is allocated.
// References to menu paths no toggle owns are skipped.
func (p *pass) resolveDrives() {
	for _, r := range p.drives {
		target := p.ownerOf(r.action.MenuPath)
		if target == nil {
			p.logger.Debug("drive target not found", "toggle", r.from, "path", r.action.MenuPath)
			continue
		}
		r.state.Drives(target.param, target.driveValue(r.action.Value))
	}
}

func (p *pass) ownerOf(path string) *unit {
	if path == "" {
		return nil
	}
	for _, u := range p.units {
		if !u.hasParam || !u.addMenuItem {
			continue
		}
		for _, mp := range u.menuPaths() {
			if mp == path {
				return u
			}
		}
	}
	return nil
}

// physBoneResetter emits a reset layer per toggle: raising the signal disables the listed
// physbones for one clip cycle and clears the signal again.
type physBoneResetter struct {
	ctrl ports.Controller
}

// NewPhysBoneResetter returns the default resetter backed by ctrl.
func NewPhysBoneResetter(ctrl ports.Controller) ports.PhysBoneResetter {
	return physBoneResetter{ctrl: ctrl}
}

func (r physBoneResetter) CreateResetter(physbones []string, name string) (expr.Bool, bool) {
	if len(physbones) == 0 {
		return expr.Bool{}, false
	}
	signal := r.ctrl.NewBool(name+"_PhysBoneReset", ports.ParamOptions{})
	layer := r.ctrl.NewLayer("PhysBone Reset - " + name)
	idle := layer.NewState("Idle")

	clip := &domain.Clip{Name: "PhysBone Reset - " + name}
	for _, pb := range physbones {
		clip.Actions = append(clip.Actions, domain.SetObject(pb, false))
	}
	reset := layer.NewState("Reset").WithClip(clip).Drives(signal, 0)
	idle.TransitionsTo(reset).When(signal.IsTrue())
	reset.TransitionsTo(idle).WithExitTime(1)
	return signal, true
}

// clipLoader is the default ports.ClipLoader: visual actions become the clip's content and
// drive-toggle actions are left to the compiler.
type clipLoader struct{}

// NewClipLoader returns the default clip loader.
func NewClipLoader() ports.ClipLoader {
	return clipLoader{}
}

func (clipLoader) LoadState(name string, state *domain.State) *domain.Clip {
	clip := &domain.Clip{Name: name}
	if state == nil {
		return clip
	}
	for _, a := range state.Actions {
		if a.Type == domain.ActionDriveToggle {
			continue
		}
		clip.Actions = append(clip.Actions, a)
	}
	return clip
}

// paramLock is a security lock unlocked while a boolean parameter is set.
type paramLock struct {
	ctrl  ports.Controller
	param string
}

// NewParamLock returns a lock satisfied while the named boolean is true.
func NewParamLock(ctrl ports.Controller, param string) ports.SecurityLock {
	return paramLock{ctrl: ctrl, param: param}
}

func (l paramLock) Unlocked() expr.Cond {
	return l.ctrl.NewBool(l.param, ports.ParamOptions{}).IsTrue()
}
