package compiler

import (
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/expr"
	"github.com/aretw0/toggler/pkg/ports"
)

// LockParam names the boolean raised while a member of the tag's group is transitioning.
func LockParam(tag string) string {
	return tag + "_Lock"
}

// evaluator turns a toggle's condition tree into a host expression.
type evaluator struct {
	ctrl ports.Controller
	// menu is the toggle's own parameter condition. Never when it has no parameter.
	menu expr.Cond
	tags []string
}

// evaluate ORs the non-empty clauses in declaration order. Every gesture-bearing clause is
// masked by the negation of the gesture clauses compiled before it and by the lock of each tag.
func (e evaluator) evaluate(c domain.Condition) expr.Cond {
	var previous []expr.Cond
	out := expr.Never()
	for _, clause := range c.Clauses() {
		raw := e.clause(clause)
		cond := raw
		if clause.HasGesture() {
			for _, p := range previous {
				cond = cond.And(p.Not())
			}
			previous = append(previous, raw)
			for _, tag := range e.tags {
				lock := e.ctrl.NewBool(LockParam(tag), ports.ParamOptions{})
				cond = cond.And(lock.IsFalse())
			}
		}
		out = out.Or(cond)
	}
	return out
}

func (e evaluator) clause(clause domain.AndCondition) expr.Cond {
	out := expr.Always()
	for _, t := range clause.Triggers {
		out = out.And(e.trigger(t))
	}
	return out
}

func (e evaluator) trigger(t domain.Trigger) expr.Cond {
	switch t.Type {
	case domain.TriggerMenu:
		return e.menu
	case domain.TriggerGlobal:
		if t.BoolName == "" {
			return expr.Never()
		}
		return e.ctrl.NewBool(t.BoolName, ports.ParamOptions{}).IsTrue()
	case domain.TriggerGesture:
		left := e.ctrl.GestureLeft()
		right := e.ctrl.GestureRight()
		switch t.Hand {
		case domain.HandLeft:
			return left.IsEqualTo(int(t.Sign))
		case domain.HandRight:
			return right.IsEqualTo(int(t.Sign))
		case domain.HandEither:
			return left.IsEqualTo(int(t.Sign)).Or(right.IsEqualTo(int(t.Sign)))
		case domain.HandCombo:
			return left.IsEqualTo(int(t.Sign)).And(right.IsEqualTo(int(t.ComboSign)))
		}
	}
	return expr.Never()
}

// allocateName picks the toggle's parameter name.
// Precedence: override, first menu path, first gesture label, first global signal.
func allocateName(t *domain.Toggle) (name string, usePrefix, addMenuItem, override bool) {
	if t.ParamOverride != "" {
		return t.ParamOverride, false, false, true
	}
	if paths := t.Condition.MenuPaths(); len(paths) > 0 {
		return paths[0], t.UsePrefixOnParam, true, false
	}
	triggers := t.Condition.Triggers()
	for _, trig := range triggers {
		if trig.Type == domain.TriggerGesture {
			return trig.Label(), false, false, false
		}
	}
	for _, trig := range triggers {
		if trig.Type == domain.TriggerGlobal && trig.BoolName != "" {
			return trig.BoolName, false, false, false
		}
	}
	return "", false, false, false
}
