package compiler

import (
	"strings"

	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/expr"
	"github.com/aretw0/toggler/pkg/ports"
)

// unit is the per-pass compilation record of one toggle.
// Units are created for every declared toggle, in declaration order, before any graph is emitted,
// so the resolver can see every sibling.
type unit struct {
	index  int
	toggle *domain.Toggle

	// Naming.
	name        string
	usePrefix   bool
	addMenuItem bool
	override    bool

	// Exclusivity.
	tags      []string
	exclusive bool
	primary   string

	// Parameter.
	useInt    bool
	intTarget int
	param     expr.Handle
	onParam   expr.Cond
	hasParam  bool

	// Synthesis.
	onCase   expr.Cond
	layer    ports.Layer
	off      ports.State
	resting  *domain.Clip
	states   int
	skipped  bool
	skipNote string
}

func newUnit(index int, t *domain.Toggle) *unit {
	u := &unit{index: index, toggle: t, intTarget: -1}
	if t.Condition.IsEmpty() {
		u.skipped = true
		u.skipNote = "empty condition"
		return u
	}
	u.name, u.usePrefix, u.addMenuItem, u.override = allocateName(t)
	if u.name == "" {
		u.skipped = true
		u.skipNote = "no name could be derived"
		return u
	}
	u.useInt = t.UseInt
	u.tags, u.exclusive = exclusiveTags(t)
	return u
}

// qualifies reports whether the unit counts towards exclusive group sizes.
func (u *unit) qualifies() bool {
	return !u.skipped && !u.toggle.Slider && !u.toggle.ExclusiveOffState && u.addMenuItem
}

func (u *unit) hasTag(tag string) bool {
	for _, t := range u.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// isExclusive reports whether the unit takes part in exclusive wiring.
func (u *unit) isExclusive() bool {
	return u.exclusive && u.primary != ""
}

// indexed reports whether the unit is encoded as a slot of a shared integer.
func (u *unit) indexed() bool {
	return u.useInt && u.intTarget != -1
}

// clipPrefix is prepended to every clip generated for the unit.
func (u *unit) clipPrefix() string {
	return "Toggle " + strings.ReplaceAll(u.name, "/", "_")
}

func (u *unit) menuPaths() []string {
	return u.toggle.Condition.MenuPaths()
}

// exclusiveTags returns the explicit and implicit tags of a toggle and whether exclusivity applies.
func exclusiveTags(t *domain.Toggle) ([]string, bool) {
	list := ""
	if t.EnableExclusiveTag {
		list = t.ExclusiveTag
	}
	region := bodyRegion(t.States()...)
	for _, tag := range region {
		list += "," + tag
	}
	return domain.SplitList(list), t.EnableExclusiveTag || len(region) > 0
}

// bodyRegion scans clip actions for the humanoid regions they animate.
// Any face or body muscle marks the content as an emote and ends the scan.
func bodyRegion(states ...*domain.State) []string {
	left, right := false, false
	for _, s := range states {
		for _, m := range s.Muscles() {
			switch m {
			case domain.MuscleOther:
				return []string{domain.TagEmote}
			case domain.MuscleLeftHand:
				left = true
			case domain.MuscleRightHand:
				right = true
			}
		}
	}
	var out []string
	if left {
		out = append(out, domain.TagLeftHand)
	}
	if right {
		out = append(out, domain.TagRightHand)
	}
	return out
}
