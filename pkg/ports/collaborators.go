package ports

import (
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/expr"
)

// Menu registers menu controls bound to controller parameters.
type Menu interface {
	NewToggle(path string, param expr.Handle, icon string, value float64)
	NewButton(path string, param expr.Handle, icon string, value float64)
	NewSlider(path string, param expr.Float, icon string)
	// SetIcon replaces the icon of an existing item. It reports false when no item has the path.
	SetIcon(path, icon string) bool
}

// RestingState collects clips applied to the avatar's resting pose.
type RestingState interface {
	ApplyClip(clip *domain.Clip, additive bool)
}

// SecurityLock exposes the condition that holds while the avatar is unlocked.
type SecurityLock interface {
	Unlocked() expr.Cond
}

// ClipLoader turns declarative state content into a clip.
type ClipLoader interface {
	LoadState(name string, state *domain.State) *domain.Clip
}

// PhysBoneResetter creates the signal that resets the given physbones.
// It reports false when there is nothing to reset.
type PhysBoneResetter interface {
	CreateResetter(physbones []string, name string) (expr.Bool, bool)
}
