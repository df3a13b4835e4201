package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/toggler/internal/compiler"
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/aretw0/toggler/pkg/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	hat := expr.NewBoolHandle("Hat")
	summary := &compiler.Summary{
		Compiled: []compiler.ToggleResult{
			{Name: "Hat", Layer: "Head Animations", Param: "Hat", Primary: "Head", Slot: -1, States: 2, OnCase: hat.IsTrue()},
			{Name: "Dial", Layer: "Dial", Param: "Dial", Slot: -1, States: 2, Slider: true, OnCase: expr.Always()},
		},
		Skipped: []int{2, 5},
		Groups: []domain.GroupInfo{{
			Tag:      "Head",
			Encoding: domain.EncodingBoolean,
			Members:  []domain.GroupMember{{Name: "Hat"}, {Name: "Cap"}},
		}},
	}
	menu := []domain.MenuItem{
		{Path: "Hat", Control: domain.MenuToggle, Param: "Hat", Value: 1, Icon: "hat.png"},
		{Path: "Dial", Control: domain.MenuSlider, Param: "Dial"},
	}

	out := Report("wardrobe", summary, domain.Graph{Params: make([]domain.Param, 3)}, menu)

	assert.Contains(t, out, "# wardrobe\n")
	assert.Contains(t, out, "2 compiled, 2 skipped, 1 groups; 3 parameters, 0 layers.")
	assert.Contains(t, out, "| Hat | Head Animations | Hat | Head | 2 | `Hat` |")
	assert.Contains(t, out, "| Dial | Dial | Dial | slider | 2 | `true` |")
	assert.Contains(t, out, "- **Head** (boolean, 2 members): Hat, Cap")
	assert.Contains(t, out, "- `Hat` toggle on `Hat` = 1 (icon hat.png)")
	assert.Contains(t, out, "- `Dial` slider on `Dial`\n")
	assert.Contains(t, out, "Skipped toggles (empty condition): 2, 5")
}

func TestRenderer(t *testing.T) {
	render, err := NewRenderer(80)
	require.NoError(t, err)

	out, err := render("# Title\n\nbody")
	require.NoError(t, err)
	assert.Contains(t, out, "body")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3\n")
	assert.Contains(t, buf.String(), "v1.2.3")
}
