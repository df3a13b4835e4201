package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/toggler/internal/compiler"
	"github.com/aretw0/toggler/pkg/domain"
)

// Report renders a compile summary as markdown.
func Report(project string, s *compiler.Summary, g domain.Graph, menu []domain.MenuItem) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", project)
	fmt.Fprintf(&sb, "%s; %d parameters, %d layers.\n\n", s, len(g.Params), len(g.Layers))

	if len(s.Compiled) > 0 {
		sb.WriteString("## Toggles\n\n")
		sb.WriteString("| Toggle | Layer | Parameter | Group | States | On when |\n")
		sb.WriteString("|---|---|---|---|---|---|\n")
		for _, r := range s.Compiled {
			group := r.Primary
			if r.Slot >= 0 {
				group = fmt.Sprintf("%s #%d", r.Primary, r.Slot)
			}
			if r.Slider {
				group = "slider"
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %s | %d | `%s` |\n",
				cell(r.Name), cell(r.Layer), cell(r.Param), cell(group), r.States, cell(r.OnCase.String()))
		}
		sb.WriteString("\n")
	}

	if len(s.Groups) > 0 {
		sb.WriteString("## Exclusive groups\n\n")
		for _, grp := range s.Groups {
			names := make([]string, 0, len(grp.Members))
			for _, m := range grp.Members {
				names = append(names, m.Name)
			}
			fmt.Fprintf(&sb, "- **%s** (%s, %d members): %s\n", grp.Tag, grp.Encoding, len(grp.Members), strings.Join(names, ", "))
		}
		sb.WriteString("\n")
	}

	if len(menu) > 0 {
		sb.WriteString("## Menu\n\n")
		for _, item := range menu {
			fmt.Fprintf(&sb, "- `%s` %s on `%s`", item.Path, item.Control, item.Param)
			if item.Control != domain.MenuSlider {
				fmt.Fprintf(&sb, " = %g", item.Value)
			}
			if item.Icon != "" {
				fmt.Fprintf(&sb, " (icon %s)", item.Icon)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(s.Skipped) > 0 {
		idx := make([]string, 0, len(s.Skipped))
		for _, i := range s.Skipped {
			idx = append(idx, fmt.Sprint(i))
		}
		fmt.Fprintf(&sb, "Skipped toggles (empty condition): %s\n", strings.Join(idx, ", "))
	}
	return sb.String()
}

// cell keeps a value from breaking the table.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}
