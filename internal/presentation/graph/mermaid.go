package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/toggler/pkg/domain"
)

// GraphOverlay marks states to highlight, keyed by layer name.
type GraphOverlay struct {
	Current map[string]string
}

// DefaultsOverlay highlights the default state of every layer.
func DefaultsOverlay(g domain.Graph) *GraphOverlay {
	o := &GraphOverlay{Current: make(map[string]string)}
	for _, l := range g.Layers {
		if l.DefaultState != "" {
			o.Current[l.Name] = l.DefaultState
		}
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart with one subgraph per layer.
// It applies semantic styling:
// - Entry/Exit: ((Circle))
// - Any State: {{Hexagon}}
// - Default state: ([Stadium])
// - Default: [Rectangle]
// Node IDs are positional so that arbitrary state names never need escaping.
func GenerateMermaid(g domain.Graph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var highlighted []string
	for i, layer := range g.Layers {
		lid := fmt.Sprintf("L%d", i)
		ids := make(map[string]string, len(layer.States))
		for j, st := range layer.States {
			ids[st.Name] = fmt.Sprintf("%s_S%d", lid, j)
		}
		resolve := func(name string) string {
			switch name {
			case domain.EndpointEntry:
				return lid + "_entry"
			case domain.EndpointAny:
				return lid + "_any"
			case domain.EndpointExit:
				return lid + "_exit"
			}
			if id, ok := ids[name]; ok {
				return id
			}
			return lid + "_" + sanitizeMermaidID(name)
		}

		fmt.Fprintf(&sb, "    subgraph %s[\"%s\"]\n", lid, escape(layer.Name))

		if layer.DefaultState != "" || len(layer.EntryTransitions) > 0 {
			fmt.Fprintf(&sb, "        %s_entry((\"entry\"))\n", lid)
		}
		if len(layer.AnyTransitions) > 0 {
			fmt.Fprintf(&sb, "        %s_any{{\"any\"}}\n", lid)
		}
		exits := false
		for _, st := range layer.States {
			opener, closer := "[", "]"
			if st.Name == layer.DefaultState {
				opener, closer = "([", "])"
			}
			fmt.Fprintf(&sb, "        %s%s\"%s\"%s\n", ids[st.Name], opener, escape(st.Name), closer)
			for _, t := range st.Transitions {
				exits = exits || t.To == domain.EndpointExit
			}
		}
		if exits {
			fmt.Fprintf(&sb, "        %s_exit((\"exit\"))\n", lid)
		}

		if layer.DefaultState != "" {
			fmt.Fprintf(&sb, "        %s_entry -.-> %s\n", lid, resolve(layer.DefaultState))
		}
		edges := append(append([]domain.Transition{}, layer.EntryTransitions...), layer.AnyTransitions...)
		for _, st := range layer.States {
			edges = append(edges, st.Transitions...)
		}
		for _, t := range edges {
			arrow := "-->"
			if t.Condition != "" {
				arrow = fmt.Sprintf("-- \"%s\" -->", escape(t.Condition))
			}
			fmt.Fprintf(&sb, "        %s %s %s\n", resolve(t.From), arrow, resolve(t.To))
		}
		sb.WriteString("    end\n")

		if overlay != nil {
			if name, ok := overlay.Current[layer.Name]; ok {
				if id, ok := ids[name]; ok {
					highlighted = append(highlighted, id)
				}
			}
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, id := range highlighted {
			fmt.Fprintf(&sb, "    class %s current;\n", id)
		}
	}

	return sb.String()
}

// escape keeps labels inside their double quotes.
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_").Replace(id)
}
