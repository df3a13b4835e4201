package graph_test

import (
	"testing"

	"github.com/aretw0/toggler/internal/presentation/graph"
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func sampleGraph() domain.Graph {
	return domain.Graph{
		Layers: []domain.Layer{
			{
				Name:         "Hat",
				DefaultState: "Off",
				States: []domain.StateNode{
					{Name: "Off", Speed: 1, Transitions: []domain.Transition{
						{From: "Off", To: "Hat On", Condition: "Hat"},
					}},
					{Name: "Hat On", Speed: 1, Transitions: []domain.Transition{
						{From: "Hat On", To: "Off", Condition: "!Hat"},
					}},
				},
				AnyTransitions: []domain.Transition{
					{From: domain.EndpointAny, To: "Hat On", Condition: `Say "hi"`},
				},
			},
			{
				Name:         "Drive",
				DefaultState: "Idle",
				States: []domain.StateNode{
					{Name: "Idle", Speed: 1, Transitions: []domain.Transition{
						{From: "Idle", To: domain.EndpointExit},
					}},
				},
			},
		},
	}
}

func TestGenerateMermaid_Golden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "layers", []byte(graph.GenerateMermaid(sampleGraph(), nil)))
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	g := sampleGraph()
	out := graph.GenerateMermaid(g, graph.DefaultsOverlay(g))

	assert.Contains(t, out, "classDef current")
	assert.Contains(t, out, "    class L0_S0 current;\n")
	assert.Contains(t, out, "    class L1_S0 current;\n")
}

func TestGenerateMermaid_UnknownTarget(t *testing.T) {
	g := domain.Graph{Layers: []domain.Layer{{
		Name:             "Broken",
		EntryTransitions: []domain.Transition{{From: domain.EndpointEntry, To: "Not There.v2"}},
	}}}

	out := graph.GenerateMermaid(g, nil)
	assert.Contains(t, out, "L0_entry((\"entry\"))")
	assert.Contains(t, out, "L0_entry --> L0_Not_There_v2")
}
