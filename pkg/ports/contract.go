package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/toggler/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunArtifactStoreContract runs a suite of tests to verify that an ArtifactStore implementation
// adheres to the defined interface contract.
func RunArtifactStoreContract(t *testing.T, store ArtifactStore) {
	ctx := context.Background()
	id := "contract-test-artifact-" + time.Now().Format("20060102150405")

	exitTime := 1.0
	artifact := &domain.Artifact{
		ID:        id,
		Project:   "contract",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Graph: domain.Graph{
			Params: []domain.Param{{Name: "Shirt", Type: "bool", Synced: true, Default: 1}},
			Layers: []domain.Layer{{
				Name:         "Shirt",
				DefaultState: "Off",
				States: []domain.StateNode{
					{Name: "Off", Speed: 1, Transitions: []domain.Transition{
						{From: "Off", To: domain.EndpointExit, Condition: "Shirt", Duration: 0.25},
					}},
					{Name: "Shirt On", Speed: 1, Transitions: []domain.Transition{
						{From: "Shirt On", To: domain.EndpointExit, Condition: "!Shirt", ExitTime: &exitTime},
					}},
				},
				EntryTransitions: []domain.Transition{
					{From: domain.EndpointEntry, To: "Shirt On", Condition: "Shirt"},
				},
			}},
		},
		Menu: []domain.MenuItem{{Path: "Shirt", Control: domain.MenuToggle, Param: "Shirt", Value: 1}},
	}

	t.Run("Load Missing", func(t *testing.T) {
		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})

	t.Run("Save and Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, artifact), "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		require.NotNil(t, loaded)

		assert.Equal(t, artifact.ID, loaded.ID)
		assert.Equal(t, artifact.Project, loaded.Project)
		assert.True(t, artifact.CreatedAt.Equal(loaded.CreatedAt))
		assert.Equal(t, artifact.Graph, loaded.Graph)
		assert.Equal(t, artifact.Menu, loaded.Menu)
	})

	t.Run("List", func(t *testing.T) {
		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id)
	})

	t.Run("Overwrite", func(t *testing.T) {
		updated := *artifact
		updated.Project = "contract-v2"
		require.NoError(t, store.Save(ctx, &updated))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "contract-v2", loaded.Project)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, id))

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotContains(t, ids, id)

		assert.NoError(t, store.Delete(ctx, id), "deleting twice is not an error")
	})
}
