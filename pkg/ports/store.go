package ports

import (
	"context"

	"github.com/aretw0/toggler/pkg/domain"
)

// ArtifactStore persists compiled artifacts.
type ArtifactStore interface {
	// Save persists the artifact under its ID, replacing any previous version.
	Save(ctx context.Context, artifact *domain.Artifact) error

	// Load retrieves an artifact.
	// Returns domain.ErrArtifactNotFound if the artifact does not exist.
	Load(ctx context.Context, id string) (*domain.Artifact, error)

	// Delete removes an artifact. Deleting a missing artifact is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of stored artifacts.
	List(ctx context.Context) ([]string, error)
}
