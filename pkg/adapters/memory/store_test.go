package memory_test

import (
	"testing"

	"github.com/aretw0/toggler/pkg/adapters/memory"
	"github.com/aretw0/toggler/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunArtifactStoreContract(t, memory.NewStore())
}
