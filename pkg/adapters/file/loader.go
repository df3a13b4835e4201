package file

import (
	"fmt"
	"os"

	"github.com/aretw0/toggler/internal/compiler"
	"github.com/aretw0/toggler/pkg/domain"
)

// LoadProject reads and parses a YAML or JSON project document.
func LoadProject(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	project, err := compiler.NewParser().Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return project, nil
}
