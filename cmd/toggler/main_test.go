package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/toggler/internal/logging"
	"github.com/aretw0/toggler/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const project = `
name: cli
toggles:
  - condition:
      or:
        - and:
            - type: menu
              menu_path: Hat
    enable_exclusive_tag: true
    exclusive_tag: Head
  - condition:
      or:
        - and:
            - type: menu
              menu_path: Cap
    enable_exclusive_tag: true
    exclusive_tag: Head
`

func writeProject(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toggles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "--file", writeProject(t, project))
	require.NoError(t, err)
	assert.Equal(t, "✓ cli: 2 toggles\n", out)

	out, err = run(t, "validate", "--file", writeProject(t, "toggles: []\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidProject)
	assert.Contains(t, out, `✗ field "name": is required`)
}

func TestCompileCommand(t *testing.T) {
	out, err := run(t, "compile", "-f", writeProject(t, project))
	require.NoError(t, err)

	var artifact domain.Artifact
	require.NoError(t, json.Unmarshal([]byte(out), &artifact))
	assert.Equal(t, "cli", artifact.Project)
	assert.Len(t, artifact.Menu, 2)
	require.Len(t, artifact.Groups, 1)
	assert.Equal(t, "Head", artifact.Groups[0].Tag)
}

func TestCompileCommand_OutFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "artifact.json")
	out, err := run(t, "compile", "-f", writeProject(t, project), "--out", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"project": "cli"`)
}

func TestCompileCommand_Store(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "compile", "-f", writeProject(t, project), "--store", dir)
	require.NoError(t, err)

	id := strings.TrimSpace(out)
	assert.FileExists(t, filepath.Join(dir, id+".json"))
}

func TestCompileCommand_Prefix(t *testing.T) {
	doc := "name: p\ntoggles:\n  - condition:\n      or:\n        - and:\n            - type: menu\n              menu_path: Hat\n    use_prefix: true\n"
	out, err := run(t, "compile", "-f", writeProject(t, doc), "--prefix", "VF_")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "VF_Hat"`)
}

func TestGraphCommand(t *testing.T) {
	out, err := run(t, "graph", "-f", writeProject(t, project), "--defaults")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `["Head Animations"]`)
	assert.Contains(t, out, "classDef current")
}

func TestReportCommand(t *testing.T) {
	out, err := run(t, "report", "-f", writeProject(t, project))
	require.NoError(t, err)
	assert.Contains(t, out, "# cli\n")
	assert.Contains(t, out, "- **Head** (boolean, 2 members): Hat, Cap")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "toggler version "))
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "compile", "-f", writeProject(t, project), "--log-level", "loud")
	assert.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	_, err := run(t, "compile", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	s, err := openStore("memory", logging.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, s)

	s, err = openStore("redis://localhost:6379/0", logging.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = openStore("redis://localhost:6379/notadb", logging.NewNop())
	assert.Error(t, err)
}
